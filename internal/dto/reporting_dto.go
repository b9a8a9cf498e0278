package dto

import (
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardQuery is the filter of the dashboard and its summary export.
// Empty values and "all" select everything.
type DashboardQuery struct {
	TruckNumber string `form:"truckNumber"`
	Year        string `form:"year"`
	Month       string `form:"month"`
}

// SummaryExportQuery selects the data of the summary workbook. TruckID
// is resolved to a truck number; zero or absent means every truck.
type SummaryExportQuery struct {
	Year    string `form:"year"`
	Month   string `form:"month"`
	TruckID int64  `form:"truckId" binding:"omitempty,gte=0"`
}

// SummaryResponse is the KPI block of the dashboard. Amounts are rounded to satang.
type SummaryResponse struct {
	Revenue             decimal.Decimal `json:"revenue"`
	Expense             decimal.Decimal `json:"expense"`
	NetProfit           decimal.Decimal `json:"net_profit"`
	Margin              decimal.Decimal `json:"margin"`
	Gas                 decimal.Decimal `json:"gas"`
	Toll                decimal.Decimal `json:"toll"`
	Repair              decimal.Decimal `json:"repair"`
	Parking             decimal.Decimal `json:"parking"`
	Miscellaneous       decimal.Decimal `json:"miscellaneous"`
	Extra               decimal.Decimal `json:"extra"`
	DriverWage16Total   decimal.Decimal `json:"driver_wage16_total"`
	DriverWageFlatTotal decimal.Decimal `json:"driver_wage_flat_total"`
	DriverTotalReceive  decimal.Decimal `json:"driver_total_receive"`
	ItemCount           int             `json:"item_count"`
}

// SeriesResponse is the chart data of the dashboard.
type SeriesResponse struct {
	Mode    string            `json:"mode"`
	Labels  []string          `json:"labels"`
	Revenue []decimal.Decimal `json:"revenue"`
	Expense []decimal.Decimal `json:"expense"`
}

// TruckTotalsResponse is one bar of the per-truck comparison.
type TruckTotalsResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// FilterResponse echoes the normalized filter.
type FilterResponse struct {
	TruckNumber string `json:"truck_number"`
	Year        string `json:"year"`
	Month       string `json:"month"`
}

// DashboardResponse represents the dashboard report response
type DashboardResponse struct {
	Filter     FilterResponse                 `json:"filter"`
	Summary    SummaryResponse                `json:"summary"`
	Series     SeriesResponse                 `json:"series"`
	Comparison map[string]TruckTotalsResponse `json:"comparison"`
}

// ToFilter builds the domain filter; normalization happens in the engine.
func (q DashboardQuery) ToFilter() domain.Filter {
	return domain.Filter{TruckNumber: q.TruckNumber, Year: q.Year, Month: q.Month}
}

// ToSummaryResponse rounds the statistics for display.
func ToSummaryResponse(s domain.SummaryStatistics) SummaryResponse {
	return SummaryResponse{
		Revenue:             round(s.Revenue),
		Expense:             round(s.Expense),
		NetProfit:           round(s.NetProfit),
		Margin:              round(s.Margin),
		Gas:                 round(s.Gas),
		Toll:                round(s.Toll),
		Repair:              round(s.Repair),
		Parking:             round(s.Parking),
		Miscellaneous:       round(s.Miscellaneous),
		Extra:               round(s.Extra),
		DriverWage16Total:   round(s.DriverWage16Total),
		DriverWageFlatTotal: round(s.DriverWageFlatTotal),
		DriverTotalReceive:  round(s.DriverTotalReceive),
		ItemCount:           s.ItemCount,
	}
}

// ToDashboardResponse converts a domain report to a DTO response
func ToDashboardResponse(r *domain.DashboardReport) DashboardResponse {
	resp := DashboardResponse{
		Filter: FilterResponse{
			TruckNumber: r.Filter.TruckNumber,
			Year:        r.Filter.Year,
			Month:       r.Filter.Month,
		},
		Summary: ToSummaryResponse(r.Summary),
		Series: SeriesResponse{
			Mode:    string(r.Series.Mode),
			Labels:  r.Series.Labels,
			Revenue: roundAll(r.Series.RevenueByPeriod),
			Expense: roundAll(r.Series.ExpenseByPeriod),
		},
		Comparison: make(map[string]TruckTotalsResponse, len(r.Comparison)),
	}
	for truck, totals := range r.Comparison {
		resp.Comparison[truck] = TruckTotalsResponse{
			Revenue: round(totals.Revenue),
			Expense: round(totals.Expense),
		}
	}
	return resp
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func roundAll(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = round(v)
	}
	return out
}
