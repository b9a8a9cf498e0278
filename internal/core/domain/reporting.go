package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseBucket classifies a driver advance that is not itself a wage payment.
type ExpenseBucket string

const (
	BucketRepair  ExpenseBucket = "repair"
	BucketParking ExpenseBucket = "parking"
	BucketOther   ExpenseBucket = "other"
	BucketNone    ExpenseBucket = "none"
)

// WageComponents is derived per line item. DriverWage16 and DriverWageFlat are
// never both non-zero for the same item.
type WageComponents struct {
	DriverWage16   decimal.Decimal `json:"driverWage16"`
	DriverWageFlat decimal.Decimal `json:"driverWageFlat"`
	ExpenseBucket  ExpenseBucket   `json:"expenseBucket"`
}

// SummaryStatistics aggregates a filtered set of line items.
//
// Expense = Gas + Toll + Repair + Parking + Miscellaneous + Extra + DriverWage16Total.
// The flat wage replaces the 16% wage for flat-wage trucks and is paid out of the
// advance, so it is reported separately and kept out of Expense.
type SummaryStatistics struct {
	Revenue             decimal.Decimal `json:"revenue"`
	Expense             decimal.Decimal `json:"expense"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	Margin              decimal.Decimal `json:"margin"` // NetProfit / Revenue * 100, zero without revenue
	Gas                 decimal.Decimal `json:"gas"`
	Toll                decimal.Decimal `json:"toll"`
	Repair              decimal.Decimal `json:"repair"`
	Parking             decimal.Decimal `json:"parking"`
	Miscellaneous       decimal.Decimal `json:"miscellaneous"`
	Extra               decimal.Decimal `json:"extra"`
	DriverWage16Total   decimal.Decimal `json:"driverWage16Total"`
	DriverWageFlatTotal decimal.Decimal `json:"driverWageFlatTotal"`
	DriverTotalReceive  decimal.Decimal `json:"driverTotalReceive"`
	ItemCount           int             `json:"itemCount"`
}

// SeriesMode tells how a TimeSeries is bucketed.
type SeriesMode string

const (
	SeriesByMonth SeriesMode = "month"
	SeriesByDay   SeriesMode = "day"
)

// TimeSeries holds revenue and expense per period. All slices share one length.
type TimeSeries struct {
	Mode            SeriesMode        `json:"mode"`
	Labels          []string          `json:"labels"`
	RevenueByPeriod []decimal.Decimal `json:"revenueByPeriod"`
	ExpenseByPeriod []decimal.Decimal `json:"expenseByPeriod"`
}

// TruckTotals is one entry of a TruckComparison.
type TruckTotals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// TruckComparison maps a truck number to its totals.
type TruckComparison map[string]TruckTotals

// DashboardReport is the single result every presentation (dashboard JSON,
// spreadsheets, PDF) is rendered from.
type DashboardReport struct {
	Filter     Filter               `json:"filter"`
	Summary    SummaryStatistics    `json:"summary"`
	Series     TimeSeries           `json:"series"`
	Comparison TruckComparison      `json:"comparison"`
	Items      []NormalizedLineItem `json:"-"` // Retained items in input order
}

// ExportFile is a rendered document ready to be sent as an attachment.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}
