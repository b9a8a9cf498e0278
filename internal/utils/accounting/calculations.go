package accounting

import (
	"strconv"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnassignedTruck keys comparison totals of line items that carry no truck number.
const UnassignedTruck = "ไม่ระบุ"

// MonthLabels are the Thai month abbreviations used in month-mode series.
var MonthLabels = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

var hundred = decimal.NewFromInt(100)

// Aggregate normalizes, filters, classifies and folds raw line items into a
// DashboardReport. It does no I/O and keeps no state, so concurrent calls over
// separate inputs are safe. The only failure is a malformed filter.
func Aggregate(rules Rules, items []domain.InvoiceLineItem, filter domain.Filter) (*domain.DashboardReport, error) {
	f, err := filter.Normalize()
	if err != nil {
		return nil, err
	}

	series := newSeries(f)
	report := &domain.DashboardReport{
		Filter:     f,
		Summary:    zeroSummary(),
		Series:     series,
		Comparison: domain.TruckComparison{},
		Items:      make([]domain.NormalizedLineItem, 0, len(items)),
	}

	s := &report.Summary
	for _, raw := range items {
		item := NormalizeLineItem(raw)
		if !matches(f, item) {
			continue
		}
		report.Items = append(report.Items, item)

		wc := rules.Classify(item)
		advance := AdvanceContribution(item, wc)
		itemExpense := ItemExpense(item, wc)

		s.ItemCount++
		s.Revenue = s.Revenue.Add(item.Freight)
		s.Gas = s.Gas.Add(item.Gas)
		s.Toll = s.Toll.Add(item.Toll)
		s.Extra = s.Extra.Add(item.ExtraExpense)
		s.DriverWage16Total = s.DriverWage16Total.Add(wc.DriverWage16)
		s.DriverWageFlatTotal = s.DriverWageFlatTotal.Add(wc.DriverWageFlat)
		switch wc.ExpenseBucket {
		case domain.BucketRepair:
			s.Repair = s.Repair.Add(advance)
		case domain.BucketParking:
			s.Parking = s.Parking.Add(advance)
		case domain.BucketOther:
			s.Miscellaneous = s.Miscellaneous.Add(advance)
		}

		idx := periodIndex(series.Mode, item.Date)
		series.RevenueByPeriod[idx] = series.RevenueByPeriod[idx].Add(item.Freight)
		series.ExpenseByPeriod[idx] = series.ExpenseByPeriod[idx].Add(itemExpense)

		if f.AllTrucks() {
			key := item.TruckNumber
			if key == "" {
				key = UnassignedTruck
			}
			totals := report.Comparison[key]
			report.Comparison[key] = domain.TruckTotals{
				Revenue: totals.Revenue.Add(item.Freight),
				Expense: totals.Expense.Add(itemExpense),
			}
		}
	}

	s.Expense = s.Gas.Add(s.Toll).Add(s.Repair).Add(s.Parking).Add(s.Miscellaneous).Add(s.Extra).Add(s.DriverWage16Total)
	s.NetProfit = s.Revenue.Sub(s.Expense)
	s.DriverTotalReceive = s.DriverWage16Total.Add(s.DriverWageFlatTotal).Add(s.Extra)
	s.Margin = Margin(s.NetProfit, s.Revenue)

	return report, nil
}

// AdvanceContribution is the part of the driver advance booked as a company
// expense. A flat wage paid out of the advance is not.
func AdvanceContribution(item domain.NormalizedLineItem, wc domain.WageComponents) decimal.Decimal {
	if wc.ExpenseBucket == domain.BucketNone {
		return decimal.Zero
	}
	return item.DriverAdvance
}

// ItemExpense is gas + toll + advance contribution + extra + 16% wage of one item.
func ItemExpense(item domain.NormalizedLineItem, wc domain.WageComponents) decimal.Decimal {
	return item.Gas.
		Add(item.Toll).
		Add(AdvanceContribution(item, wc)).
		Add(item.ExtraExpense).
		Add(wc.DriverWage16)
}

// Margin returns net / revenue * 100 rounded to two places, or zero without revenue.
func Margin(net, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return net.Div(revenue).Mul(hundred).Round(2)
}

// DaysIn returns the number of days of month in year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func matches(f domain.Filter, item domain.NormalizedLineItem) bool {
	if !f.AllTrucks() && item.TruckNumber != f.TruckNumber {
		return false
	}
	if year, ok := f.YearValue(); ok && item.Date.Year() != year {
		return false
	}
	if month, ok := f.MonthValue(); ok && int(item.Date.Month()) != month {
		return false
	}
	return true
}

func newSeries(f domain.Filter) domain.TimeSeries {
	var labels []string
	mode := domain.SeriesByMonth
	if f.ByDay() {
		mode = domain.SeriesByDay
		year, _ := f.YearValue()
		month, _ := f.MonthValue()
		days := DaysIn(year, time.Month(month))
		labels = make([]string, days)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	} else {
		labels = append([]string(nil), MonthLabels[:]...)
	}

	return domain.TimeSeries{
		Mode:            mode,
		Labels:          labels,
		RevenueByPeriod: zeros(len(labels)),
		ExpenseByPeriod: zeros(len(labels)),
	}
}

func periodIndex(mode domain.SeriesMode, date time.Time) int {
	if mode == domain.SeriesByDay {
		return date.Day() - 1
	}
	return int(date.Month()) - 1
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}

func zeroSummary() domain.SummaryStatistics {
	return domain.SummaryStatistics{
		Revenue:             decimal.Zero,
		Expense:             decimal.Zero,
		NetProfit:           decimal.Zero,
		Margin:              decimal.Zero,
		Gas:                 decimal.Zero,
		Toll:                decimal.Zero,
		Repair:              decimal.Zero,
		Parking:             decimal.Zero,
		Miscellaneous:       decimal.Zero,
		Extra:               decimal.Zero,
		DriverWage16Total:   decimal.Zero,
		DriverWageFlatTotal: decimal.Zero,
		DriverTotalReceive:  decimal.Zero,
	}
}
