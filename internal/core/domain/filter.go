package domain

import (
	"strconv"
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
)

// FilterAll is the wildcard value accepted by every Filter field.
const FilterAll = "all"

// Filter selects the line items a report covers. Every field is either a
// concrete value or FilterAll.
type Filter struct {
	TruckNumber string `json:"truckNumber"`
	Year        string `json:"year"`
	Month       string `json:"month"` // 1-12
}

// NewFilter returns a normalized filter built from raw query values.
func NewFilter(truckNumber, year, month string) (Filter, error) {
	return Filter{TruckNumber: truckNumber, Year: year, Month: month}.Normalize()
}

// Normalize trims the fields, maps empty values to FilterAll, canonicalises the
// year and month numbers and drops the month when no year is selected, since a
// month without a year cannot be bucketed by day.
func (f Filter) Normalize() (Filter, error) {
	out := Filter{
		TruckNumber: normalizeAll(f.TruckNumber),
		Year:        normalizeAll(f.Year),
		Month:       normalizeAll(f.Month),
	}

	if out.Year != FilterAll {
		year, err := strconv.Atoi(out.Year)
		if err != nil || year < 1 || year > 9999 {
			return Filter{}, apperrors.NewValidationError("invalid year %q", f.Year)
		}
		out.Year = strconv.Itoa(year)
	}

	if out.Month != FilterAll {
		month, err := strconv.Atoi(out.Month)
		if err != nil || month < 1 || month > 12 {
			return Filter{}, apperrors.NewValidationError("invalid month %q: must be between 1 and 12", f.Month)
		}
		out.Month = strconv.Itoa(month)
	}

	if out.Year == FilterAll {
		out.Month = FilterAll
	}
	return out, nil
}

// AllTrucks reports whether the filter spans every truck.
func (f Filter) AllTrucks() bool {
	return f.TruckNumber == FilterAll
}

// YearValue returns the selected year, or false for FilterAll.
func (f Filter) YearValue() (int, bool) {
	return parseSelected(f.Year)
}

// MonthValue returns the selected 1-based month, or false for FilterAll.
func (f Filter) MonthValue() (int, bool) {
	return parseSelected(f.Month)
}

// ByDay reports whether the time series should be bucketed by day of month.
func (f Filter) ByDay() bool {
	_, hasYear := f.YearValue()
	_, hasMonth := f.MonthValue()
	return hasYear && hasMonth
}

func normalizeAll(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, FilterAll) {
		return FilterAll
	}
	return v
}

func parseSelected(v string) (int, bool) {
	if v == FilterAll || v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
