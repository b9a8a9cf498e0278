// Package clipboard turns a tab separated paste from a customer's trip
// statement into import rows.
//
// The statement template has no header row and a fixed column layout:
//
//	0 date (dd/mm/yyyy)   2 work order   4 customer   5 pickup
//	6 container return    7 goods / destination       8 freight
//
// Columns 1 and 3 are ignored. Lines with fewer than nine columns are
// skipped, so totals and blank lines can be pasted along with the trips.
package clipboard

import (
	"strings"
	"time"

	"github.com/SscSPs/truck_invoice_app/internal/apperrors"
	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/utils/accounting"
)

const (
	colDate = iota
	_
	colOrder
	_
	colCustomer
	colPickup
	colReturn
	colGoods
	colFreight

	minColumns = colFreight + 1
)

var dateLayouts = []string{"2/1/2006", "02/01/2006", "2006-01-02"}

// Parse converts raw clipboard text into import rows.
func Parse(raw string) ([]domain.ImportRow, error) {
	var rows []domain.ImportRow
	for i, line := range strings.Split(raw, "\n") {
		cols := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(cols) < minColumns {
			continue
		}

		date, err := ParseDate(cols[colDate])
		if err != nil {
			return nil, apperrors.NewValidationError("line %d: %v", i+1, err)
		}
		customer := strings.TrimSpace(cols[colCustomer])
		if customer == "" {
			return nil, apperrors.NewValidationError("line %d: customer name is empty", i+1)
		}
		freight := strings.TrimSpace(cols[colFreight])

		rows = append(rows, domain.ImportRow{
			Date:         date,
			Order:        strings.TrimSpace(cols[colOrder]),
			CustomerName: customer,
			Pickup:       strings.TrimSpace(cols[colPickup]),
			ReturnLoc:    strings.TrimSpace(cols[colReturn]),
			Goods:        strings.TrimSpace(cols[colGoods]),
			Freight:      accounting.ParseAmount(&freight),
		})
	}

	if len(rows) == 0 {
		return nil, apperrors.NewValidationError("no importable rows: expected at least %d tab separated columns per line", minColumns)
	}
	return rows, nil
}

// ParseDate accepts dd/mm/yyyy (with or without leading zeros) and yyyy-mm-dd.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewValidationError("invalid date %q: expected dd/mm/yyyy", s)
}
