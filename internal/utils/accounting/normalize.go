package accounting

import (
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a stored monetary value into a non-negative decimal.
// Nil, blank, unparsable and negative values all yield zero. Thousands
// separators are accepted ("1,250.50").
func ParseAmount(raw *string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	s := strings.ReplaceAll(strings.TrimSpace(*raw), ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// NormalizeLineItem coerces every amount of a raw line item and prepares the
// remark for case-insensitive keyword matching. It never fails.
func NormalizeLineItem(item domain.InvoiceLineItem) domain.NormalizedLineItem {
	remark := ""
	if item.Remark != nil {
		remark = strings.TrimSpace(*item.Remark)
	}

	return domain.NormalizedLineItem{
		ID:            item.ID,
		InvoiceID:     item.InvoiceID,
		Date:          item.Date,
		TruckID:       item.TruckID,
		TruckNumber:   strings.TrimSpace(item.TruckNumber),
		CustomerName:  item.CustomerName,
		Order:         item.Order,
		Loading:       item.Loading,
		Returning:     item.Returning,
		Destination:   item.Destination,
		Freight:       ParseAmount(item.Freight),
		Toll:          ParseAmount(item.Toll),
		Gas:           ParseAmount(item.Gas),
		ExtraExpense:  ParseAmount(item.ExtraExpense),
		DriverAdvance: ParseAmount(item.DriverAdvance),
		Remark:        remark,
		RemarkKey:     strings.ToLower(remark),
	}
}
