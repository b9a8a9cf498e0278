// Package pdf renders per-invoice statements with gofpdf.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/SscSPs/truck_invoice_app/internal/utils"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

// ContentType is the media type of rendered statements.
const ContentType = "application/pdf"

const (
	coreFont    = "Helvetica"
	unicodeFont = "Statement"
)

type tableColumn struct {
	title string
	width float64
	align string
}

// Landscape A4 leaves 277mm between the default margins.
var tableColumns = []tableColumn{
	{"Date", 20, "L"},
	{"Order", 22, "L"},
	{"Customer", 38, "L"},
	{"Pickup", 30, "L"},
	{"Return", 30, "L"},
	{"Destination", 30, "L"},
	{"Freight", 22, "R"},
	{"Toll", 18, "R"},
	{"Gas", 18, "R"},
	{"Extra", 18, "R"},
	{"Advance", 20, "R"},
}

// Renderer builds invoice statements. Without a font file only Latin text
// renders; Thai names need a UTF-8 TrueType font such as Sarabun.
type Renderer struct {
	wagePercent string
	font        []byte
}

// NewRenderer loads the optional TrueType font at fontPath.
func NewRenderer(wageRate decimal.Decimal, fontPath string) (*Renderer, error) {
	r := &Renderer{wagePercent: wageRate.Mul(decimal.NewFromInt(100)).String()}
	if fontPath != "" {
		font, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read pdf font %s: %w", fontPath, err)
		}
		r.font = font
	}
	return r, nil
}

// InvoiceStatement renders the trips of one invoice and the totals computed by the aggregator.
func (r *Renderer) InvoiceStatement(invoice domain.Invoice, report *domain.DashboardReport) (*domain.ExportFile, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Statement %s %s", invoice.TruckNumber, invoice.MonthKey()), true)

	family := coreFont
	text := pdf.UnicodeTranslatorFromDescriptor("")
	if r.font != nil {
		pdf.AddUTF8FontFromBytes(unicodeFont, "", r.font)
		pdf.AddUTF8FontFromBytes(unicodeFont, "B", r.font)
		family = unicodeFont
		text = func(s string) string { return s }
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, "TRIP STATEMENT")
	pdf.Ln(12)

	pdf.SetFont(family, "", 11)
	pdf.Cell(0, 6, text("Truck   : "+safe(invoice.TruckNumber, "-")))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Month   : "+invoice.MonthKey())
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Trips   : %d", report.Summary.ItemCount))
	pdf.Ln(10)

	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(220, 230, 241)
	for _, col := range tableColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 8)
	for _, item := range report.Items {
		values := []string{
			item.Date.Format("02/01/2006"),
			item.Order,
			item.CustomerName,
			item.Loading,
			item.Returning,
			item.Destination,
			utils.FormatBaht(item.Freight),
			utils.FormatBaht(item.Toll),
			utils.FormatBaht(item.Gas),
			utils.FormatBaht(item.ExtraExpense),
			utils.FormatBaht(item.DriverAdvance),
		}
		for i, col := range tableColumns {
			pdf.CellFormat(col.width, 6, fit(pdf, text(values[i]), col.width), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	s := report.Summary
	totals := []struct {
		label  string
		amount decimal.Decimal
		bold   bool
	}{
		{"Total freight", s.Revenue, true},
		{"Total toll", s.Toll, false},
		{"Total gas", s.Gas, false},
		{"Total extra", s.Extra, false},
		{"Repair", s.Repair, false},
		{"Parking", s.Parking, false},
		{"Other advances", s.Miscellaneous, false},
		{"Total expense", s.Expense, true},
		{"Remaining (net)", s.NetProfit, true},
		{fmt.Sprintf("Driver income (%s%%)", r.wagePercent), s.DriverWage16Total, false},
		{"Driver flat wage", s.DriverWageFlatTotal, false},
		{"Driver net income", s.DriverTotalReceive, true},
	}
	for _, line := range totals {
		style := ""
		if line.bold {
			style = "B"
		}
		pdf.SetFont(family, style, 10)
		pdf.CellFormat(60, 6, line.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, utils.FormatBaht(line.amount), "", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error writing statement to buffer: %w", err)
	}

	return &domain.ExportFile{
		Name:        FileName(invoice),
		ContentType: ContentType,
		Content:     buf.Bytes(),
	}, nil
}

// FileName returns <truckNumber>_<YYYY-MM>.pdf.
func FileName(invoice domain.Invoice) string {
	return fmt.Sprintf("%s_%s.pdf", safeFilenamePart(invoice.TruckNumber), invoice.MonthKey())
}

// fit trims s with an ellipsis until it fits a cell of width mm.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"..") > limit {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ".."
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

var filenameReplacer = strings.NewReplacer("/", "-", "\\", "-", " ", "_", "\"", "", ":", "-")

func safeFilenamePart(s string) string {
	s = filenameReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}
