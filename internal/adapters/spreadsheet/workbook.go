// Package spreadsheet renders aggregated reports as xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/truck_invoice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ContentType is the media type of every workbook produced here.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	invoiceSheet = "Invoice Details"
	summarySheet = "Summary"
	seriesSheet  = "Series"
	trucksSheet  = "Trucks"

	headerFill   = "#DCE6F1"
	amountFormat = "#,##0.00"
)

type column struct {
	title string
	width float64
}

var invoiceColumns = []column{
	{"ID", 8},
	{"วันที่", 15},
	{"ใบงาน", 15},
	{"ลูกค้า", 20},
	{"รับตู้", 20},
	{"คืนตู้", 20},
	{"ส่งของ", 20},
	{"ค่าบรรทุก", 12},
	{"ทางด่วน", 10},
	{"ก๊าซ/น้ำมัน", 10},
	{"จ่ายพิเศษ", 15},
	{"เบิก", 15},
	{"หมายเหตุ", 25},
}

// Summary labels sit in the "รับตู้" column with their values under "ค่าบรรทุก".
const (
	summaryLabelCol = 5
	summaryValueCol = 8
	firstAmountCol  = 8
	lastAmountCol   = 12
)

// Renderer builds workbooks from DashboardReports.
type Renderer struct {
	wagePercent string
}

// NewRenderer returns a Renderer whose driver income label shows wageRate as a percentage.
func NewRenderer(wageRate decimal.Decimal) *Renderer {
	return &Renderer{wagePercent: wageRate.Mul(decimal.NewFromInt(100)).String()}
}

type labelledAmount struct {
	label  string
	amount decimal.Decimal
}

// summaryRows returns the totals block shared by every invoice statement.
func (r *Renderer) summaryRows(s domain.SummaryStatistics) []labelledAmount {
	return []labelledAmount{
		{"รวมค่าขนส่งทั้งหมด", s.Revenue},
		{"รวมค่าทางด่วน", s.Toll},
		{"รวมค่าน้ำมัน", s.Gas},
		{"รวมค่าใช้จ่ายอื่นๆ", s.Extra},
		{"ค่าซ่อมบำรุง", s.Repair},
		{"ค่าจอด/พักรถ", s.Parking},
		{"เบิกอื่นๆ", s.Miscellaneous},
		{"รวมค่าใช้จ่ายทั้งหมด", s.Expense},
		{"คงเหลือ (รายได้สุทธิ)", s.NetProfit},
		{fmt.Sprintf("รายได้พนักงานขับ (%s%%)", r.wagePercent), s.DriverWage16Total},
		{"ค่าเที่ยวเหมา", s.DriverWageFlatTotal},
		{"รายได้คนขับสุทธิ", s.DriverTotalReceive},
	}
}

// InvoiceWorkbook renders the line items of one invoice followed by its totals.
func (r *Renderer) InvoiceWorkbook(invoice domain.Invoice, report *domain.DashboardReport) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return nil, fmt.Errorf("failed to name invoice sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	titles := make([]any, len(invoiceColumns))
	for i, col := range invoiceColumns {
		titles[i] = col.title
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(invoiceSheet, name, name, col.width); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}
	if err := writeRow(f, invoiceSheet, 1, titles); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(invoiceColumns))
	if err := f.SetCellStyle(invoiceSheet, "A1", lastCol+"1", styles.header); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, item := range report.Items {
		values := []any{
			item.ID,
			item.Date.Format("2006-01-02"),
			item.Order,
			item.CustomerName,
			item.Loading,
			item.Returning,
			item.Destination,
			item.Freight.InexactFloat64(),
			item.Toll.InexactFloat64(),
			item.Gas.InexactFloat64(),
			item.ExtraExpense.InexactFloat64(),
			item.DriverAdvance.InexactFloat64(),
			item.Remark,
		}
		if err := writeRow(f, invoiceSheet, row, values); err != nil {
			return nil, err
		}
		row++
	}
	if len(report.Items) > 0 {
		from, _ := excelize.CoordinatesToCellName(firstAmountCol, 2)
		to, _ := excelize.CoordinatesToCellName(lastAmountCol, row-1)
		if err := f.SetCellStyle(invoiceSheet, from, to, styles.amount); err != nil {
			return nil, fmt.Errorf("failed to style amounts: %w", err)
		}
	}

	row++ // blank separator
	for _, line := range r.summaryRows(report.Summary) {
		if err := writeLabelled(f, invoiceSheet, row, summaryLabelCol, summaryValueCol, line, styles); err != nil {
			return nil, err
		}
		row++
	}

	content, err := toBytes(f)
	if err != nil {
		return nil, err
	}
	return &domain.ExportFile{
		Name:        InvoiceFileName(invoice),
		ContentType: ContentType,
		Content:     content,
	}, nil
}

// SummaryWorkbook renders a dashboard report: KPIs, the time series and,
// for all trucks, the per-truck comparison.
func (r *Renderer) SummaryWorkbook(report *domain.DashboardReport) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}
	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	filter := report.Filter
	meta := [][]any{
		{"รถ", filter.TruckNumber},
		{"ปี", filter.Year},
		{"เดือน", filter.Month},
		{"จำนวนรายการ", report.Summary.ItemCount},
	}
	row := 1
	for _, values := range meta {
		if err := writeRow(f, summarySheet, row, values); err != nil {
			return nil, err
		}
		row++
	}
	row++

	s := report.Summary
	kpis := append([]labelledAmount{
		{"รายได้", s.Revenue},
		{"ค่าใช้จ่าย", s.Expense},
		{"กำไรสุทธิ", s.NetProfit},
		{"อัตรากำไร (%)", s.Margin},
	}, r.summaryRows(s)...)
	for _, line := range kpis {
		if err := writeLabelled(f, summarySheet, row, 1, 2, line, styles); err != nil {
			return nil, err
		}
		row++
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to size summary sheet: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 16); err != nil {
		return nil, fmt.Errorf("failed to size summary sheet: %w", err)
	}

	if err := writeSeries(f, report.Series, styles); err != nil {
		return nil, err
	}
	if filter.AllTrucks() {
		if err := writeComparison(f, report.Comparison, styles); err != nil {
			return nil, err
		}
	}

	content, err := toBytes(f)
	if err != nil {
		return nil, err
	}
	return &domain.ExportFile{
		Name:        SummaryFileName(filter),
		ContentType: ContentType,
		Content:     content,
	}, nil
}

func writeSeries(f *excelize.File, series domain.TimeSeries, styles sheetStyles) error {
	if _, err := f.NewSheet(seriesSheet); err != nil {
		return fmt.Errorf("failed to create series sheet: %w", err)
	}
	period := "เดือน"
	if series.Mode == domain.SeriesByDay {
		period = "วันที่"
	}
	if err := writeRow(f, seriesSheet, 1, []any{period, "รายได้", "ค่าใช้จ่าย"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(seriesSheet, "A1", "C1", styles.header); err != nil {
		return fmt.Errorf("failed to style series header: %w", err)
	}
	for i, label := range series.Labels {
		values := []any{label, series.RevenueByPeriod[i].InexactFloat64(), series.ExpenseByPeriod[i].InexactFloat64()}
		if err := writeRow(f, seriesSheet, i+2, values); err != nil {
			return err
		}
	}
	if n := len(series.Labels); n > 0 {
		if err := f.SetCellStyle(seriesSheet, "B2", fmt.Sprintf("C%d", n+1), styles.amount); err != nil {
			return fmt.Errorf("failed to style series amounts: %w", err)
		}
	}
	return f.SetColWidth(seriesSheet, "A", "C", 16)
}

func writeComparison(f *excelize.File, comparison domain.TruckComparison, styles sheetStyles) error {
	if _, err := f.NewSheet(trucksSheet); err != nil {
		return fmt.Errorf("failed to create trucks sheet: %w", err)
	}
	if err := writeRow(f, trucksSheet, 1, []any{"รถ", "รายได้", "ค่าใช้จ่าย", "กำไรสุทธิ"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(trucksSheet, "A1", "D1", styles.header); err != nil {
		return fmt.Errorf("failed to style trucks header: %w", err)
	}
	for i, truck := range sortedTrucks(comparison) {
		totals := comparison[truck]
		values := []any{
			truck,
			totals.Revenue.InexactFloat64(),
			totals.Expense.InexactFloat64(),
			totals.Revenue.Sub(totals.Expense).InexactFloat64(),
		}
		if err := writeRow(f, trucksSheet, i+2, values); err != nil {
			return err
		}
	}
	if n := len(comparison); n > 0 {
		if err := f.SetCellStyle(trucksSheet, "B2", fmt.Sprintf("D%d", n+1), styles.amount); err != nil {
			return fmt.Errorf("failed to style truck amounts: %w", err)
		}
	}
	return f.SetColWidth(trucksSheet, "A", "D", 16)
}

type sheetStyles struct {
	header      int
	amount      int
	label       int
	labelAmount int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error
	numFmt := amountFormat

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{headerFill},
			Pattern: 1,
		},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	if s.amount, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return s, fmt.Errorf("failed to create amount style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("failed to create label style: %w", err)
	}
	s.labelAmount, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create total style: %w", err)
	}
	return s, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// writeLabelled writes a bold label and its bold, formatted amount on one row.
func writeLabelled(f *excelize.File, sheet string, row, labelCol, valueCol int, line labelledAmount, styles sheetStyles) error {
	labelCell, _ := excelize.CoordinatesToCellName(labelCol, row)
	valueCell, _ := excelize.CoordinatesToCellName(valueCol, row)

	if err := f.SetCellValue(sheet, labelCell, line.label); err != nil {
		return fmt.Errorf("failed to write %s: %w", labelCell, err)
	}
	if err := f.SetCellValue(sheet, valueCell, line.amount.InexactFloat64()); err != nil {
		return fmt.Errorf("failed to write %s: %w", valueCell, err)
	}
	if err := f.SetCellStyle(sheet, labelCell, labelCell, styles.label); err != nil {
		return err
	}
	return f.SetCellStyle(sheet, valueCell, valueCell, styles.labelAmount)
}

func toBytes(f *excelize.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// InvoiceFileName returns <truckNumber>_<YYYY-MM>.xlsx.
func InvoiceFileName(invoice domain.Invoice) string {
	return fmt.Sprintf("%s_%s.xlsx", fileSafe(invoice.TruckNumber), invoice.MonthKey())
}

// SummaryFileName returns summary_<truck|all>_<year|all>[-MM].xlsx.
func SummaryFileName(filter domain.Filter) string {
	period := filter.Year
	if month, ok := filter.MonthValue(); ok {
		period = fmt.Sprintf("%s-%02d", filter.Year, month)
	}
	return fmt.Sprintf("summary_%s_%s.xlsx", fileSafe(filter.TruckNumber), period)
}

func sortedTrucks(comparison domain.TruckComparison) []string {
	trucks := make([]string, 0, len(comparison))
	for truck := range comparison {
		trucks = append(trucks, truck)
	}
	sort.Strings(trucks)
	return trucks
}

var fileNameReplacer = strings.NewReplacer("/", "-", "\\", "-", " ", "_", "\"", "", ":", "-")

func fileSafe(s string) string {
	s = fileNameReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return "unknown"
	}
	return s
}
