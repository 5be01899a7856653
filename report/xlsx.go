package report

import (
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

const currencyFormat = `"$"#,##0.00`

// reportColumns are the per-order columns written under each section
var reportColumns = []string{
	"Order",
	"Date",
	"Customer",
	"State",
	"Seedlings",
	"Other",
	"Seedling $",
	"Other $",
	"Shipping $",
	"Discount $",
	"Tax $",
	"Total $",
	"Method",
}

// WorkbookFilename returns the export filename for a week, like
// ATL_Weekly_Sales_0106_2025.xlsx
func WorkbookFilename(weekStart time.Time) string {
	return fmt.Sprintf("ATL_Weekly_Sales_%s_%s.xlsx", weekStart.Format("0102"), weekStart.Format("2006"))
}

// SheetName returns the sheet title for a week, like "Weekly Sales 0106"
func SheetName(weekStart time.Time) string {
	return "Weekly Sales " + weekStart.Format("0102")
}

type workbookStyles struct {
	title      int
	bold       int
	section    int
	currency   int
	totalText  int
	totalMoney int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return s, err
	}
	s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return s, err
	}
	s.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9EAD3"}, Pattern: 1},
	})
	if err != nil {
		return s, err
	}
	curFmt := currencyFormat
	s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &curFmt})
	if err != nil {
		return s, err
	}
	s.totalText, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return s, err
	}
	s.totalMoney, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &curFmt})
	if err != nil {
		return s, err
	}

	return s, nil
}

// BuildWorkbook renders a weekly report as an xlsx workbook with a summary
// block, one labeled section per fulfillment type, and a totals row
func BuildWorkbook(rep *models.WeeklyReport) (*excelize.File, error) {
	weekStart, err := time.Parse("2006-01-02", rep.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid weekStart %q: %w", rep.WeekStart, err)
	}
	weekEnd, err := time.Parse("2006-01-02", rep.WeekEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid weekEnd %q: %w", rep.WeekEnd, err)
	}

	f := excelize.NewFile()
	sheet := SheetName(weekStart)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create styles: %w", err)
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 11)
	f.SetColWidth(sheet, "C", "C", 22)
	f.SetColWidth(sheet, "D", "F", 10)
	f.SetColWidth(sheet, "G", "L", 12)
	f.SetColWidth(sheet, "M", "M", 18)

	t := rep.Totals

	// Title block
	f.SetCellValue(sheet, "A1", "Atlanta Urban Farms Weekly Sales")
	f.SetCellStyle(sheet, "A1", "A1", styles.title)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Week of %s through %s", weekStart.Format("Jan 2, 2006"), weekEnd.Format("Jan 2, 2006")))

	if rep.Empty() {
		f.SetCellValue(sheet, "A4", "No orders found for this date range")
		return f, nil
	}

	// Summary block
	setSummaryPair(f, sheet, styles, 4, 1, "Total orders", t.OrderCount)
	setSummaryPair(f, sheet, styles, 4, 3, "Pickups", t.PickupCount)
	setSummaryPair(f, sheet, styles, 4, 5, "Replacements", t.ReplacementCount)
	setSummaryPair(f, sheet, styles, 4, 7, "Shipped", t.ShipCount)

	setSummaryPair(f, sheet, styles, 5, 1, "Seedlings sold", t.TotalSeedlings)
	setSummaryPair(f, sheet, styles, 5, 3, "Other items", t.TotalOther)
	setSummaryMoney(f, sheet, styles, 5, 5, "Avg $ per seedling", t.AvgRevenuePerSeedling.InexactFloat64())
	setSummaryMoney(f, sheet, styles, 5, 7, "Avg shipping per shipped order", t.AvgShippingPerShip.InexactFloat64())

	setCell(f, sheet, 6, 1, "Shipped order sizes")
	setCellStyleAt(f, sheet, 6, 1, styles.bold)
	setSummaryPair(f, sheet, styles, 6, 2, "1-10", t.ShipHistogram.UpTo10)
	setSummaryPair(f, sheet, styles, 6, 4, "11-20", t.ShipHistogram.UpTo20)
	setSummaryPair(f, sheet, styles, 6, 6, "21-40", t.ShipHistogram.UpTo40)
	setSummaryPair(f, sheet, styles, 6, 8, "Over 40", t.ShipHistogram.Over40)

	setSummaryMoney(f, sheet, styles, 7, 1, "Shipping income", t.TotalShippingIncome.InexactFloat64())
	setSummaryMoney(f, sheet, styles, 7, 3, "Flat $7 x shipped", t.FlatRateReference.InexactFloat64())

	// Column headers
	headerRow := 9
	for i, name := range reportColumns {
		setCell(f, sheet, headerRow, i+1, name)
		setCellStyleAt(f, sheet, headerRow, i+1, styles.bold)
	}

	row := headerRow + 1
	row = writeSection(f, sheet, styles, row, "PICKUPS", filterByType(rep.Orders, models.FulfillmentPickup))
	row = writeSection(f, sheet, styles, row, "REPLACE/ETC", filterByType(rep.Orders, models.FulfillmentReplacement))
	row = writeSection(f, sheet, styles, row, "SHIP", filterByType(rep.Orders, models.FulfillmentShip))

	// Totals row
	setCell(f, sheet, row, 1, "TOTALS")
	setCellStyleAt(f, sheet, row, 1, styles.totalText)
	setCell(f, sheet, row, 5, t.TotalSeedlings)
	setCell(f, sheet, row, 6, t.TotalOther)
	setCellStyleAt(f, sheet, row, 5, styles.totalText)
	setCellStyleAt(f, sheet, row, 6, styles.totalText)
	totalMoney := []float64{
		t.TotalSeedlingIncome.InexactFloat64(),
		t.TotalOtherRevenue.InexactFloat64(),
		t.TotalShippingIncome.InexactFloat64(),
		t.TotalDiscounts.InexactFloat64(),
		t.TotalTax.InexactFloat64(),
		t.TotalRevenue.InexactFloat64(),
	}
	for i, v := range totalMoney {
		setCell(f, sheet, row, 7+i, v)
		setCellStyleAt(f, sheet, row, 7+i, styles.totalMoney)
	}

	log.Printf("✅ BuildWorkbook: %s with %d orders", WorkbookFilename(weekStart), t.OrderCount)
	return f, nil
}

// writeSection writes a section label followed by one row per order and
// returns the next free row
func writeSection(f *excelize.File, sheet string, styles workbookStyles, row int, label string, orders []models.ReportOrder) int {
	setCell(f, sheet, row, 1, label)
	first, _ := excelize.CoordinatesToCellName(1, row)
	last, _ := excelize.CoordinatesToCellName(len(reportColumns), row)
	f.SetCellStyle(sheet, first, last, styles.section)
	row++

	for _, o := range orders {
		setCell(f, sheet, row, 1, o.OrderID)
		setCell(f, sheet, row, 2, o.OrderDate.Format("1/2/2006"))
		setCell(f, sheet, row, 3, customerName(o))
		setCell(f, sheet, row, 4, o.State)
		setCell(f, sheet, row, 5, o.SeedlingQty)
		setCell(f, sheet, row, 6, o.OtherQty)

		money := []float64{
			o.SeedlingIncome.InexactFloat64(),
			o.OtherRevenue.InexactFloat64(),
			o.ShippingIncome.InexactFloat64(),
			o.Discount.InexactFloat64(),
			o.Tax.InexactFloat64(),
			o.OrderTotal.InexactFloat64(),
		}
		for i, v := range money {
			setCell(f, sheet, row, 7+i, v)
			setCellStyleAt(f, sheet, row, 7+i, styles.currency)
		}

		setCell(f, sheet, row, 13, o.ShippingMethod)
		row++
	}

	return row
}

func filterByType(orders []models.ReportOrder, ft models.FulfillmentType) []models.ReportOrder {
	var out []models.ReportOrder
	for _, o := range orders {
		if o.Type == ft {
			out = append(out, o)
		}
	}
	return out
}

func customerName(o models.ReportOrder) string {
	if o.FirstName == "" {
		return o.LastName
	}
	if o.LastName == "" {
		return o.FirstName
	}
	return o.FirstName + " " + o.LastName
}

func setCell(f *excelize.File, sheet string, row, col int, value interface{}) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellValue(sheet, cell, value)
}

func setCellStyleAt(f *excelize.File, sheet string, row, col, style int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	f.SetCellStyle(sheet, cell, cell, style)
}

func setSummaryPair(f *excelize.File, sheet string, styles workbookStyles, row, col int, label string, value int) {
	setCell(f, sheet, row, col, label)
	setCellStyleAt(f, sheet, row, col, styles.bold)
	setCell(f, sheet, row, col+1, value)
}

func setSummaryMoney(f *excelize.File, sheet string, styles workbookStyles, row, col int, label string, value float64) {
	setCell(f, sheet, row, col, label)
	setCellStyleAt(f, sheet, row, col, styles.bold)
	setCell(f, sheet, row, col+1, value)
	setCellStyleAt(f, sheet, row, col+1, styles.currency)
}
