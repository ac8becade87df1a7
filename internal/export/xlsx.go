package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/harvestbowl/cookplan/internal/model"
)

const sheetName = "Purchase Order"

// ExportXLSX writes the purchase order as a one-sheet workbook with the
// same structural content as the email rendering: PO number, vendor,
// dates, line-item rows, and a total row.
func ExportXLSX(path string, order model.PurchaseOrder, poNumber string) error {
	if len(order.LineItems) == 0 {
		return fmt.Errorf("no line items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	setCell := func(cell string, value interface{}) {
		// SetCellValue only fails on an invalid coordinate; ours are fixed
		_ = f.SetCellValue(sheetName, cell, value)
	}

	setCell("A1", "Purchase Order")
	setCell("B1", poNumber)
	setCell("A2", "Vendor")
	setCell("B2", order.VendorName)
	setCell("A3", "Needed By")
	setCell("B3", order.NeededBy.Format(dateLayout))
	setCell("A4", "Pickup Date")
	setCell("B4", order.PickupDate.Format(dateLayout))

	headerRow := 6
	setCell(fmt.Sprintf("A%d", headerRow), "Ingredient")
	setCell(fmt.Sprintf("B%d", headerRow), "Required (lbs)")
	setCell(fmt.Sprintf("C%d", headerRow), "Order Qty (lbs)")
	setCell(fmt.Sprintf("D%d", headerRow), "Notes")
	_ = f.SetCellStyle(sheetName, "A1", "B1", bold)
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("D%d", headerRow), bold)

	row := headerRow + 1
	for _, item := range order.LineItems {
		setCell(fmt.Sprintf("A%d", row), item.IngredientName)
		setCell(fmt.Sprintf("B%d", row), item.RequiredLbs)
		setCell(fmt.Sprintf("C%d", row), item.OrderQuantityLbs)
		if item.Notes != "" {
			setCell(fmt.Sprintf("D%d", row), item.Notes)
		}
		row++
	}

	setCell(fmt.Sprintf("A%d", row), "Total")
	setCell(fmt.Sprintf("C%d", row), order.TotalLbs)
	_ = f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), bold)

	_ = f.SetColWidth(sheetName, "A", "A", 36)
	_ = f.SetColWidth(sheetName, "B", "D", 18)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
