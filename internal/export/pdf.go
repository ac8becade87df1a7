package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/harvestbowl/cookplan/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth   = 210.0
	marginLeft  = 20.0
	marginRight = 20.0
	marginTop   = 20.0
	qrSize      = 28.0 // QR code size in mm
)

// poQRPayload is the data encoded into the QR code on a printed order,
// scanned at the loading dock to match a delivery to its PO.
type poQRPayload struct {
	PONumber   string  `json:"po_number"`
	Vendor     string  `json:"vendor"`
	NeededBy   string  `json:"needed_by"`
	PickupDate string  `json:"pickup_date"`
	TotalLbs   float64 `json:"total_lbs"`
	Lines      int     `json:"lines"`
}

// ExportPDF writes a printable purchase order document to path: header
// with the PO number, vendor and date block, a line-item table, the
// total row, and a QR code encoding the order metadata as JSON.
func ExportPDF(path string, order model.PurchaseOrder, poNumber string) error {
	if len(order.LineItems) == 0 {
		return fmt.Errorf("no line items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	contentWidth := pageWidth - marginLeft - marginRight

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(contentWidth, 10, fmt.Sprintf("Purchase Order %s", poNumber), "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Vendor and date block
	headerItems := []struct {
		label string
		value string
	}{
		{"Vendor", order.VendorName},
		{"Needed By", order.NeededBy.Format(dateLayout)},
		{"Pickup Date", order.PickupDate.Format(dateLayout)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range headerItems {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(30, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(90, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	// QR code in the top-right corner, aligned with the header block
	if err := drawOrderQR(pdf, order, poNumber, pageWidth-marginRight-qrSize, marginTop+16); err != nil {
		return err
	}

	y += 6

	// Line item table header
	colWidths := []float64{80, 30, 30, 30}
	headers := []string{"Ingredient", "Required", "Order Qty", "Rounded"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 7

	// Table rows
	pdf.SetFont("Helvetica", "", 9)
	for i, item := range order.LineItems {
		rounded := ""
		if item.Notes != "" {
			rounded = "yes"
		}
		rowData := []string{
			item.IngredientName,
			fmt.Sprintf("%.2f lbs", item.RequiredLbs),
			fmt.Sprintf("%.1f lbs", item.OrderQuantityLbs),
			rounded,
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos = marginLeft
		for j, cell := range rowData {
			align := "L"
			if j > 0 {
				align = "R"
			}
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, align, true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Total row
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(colWidths[0], 7, "Total", "1", 0, "L", true, 0, "")
	pdf.SetXY(marginLeft+colWidths[0], y)
	pdf.CellFormat(colWidths[1]+colWidths[2]+colWidths[3], 7,
		fmt.Sprintf("%.1f lbs", order.TotalLbs), "1", 0, "R", true, 0, "")
	y += 12

	// Rounding notes below the table
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	for _, item := range order.LineItems {
		if item.Notes == "" {
			continue
		}
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(contentWidth, 4, fmt.Sprintf("%s: %s", item.IngredientName, item.Notes), "", 0, "L", false, 0, "")
		y += 5
	}
	pdf.SetTextColor(0, 0, 0)

	y += 6
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(contentWidth, 6,
		"Please confirm availability and pickup time at your earliest convenience.", "", 0, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// drawOrderQR renders the order-metadata QR code at the given position.
func drawOrderQR(pdf *fpdf.Fpdf, order model.PurchaseOrder, poNumber string, x, y float64) error {
	payload := poQRPayload{
		PONumber:   poNumber,
		Vendor:     order.VendorName,
		NeededBy:   order.NeededBy.Format("2006-01-02"),
		PickupDate: order.PickupDate.Format("2006-01-02"),
		TotalLbs:   order.TotalLbs,
		Lines:      len(order.LineItems),
	}

	qrData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal QR payload: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := "qr_" + poNumber
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
