// Package export renders purchase orders into the formats handed to the
// vendor contact: plain-text email body, printable PDF, and XLSX.
package export

import (
	"fmt"
	"strings"

	"github.com/harvestbowl/cookplan/internal/model"
)

// dateLayout is the calendar format used on all rendered orders.
const dateLayout = "Monday, January 2, 2006"

// FormatForEmail renders a purchase order as the plain-text body sent to
// the vendor contact. Downstream consumers parse this shape: PO number
// header, the two date lines, the itemized list, a total line, and a
// closing confirmation request.
func FormatForEmail(order model.PurchaseOrder, poNumber string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Purchase Order %s\n", poNumber)
	fmt.Fprintf(&b, "Vendor: %s\n\n", order.VendorName)
	fmt.Fprintf(&b, "Needed By: %s\n", order.NeededBy.Format(dateLayout))
	fmt.Fprintf(&b, "Pickup Date: %s\n\n", order.PickupDate.Format(dateLayout))

	for _, item := range order.LineItems {
		fmt.Fprintf(&b, "- %s: %.1f lbs\n", item.IngredientName, item.OrderQuantityLbs)
		if item.Notes != "" {
			fmt.Fprintf(&b, "  (%s)\n", item.Notes)
		}
	}

	fmt.Fprintf(&b, "\nTotal: %.1f lbs\n\n", order.TotalLbs)
	b.WriteString("Please confirm availability and pickup time at your earliest convenience.\n")

	return b.String()
}
