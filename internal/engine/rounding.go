package engine

import (
	"fmt"
	"math"

	"github.com/harvestbowl/cookplan/internal/model"
)

// RoundToMinimumOrder rounds every line item's order quantity up to the
// nearest multiple of the vendor's minimum order size. A minimum of zero
// or less means model.DefaultMinimumOrderLbs.
//
// A note is attached only when the exact requirement was below the
// minimum, not whenever rounding occurred: 10.5 lbs against a 10 lb
// minimum becomes 20 lbs with no note, because 10.5 is not under the
// minimum. Downstream PO records depend on this boundary.
func RoundToMinimumOrder(items []model.LineItem, minimumOrderLbs float64) []model.LineItem {
	if minimumOrderLbs <= 0 {
		minimumOrderLbs = model.DefaultMinimumOrderLbs
	}

	out := make([]model.LineItem, len(items))
	for i, item := range items {
		item.OrderQuantityLbs = math.Ceil(item.RequiredLbs/minimumOrderLbs) * minimumOrderLbs
		if item.RequiredLbs < minimumOrderLbs {
			item.Notes = fmt.Sprintf("Rounded up from %.2f lbs to meet %g lb minimum",
				item.RequiredLbs, minimumOrderLbs)
		}
		out[i] = item
	}
	return out
}
