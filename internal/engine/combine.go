package engine

import "github.com/harvestbowl/cookplan/internal/model"

// CombinePurchaseOrders merges several already-built purchase orders
// (e.g. every recipe cooked the same week) into one consolidated order.
// Quantities sum per ingredient; required and order quantities
// accumulate independently with no re-rounding after the sum. The
// earliest needed-by and pickup dates win. All inputs are assumed to
// share the single supported vendor.
//
// The first-seen note on a merged line item is kept verbatim even though
// its numeric fields may have since grown past the minimum; saved PO
// records downstream compare against exactly this output.
func CombinePurchaseOrders(orders []model.PurchaseOrder) (model.PurchaseOrder, error) {
	if len(orders) == 0 {
		return model.PurchaseOrder{}, ErrNoOrders
	}

	combined := model.PurchaseOrder{
		NeededBy:   orders[0].NeededBy,
		PickupDate: orders[0].PickupDate,
		VendorName: model.VendorName,
	}

	var merged []model.LineItem
	index := make(map[string]int)

	for _, order := range orders {
		if order.NeededBy.Before(combined.NeededBy) {
			combined.NeededBy = order.NeededBy
		}
		if order.PickupDate.Before(combined.PickupDate) {
			combined.PickupDate = order.PickupDate
		}
		for _, item := range order.LineItems {
			if i, ok := index[item.IngredientName]; ok {
				merged[i].RequiredLbs += item.RequiredLbs
				merged[i].OrderQuantityLbs += item.OrderQuantityLbs
			} else {
				index[item.IngredientName] = len(merged)
				merged = append(merged, item)
			}
		}
	}

	var total float64
	for _, item := range merged {
		total += item.OrderQuantityLbs
	}

	combined.LineItems = merged
	combined.TotalLbs = total
	return combined, nil
}
