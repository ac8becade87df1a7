package engine

import "github.com/harvestbowl/cookplan/internal/model"

// GeneratePurchaseOrder builds the complete protein purchase order for
// one recipe/multiplier/cook-date combination: requirements are
// extracted and scaled, rounded to the vendor minimum, dated against the
// cook schedule, and totalled under the fixed vendor identity.
func (p *Planner) GeneratePurchaseOrder(input model.GenerationInput) (model.PurchaseOrder, error) {
	items, err := p.ProteinRequirements(input.RecipeName, input.BatchMultiplier)
	if err != nil {
		return model.PurchaseOrder{}, err
	}

	minimum := input.MinimumOrderLbs
	if minimum <= 0 {
		minimum = model.DefaultMinimumOrderLbs
	}
	items = RoundToMinimumOrder(items, minimum)

	sched := CalculateDates(input.CookDate, p.leadTimeDays)

	var total float64
	for _, item := range items {
		total += item.OrderQuantityLbs
	}

	return model.PurchaseOrder{
		LineItems:  items,
		TotalLbs:   total,
		NeededBy:   sched.NeededBy,
		PickupDate: sched.PickupDate,
		VendorName: model.VendorName,
	}, nil
}
