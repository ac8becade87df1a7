package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// VendorName is the display name of the single protein vendor this
// engine's purchase orders target.
const VendorName = "Mosner Family Brands"

// DefaultMinimumOrderLbs is the smallest line-item quantity the vendor
// will fulfill; every order quantity rounds up to a multiple of it.
const DefaultMinimumOrderLbs = 10.0

// DefaultLeadTimeDays is how many days before the cook date ingredients
// are picked up from the vendor.
const DefaultLeadTimeDays = 2

// LineItem is one protein line on a purchase order.
type LineItem struct {
	IngredientName   string  `json:"ingredient_name"`
	RequiredLbs      float64 `json:"required_lbs"`       // exact scaled requirement
	OrderQuantityLbs float64 `json:"order_quantity_lbs"` // rounded-up quantity, always >= RequiredLbs
	Notes            string  `json:"notes,omitempty"`    // set only when rounding changed the quantity
}

// GenerationInput is what a caller supplies to generate one purchase
// order: which recipe, how many base batches, and when it cooks.
// MinimumOrderLbs of zero means DefaultMinimumOrderLbs.
type GenerationInput struct {
	RecipeName      string    `json:"recipe_name"`
	BatchMultiplier float64   `json:"batch_multiplier"` // 1.0 = one base batch
	CookDate        time.Time `json:"cook_date"`
	MinimumOrderLbs float64   `json:"minimum_order_lbs,omitempty"`
}

// PurchaseOrder is a generated (or combined) protein order.
type PurchaseOrder struct {
	LineItems  []LineItem `json:"line_items"`
	TotalLbs   float64    `json:"total_lbs"` // sum of OrderQuantityLbs
	NeededBy   time.Time  `json:"needed_by"`
	PickupDate time.Time  `json:"pickup_date"`
	VendorName string     `json:"vendor_name"`
}

// FindLineItem returns a pointer to the line item for the named
// ingredient, or nil.
func (po *PurchaseOrder) FindLineItem(ingredient string) *LineItem {
	for i := range po.LineItems {
		if po.LineItems[i].IngredientName == ingredient {
			return &po.LineItems[i]
		}
	}
	return nil
}

// NewPONumber generates a purchase order number like "PO-1A2B3C4D".
func NewPONumber() string {
	return "PO-" + strings.ToUpper(uuid.New().String()[:8])
}
