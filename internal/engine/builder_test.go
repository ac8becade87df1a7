package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestbowl/cookplan/internal/model"
)

func TestGeneratePurchaseOrder_ReferenceRecipe(t *testing.T) {
	planner := New(model.DefaultCatalog())
	cook := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	order, err := planner.GeneratePurchaseOrder(model.GenerationInput{
		RecipeName:      "Beef & Quinoa Harvest",
		BatchMultiplier: 1,
		CookDate:        cook,
	})
	require.NoError(t, err)

	require.Len(t, order.LineItems, 2)
	assert.Equal(t, model.VendorName, order.VendorName)
	assert.Equal(t, cook.AddDate(0, 0, -1), order.NeededBy)
	assert.Equal(t, cook.AddDate(0, 0, -2), order.PickupDate)

	liver := order.FindLineItem("Beef Liver, Raw")
	require.NotNil(t, liver)
	assert.Equal(t, 10.0, liver.OrderQuantityLbs)
	assert.Equal(t, "Rounded up from 1.50 lbs to meet 10 lb minimum", liver.Notes)

	beef := order.FindLineItem("Ground beef (90% lean/10% fat)")
	require.NotNil(t, beef)
	assert.Equal(t, 30.0, beef.OrderQuantityLbs)
	assert.Empty(t, beef.Notes, "22.50 lbs is above the minimum")

	assert.Equal(t, 40.0, order.TotalLbs)
}

func TestGeneratePurchaseOrder_CustomMinimumAndLeadTime(t *testing.T) {
	planner := New(model.DefaultCatalog())
	planner.SetLeadTimeDays(5)
	cook := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)

	order, err := planner.GeneratePurchaseOrder(model.GenerationInput{
		RecipeName:      "Beef & Quinoa Harvest",
		BatchMultiplier: 1,
		CookDate:        cook,
		MinimumOrderLbs: 25,
	})
	require.NoError(t, err)

	assert.Equal(t, cook.AddDate(0, 0, -5), order.PickupDate)
	assert.Equal(t, cook.AddDate(0, 0, -1), order.NeededBy, "needed-by ignores lead time")

	beef := order.FindLineItem("Ground beef (90% lean/10% fat)")
	require.NotNil(t, beef)
	assert.Equal(t, 25.0, beef.OrderQuantityLbs)
	assert.Equal(t, "Rounded up from 22.50 lbs to meet 25 lb minimum", beef.Notes)
}

func TestGeneratePurchaseOrder_ZeroMinimumMeansDefault(t *testing.T) {
	planner := New(model.DefaultCatalog())

	order, err := planner.GeneratePurchaseOrder(model.GenerationInput{
		RecipeName:      "Chicken & White Rice",
		BatchMultiplier: 1,
		CookDate:        time.Date(2026, time.April, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, item := range order.LineItems {
		ratio := item.OrderQuantityLbs / model.DefaultMinimumOrderLbs
		assert.Equal(t, float64(int(ratio)), ratio, "quantities must be multiples of the default minimum")
	}
}

func TestGeneratePurchaseOrder_PropagatesRecipeNotFound(t *testing.T) {
	planner := New(model.DefaultCatalog())

	_, err := planner.GeneratePurchaseOrder(model.GenerationInput{
		RecipeName:      "Venison Medley",
		BatchMultiplier: 1,
		CookDate:        time.Now(),
	})
	var notFound *RecipeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Venison Medley", notFound.RecipeName)
}

func TestGeneratePurchaseOrder_TotalSumsOrderQuantities(t *testing.T) {
	planner := New(model.DefaultCatalog())

	order, err := planner.GeneratePurchaseOrder(model.GenerationInput{
		RecipeName:      "Pork & Apple Orchard",
		BatchMultiplier: 3,
		CookDate:        time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var sum float64
	for _, item := range order.LineItems {
		sum += item.OrderQuantityLbs
	}
	assert.Equal(t, sum, order.TotalLbs)
}
