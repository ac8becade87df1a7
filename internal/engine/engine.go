// Package engine turns recipe base batches into vendor purchase orders:
// protein requirement extraction and scaling, minimum-order rounding,
// lead-time date computation, and multi-recipe order consolidation.
package engine

import (
	"errors"
	"fmt"

	"github.com/harvestbowl/cookplan/internal/model"
)

// ErrInvalidMultiplier is returned when a batch multiplier is zero or negative.
var ErrInvalidMultiplier = errors.New("batch multiplier must be positive")

// ErrNoOrders is returned when combining an empty set of purchase orders.
var ErrNoOrders = errors.New("no purchase orders to combine")

// RecipeNotFoundError indicates the requested recipe has no base batch
// in the catalog.
type RecipeNotFoundError struct {
	RecipeName string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe %q not found in catalog", e.RecipeName)
}

// Planner generates purchase orders against an injected read-only catalog.
// It holds no mutable state, so one Planner may be shared across
// concurrent generations.
type Planner struct {
	catalog      *model.Catalog
	leadTimeDays int
}

// New creates a Planner over the given catalog with the default
// vendor lead time.
func New(catalog *model.Catalog) *Planner {
	return &Planner{
		catalog:      catalog,
		leadTimeDays: model.DefaultLeadTimeDays,
	}
}

// SetLeadTimeDays overrides the pickup lead time for subsequent orders.
func (p *Planner) SetLeadTimeDays(days int) {
	p.leadTimeDays = days
}

// Catalog returns the catalog this planner runs against.
func (p *Planner) Catalog() *model.Catalog {
	return p.catalog
}
