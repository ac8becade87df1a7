package model

import "strings"

// RecipeBaseBatch is the standardized reference formula for one recipe at a
// fixed total batch weight, expressed as per-ingredient gram quantities.
// Base batches are authored by staff and never mutated at runtime.
type RecipeBaseBatch struct {
	TotalGrams  float64            `json:"total_grams"`
	TotalPounds float64            `json:"total_pounds"` // redundant cross-check of TotalGrams
	KcalPerKg   float64            `json:"kcal_per_kg"`  // energy density, used by meal-plan sizing, not by PO math
	Ingredients map[string]float64 `json:"ingredients"`  // ingredient name -> grams per base batch
}

// IngredientCategory groups ingredient names for filtering and display.
// Categories are flat membership sets; there is no behavior per category
// beyond membership testing.
type IngredientCategory struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Color       string   `json:"color"` // display hint only
	Icon        string   `json:"icon"`  // display hint only
}

// Contains reports whether the named ingredient belongs to this category.
func (c IngredientCategory) Contains(ingredient string) bool {
	for _, name := range c.Ingredients {
		if name == ingredient {
			return true
		}
	}
	return false
}

// ProteinCategoryName is the category holding vendor-orderable proteins.
const ProteinCategoryName = "Proteins"

// Catalog is the read-only reference data the planning engine runs against:
// base-batch formulas keyed by recipe name plus the ingredient categories.
// Callers construct one (or load it from disk) and inject it into the
// engine, which never mutates it.
type Catalog struct {
	Recipes    map[string]RecipeBaseBatch `json:"recipes"`
	Categories []IngredientCategory       `json:"categories"`
}

// LookupBaseBatch returns the base batch for the named recipe.
// The boolean is false when the recipe is not in the catalog.
func (c *Catalog) LookupBaseBatch(recipeName string) (RecipeBaseBatch, bool) {
	batch, ok := c.Recipes[recipeName]
	return batch, ok
}

// RecipeNames returns all recipe names in the catalog, unordered.
func (c *Catalog) RecipeNames() []string {
	names := make([]string, 0, len(c.Recipes))
	for name := range c.Recipes {
		names = append(names, name)
	}
	return names
}

// CategoryFor returns the category the named ingredient belongs to.
// An ingredient absent from every category falls back to the first
// category so a lookup never fails on unclassified data.
func (c *Catalog) CategoryFor(ingredient string) IngredientCategory {
	for _, cat := range c.Categories {
		if cat.Contains(ingredient) {
			return cat
		}
	}
	if len(c.Categories) > 0 {
		return c.Categories[0]
	}
	return IngredientCategory{}
}

// IsEggIngredient reports whether an ingredient name refers to eggs.
// Eggs come from a different supplier than the protein vendor, so any
// protein whose name contains "egg" (case-insensitive, substring match)
// is kept off protein purchase orders. The substring match is deliberate:
// it must catch variants like "Eggs, Liquid whole".
func IsEggIngredient(name string) bool {
	return strings.Contains(strings.ToLower(name), "egg")
}

// ProteinIngredientNames returns the set of ingredient names that go on a
// protein-vendor purchase order: every member of the Proteins category
// except egg ingredients (see IsEggIngredient).
func (c *Catalog) ProteinIngredientNames() map[string]bool {
	proteins := make(map[string]bool)
	for _, cat := range c.Categories {
		if cat.Name != ProteinCategoryName {
			continue
		}
		for _, name := range cat.Ingredients {
			if IsEggIngredient(name) {
				continue
			}
			proteins[name] = true
		}
	}
	return proteins
}
