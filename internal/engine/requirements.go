package engine

import (
	"fmt"
	"sort"

	"github.com/harvestbowl/cookplan/internal/model"
)

// ProteinRequirements extracts the protein-category ingredients from the
// named recipe's base batch, scales their gram quantities by the batch
// multiplier, and converts to pounds. Non-protein ingredients and egg
// ingredients are skipped. OrderQuantityLbs starts equal to RequiredLbs;
// rounding happens later.
//
// Line items come back sorted by ingredient name so repeated generations
// of the same order are byte-identical.
func (p *Planner) ProteinRequirements(recipeName string, batchMultiplier float64) ([]model.LineItem, error) {
	if batchMultiplier <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidMultiplier, batchMultiplier)
	}

	batch, ok := p.catalog.LookupBaseBatch(recipeName)
	if !ok {
		return nil, &RecipeNotFoundError{RecipeName: recipeName}
	}

	proteins := p.catalog.ProteinIngredientNames()

	names := make([]string, 0, len(batch.Ingredients))
	for name := range batch.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []model.LineItem
	for _, name := range names {
		if !proteins[name] {
			continue
		}
		requiredLbs := model.GramsToPounds(batch.Ingredients[name] * batchMultiplier)
		items = append(items, model.LineItem{
			IngredientName:   name,
			RequiredLbs:      requiredLbs,
			OrderQuantityLbs: requiredLbs,
		})
	}
	return items, nil
}
