package shopping

import "github.com/kecarajocomer/v3/internal/domain/planning"

// AggregateDemand collects the ingredient quantities required by every
// resolvable meal in the given entries, scaled by servings, and
// attributes each requirement to the recipes that need it.
//
// Degradation is deliberate and silent: entries without a resolved
// recipe contribute nothing, requirements without a usable ingredient
// name are skipped, and quantities in a unit the accumulator's policy
// rejects are discarded while the recipe is still recorded as a user
// of the ingredient.
func AggregateDemand(entries []*planning.MealPlanEntry, policy UnitPolicy) *Demand {
	if policy == nil {
		policy = StrictUnitPolicy
	}

	demand := NewDemand()
	for _, entry := range entries {
		if entry == nil || !entry.HasResolvedRecipe() {
			continue
		}

		servings := float64(entry.EffectiveServings())
		for _, req := range entry.Recipe.Ingredients {
			key := NormalizeName(req.Name)
			if key == "" {
				continue
			}

			adjusted := req.Quantity * servings
			if acc, ok := demand.Get(key); ok {
				if policy(acc.Unit, req.Unit) == MergeAdd {
					acc.TotalQuantity += adjusted
				}
				acc.RecipeTitles = append(acc.RecipeTitles, entry.Recipe.Title)
				continue
			}

			demand.put(key, &AggregatedRequirement{
				Name:          key,
				TotalQuantity: adjusted,
				Unit:          req.Unit,
				RecipeTitles:  []string{entry.Recipe.Title},
				Category:      req.CategoryOrDefault(),
			})
		}
	}

	return demand
}
