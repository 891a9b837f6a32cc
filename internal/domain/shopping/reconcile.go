package shopping

import (
	"math"
	"sort"
)

// Priority thresholds. An ingredient needed by three or more
// recipe-title occurrences (duplicates counted) is always high
// priority, as is one the pantry contributes nothing toward. A single
// user with at least half the demand covered is low priority.
const (
	highPriorityRecipeCount = 3
	lowPriorityCoverRatio   = 0.5
)

// Reconcile nets aggregated demand against pantry supply and produces
// the sorted shopping list plus summary statistics. It is a pure
// function of its two inputs; empty demand yields an empty list and a
// zero-filled summary.
func Reconcile(demand *Demand, supply Supply) ([]ShoppingListItem, Summary) {
	items := make([]ShoppingListItem, 0, demand.Len())

	covered := 0
	totalRequired := 0
	for _, key := range demand.Keys() {
		req, _ := demand.Get(key)

		var available float64
		if entry, ok := supply[key]; ok {
			available = entry.Quantity
		}

		totalRequired++
		if available > 0 {
			covered++
		}

		shortage := math.Max(0, req.TotalQuantity-available)
		if shortage <= 0 {
			continue
		}

		items = append(items, ShoppingListItem{
			IngredientName:    req.Name,
			NeededQuantity:    req.TotalQuantity,
			Unit:              req.Unit,
			AvailableQuantity: available,
			Shortage:          shortage,
			Priority:          assignPriority(req, shortage),
			Category:          req.Category,
			RecipesUsing:      dedupeTitles(req.RecipeTitles),
		})
	}

	sortItems(items)

	highPriority := 0
	for _, item := range items {
		if item.Priority == PriorityHigh {
			highPriority++
		}
	}

	return items, Summary{
		TotalItems:               len(items),
		HighPriorityItems:        highPriority,
		EstimatedTotalCost:       0,
		PantryCoveragePercentage: coveragePercentage(covered, totalRequired),
	}
}

// assignPriority applies the documented rule order, first match wins:
// high when many recipes depend on the ingredient or the pantry covers
// none of it, low when a single recipe needs it and stock covers at
// least half, medium otherwise.
func assignPriority(req *AggregatedRequirement, shortage float64) Priority {
	if len(req.RecipeTitles) >= highPriorityRecipeCount || shortage >= req.TotalQuantity {
		return PriorityHigh
	}
	if len(req.RecipeTitles) == 1 && shortage < lowPriorityCoverRatio*req.TotalQuantity {
		return PriorityLow
	}
	return PriorityMedium
}

// sortItems orders the list by priority rank descending, breaking ties
// by category ascending. The sort is stable so identical inputs always
// produce identical output order.
func sortItems(items []ShoppingListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := items[i].Priority.rank(), items[j].Priority.rank()
		if ri != rj {
			return ri > rj
		}
		return items[i].Category < items[j].Category
	})
}

// dedupeTitles removes duplicate recipe titles preserving first
// appearance. Deduplication happens only at output time: the priority
// rule above intentionally sees the raw, duplicate-counting list.
func dedupeTitles(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, title)
	}
	return out
}

// coveragePercentage is the share of distinct required ingredients for
// which the pantry holds any non-zero quantity, rounded to the nearest
// integer. Defined as 0 when nothing is required.
func coveragePercentage(covered, totalRequired int) int {
	if totalRequired == 0 {
		return 0
	}
	return int(math.Round(100 * float64(covered) / float64(totalRequired)))
}
