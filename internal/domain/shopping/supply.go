package shopping

import "github.com/kecarajocomer/v3/internal/domain/pantry"

// ResolveSupply builds the availability lookup from the caller's full
// pantry. Duplicate rows for the same ingredient are summed only when
// their units match under the policy; otherwise the first-seen unit
// wins and the conflicting quantity is discarded, mirroring the demand
// aggregator's unit rigidity. Items without an ingredient name are
// skipped.
func ResolveSupply(items []*pantry.Item, policy UnitPolicy) Supply {
	if policy == nil {
		policy = StrictUnitPolicy
	}

	supply := make(Supply, len(items))
	for _, item := range items {
		if item == nil || !item.HasIngredient() {
			continue
		}

		key := NormalizeName(item.IngredientName)
		if key == "" {
			continue
		}

		existing, ok := supply[key]
		if !ok {
			supply[key] = SupplyEntry{Quantity: item.Quantity, Unit: item.Unit}
			continue
		}
		if policy(existing.Unit, item.Unit) == MergeAdd {
			existing.Quantity += item.Quantity
			supply[key] = existing
		}
	}

	return supply
}
