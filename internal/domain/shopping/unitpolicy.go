package shopping

// MergeDecision is the outcome of the unit-compatibility check applied
// when a quantity is folded into an accumulator that already holds a
// unit for the same ingredient.
type MergeDecision int

const (
	// MergeAdd sums the incoming quantity into the accumulator.
	MergeAdd MergeDecision = iota
	// MergeDiscard drops the incoming quantity; the accumulator's
	// first-seen unit wins. The recipe is still recorded as using the
	// ingredient even when its quantity is discarded.
	MergeDiscard
)

// UnitPolicy decides whether a quantity expressed in incoming units
// can be merged into an accumulator holding existing units. The
// reconciliation algorithm never converts between units itself;
// substituting a conversion-aware policy here is the extension point
// for that.
type UnitPolicy func(existing, incoming string) MergeDecision

// StrictUnitPolicy treats units as opaque equality keys: quantities
// merge only when the unit strings match exactly. Stock or demand in
// a mismatched unit is silently kept out of the accumulated total,
// which under-counts when ingestion produces inconsistent unit
// strings (e.g. "g" vs "kg").
func StrictUnitPolicy(existing, incoming string) MergeDecision {
	if existing == incoming {
		return MergeAdd
	}
	return MergeDiscard
}
