// Package shopping implements the shopping-list reconciliation engine.
// It aggregates ingredient demand across a set of scheduled meals, nets
// it against pantry supply, and emits a prioritized, sorted shopping
// list with coverage statistics. Every stage is a pure function over
// its inputs: no I/O, no shared state, safe for concurrent invocations.
package shopping

import "strings"

// Priority is the urgency label assigned to a shopping list line,
// derived from how many recipes depend on the ingredient and how
// severe the shortfall is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// rank orders priorities for sorting: high > medium > low.
func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// AggregatedRequirement is the accumulated need for one ingredient
// across all meals in the queried period, before netting against
// stock. RecipeTitles may contain duplicates: a recipe scheduled in
// two meal slots is recorded twice, and the duplicate count is what
// the high-priority threshold sees.
type AggregatedRequirement struct {
	Name          string
	TotalQuantity float64
	Unit          string
	RecipeTitles  []string
	Category      string
}

// SupplyEntry is the aggregated pantry availability for one
// ingredient, held in the first unit observed for that ingredient.
type SupplyEntry struct {
	Quantity float64
	Unit     string
}

// ShoppingListItem is one actionable line of the output list. An item
// is emitted iff its Shortage is strictly positive; fully covered
// ingredients are dropped.
type ShoppingListItem struct {
	IngredientName    string   `json:"ingredient_name"`
	NeededQuantity    float64  `json:"needed_quantity"`
	Unit              string   `json:"unit"`
	AvailableQuantity float64  `json:"available_quantity"`
	Shortage          float64  `json:"shortage"`
	Priority          Priority `json:"priority"`
	Category          string   `json:"category"`
	RecipesUsing      []string `json:"recipes_using"`
}

// Summary aggregates over the output list. EstimatedTotalCost is
// always zero: pricing data is not available in this subsystem.
type Summary struct {
	TotalItems               int     `json:"total_items"`
	HighPriorityItems        int     `json:"high_priority_items"`
	EstimatedTotalCost       float64 `json:"estimated_total_cost"`
	PantryCoveragePercentage int     `json:"pantry_coverage_percentage"`
}

// NormalizeName produces the reconciliation key for an ingredient
// name: lower-cased and trimmed. An empty result means the ingredient
// cannot be reconciled and is skipped entirely.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Demand is the ordered map of aggregated requirements keyed by
// normalized ingredient name. Insertion order is preserved so the
// reconciler visits requirements in the order demand was discovered.
type Demand struct {
	keys    []string
	entries map[string]*AggregatedRequirement
}

// NewDemand creates an empty demand map
func NewDemand() *Demand {
	return &Demand{entries: make(map[string]*AggregatedRequirement)}
}

// Get returns the accumulator for a normalized name, if present
func (d *Demand) Get(key string) (*AggregatedRequirement, bool) {
	req, ok := d.entries[key]
	return req, ok
}

// Len returns the number of distinct required ingredients
func (d *Demand) Len() int {
	return len(d.keys)
}

// Keys returns the normalized ingredient names in insertion order
func (d *Demand) Keys() []string {
	return d.keys
}

// put inserts a new accumulator under key. Callers must have checked
// the key is absent.
func (d *Demand) put(key string, req *AggregatedRequirement) {
	d.keys = append(d.keys, key)
	d.entries[key] = req
}

// Supply maps normalized ingredient names to aggregated pantry
// availability. Lookup-only after construction, so insertion order
// does not matter here.
type Supply map[string]SupplyEntry
