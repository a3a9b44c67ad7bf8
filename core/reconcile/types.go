package reconcile

import "sort"

// KeySet is a set of collection keys.
type KeySet map[string]struct{}

// NewKeySet creates a set holding keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts key.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in ascending order.
func (s KeySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Result is the reconciliation output for a single key.
type Result struct {
	// ID is the collection key.
	ID string `json:"id"`

	// IndexPresent indicates whether the index document lists the key.
	IndexPresent bool `json:"index_present"`

	// ShardPresent indicates whether a shard document exists for the key.
	ShardPresent bool `json:"shard_present"`

	// DerivedPresent indicates whether the key is implied by shard contents.
	// Always false when the collection has no derived keys.
	DerivedPresent bool `json:"derived_present"`
}

// ActionType represents the type of index edit.
type ActionType string

const (
	// ActionAddToIndex appends a key whose shard exists to the index.
	ActionAddToIndex ActionType = "add_to_index"
	// ActionRemoveFromIndex drops an index entry whose shard is missing.
	ActionRemoveFromIndex ActionType = "remove_from_index"
)

// Action represents a planned index edit.
type Action struct {
	Type   ActionType `json:"type"`
	Key    string     `json:"key"`
	Reason string     `json:"reason"`
}

// Plan contains reconciliation results and planned actions for one collection.
type Plan struct {
	// Collection is the adapter name.
	Collection string `json:"collection"`

	// Results contains one entry per key, sorted by key.
	Results []Result `json:"results"`

	// Actions contains planned index edits.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	index []string
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	// TotalKeys is the number of distinct keys across all sets.
	TotalKeys int `json:"total_keys"`

	// MissingIndex counts keys with a shard or derivation but no index entry.
	MissingIndex int `json:"missing_index"`

	// MissingShard counts keys listed or derived but without a shard document.
	MissingShard int `json:"missing_shard"`

	// MissingDerived counts indexed or present keys no shard implies.
	MissingDerived int `json:"missing_derived"`

	// IndexActions counts planned index edits.
	IndexActions int `json:"index_actions"`
}

// Consistent reports whether every key is present everywhere.
func (s Summary) Consistent() bool {
	return s.MissingIndex == 0 && s.MissingShard == 0 && s.MissingDerived == 0
}

// Options controls planning and applying.
type Options struct {
	// DoFix plans index edits.
	DoFix bool

	// DryRun prevents execution of any edit if true.
	DryRun bool

	// Confirmed indicates the caller confirmed the edits.
	// If false, ApplyPlan does nothing regardless of DryRun.
	Confirmed bool
}
