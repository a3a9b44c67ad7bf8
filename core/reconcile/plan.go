package reconcile

import (
	"context"
	"fmt"
	"strings"
)

// BuildPlan reconciles a collection and returns a plan with results and actions.
// It does NOT execute actions; use ApplyPlan for that.
func BuildPlan(ctx context.Context, adapter Adapter, opts Options) (*Plan, error) {
	s, err := load(ctx, adapter)
	if err != nil {
		return nil, err
	}

	results := s.results()
	summary, actions := buildPlanFromResults(results, s.derived != nil, opts)
	return &Plan{
		Collection: adapter.Name(),
		Results:    results,
		Actions:    actions,
		Summary:    summary,
		index:      s.index,
	}, nil
}

// ApplyPlan writes the index edited by the plan's actions.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, adapter Adapter, plan *Plan, opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun || len(plan.Actions) == 0 {
		return 0, nil
	}

	mutator, ok := adapter.(Mutator)
	if !ok {
		return 0, fmt.Errorf("adapter %s does not implement Mutator interface", adapter.Name())
	}

	if err := mutator.WriteIndex(ctx, plan.EditedIndex()); err != nil {
		return 0, fmt.Errorf("failed to write %s index: %w", adapter.Name(), err)
	}
	return len(plan.Actions), nil
}

// EditedIndex returns the index with the plan's actions applied: removed keys
// dropped, added keys appended in action order.
func (p *Plan) EditedIndex() []string {
	removed := make(KeySet)
	var added []string
	for _, a := range p.Actions {
		switch a.Type {
		case ActionRemoveFromIndex:
			removed.Add(a.Key)
		case ActionAddToIndex:
			added = append(added, a.Key)
		}
	}

	out := make([]string, 0, len(p.index)+len(added))
	for _, key := range p.index {
		if !removed.Has(key) {
			out = append(out, key)
		}
	}
	return append(out, added...)
}

// buildPlanFromResults generates a summary and action plan from results.
func buildPlanFromResults(results []Result, hasDerived bool, opts Options) (Summary, []Action) {
	var summary Summary
	actions := []Action{}

	summary.TotalKeys = len(results)
	for _, r := range results {
		if (r.ShardPresent || r.DerivedPresent) && !r.IndexPresent {
			summary.MissingIndex++
		}
		if (r.IndexPresent || r.DerivedPresent) && !r.ShardPresent {
			summary.MissingShard++
		}
		if hasDerived && (r.IndexPresent || r.ShardPresent) && !r.DerivedPresent {
			summary.MissingDerived++
		}

		if !opts.DoFix {
			continue
		}
		switch {
		case r.ShardPresent && !r.IndexPresent:
			actions = append(actions, Action{Type: ActionAddToIndex, Key: r.ID, Reason: missingReason(r, hasDerived)})
		case r.IndexPresent && !r.ShardPresent:
			actions = append(actions, Action{Type: ActionRemoveFromIndex, Key: r.ID, Reason: missingReason(r, hasDerived)})
		}
	}
	summary.IndexActions = len(actions)
	return summary, actions
}

// missingReason builds a reason string naming the sets a key is missing from.
func missingReason(r Result, hasDerived bool) string {
	var missing []string
	if !r.IndexPresent {
		missing = append(missing, "index")
	}
	if !r.ShardPresent {
		missing = append(missing, "shards")
	}
	if hasDerived && !r.DerivedPresent {
		missing = append(missing, "derived")
	}

	if len(missing) == 0 {
		return "complete"
	}
	return "missing in: " + strings.Join(missing, ", ")
}
