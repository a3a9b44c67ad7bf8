// Package reconcile compares the keys a sharded collection declares against
// the keys it actually has.
//
// Three key sets are loaded concurrently through an Adapter:
//
//   - Index: the keys listed in the collection's index document, in order.
//   - Shards: the keys of the shard documents present in the source.
//   - Derived: keys implied by the shard contents (for pokemon, every id plus
//     its forms). Adapters without derived keys return nil.
//
// The union of the three sets yields one Result per key with its presence
// flags. BuildPlan summarises the results and, when fixing is requested,
// plans index edits: keys with a shard but no index entry are appended, index
// entries without a shard are removed. ApplyPlan writes the edited index
// through a Mutator, and only when the plan is confirmed and not a dry run.
//
// # Usage Example
//
//	plan, err := reconcile.BuildPlan(ctx, adapter, reconcile.Options{DoFix: true})
//	if err != nil {
//	    return err
//	}
//	executed, err := reconcile.ApplyPlan(ctx, adapter, plan, reconcile.Options{DoFix: true, Confirmed: true})
package reconcile
