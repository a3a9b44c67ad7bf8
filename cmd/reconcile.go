package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"pokepc-dataset/core/reconcile"
	"pokepc-dataset/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunIndices bool
	yesConfirm    bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile index documents with the shards present",
}

// indicesReconcileCmd rewrites inconsistent index documents.
var indicesReconcileCmd = &cobra.Command{
	Use:   "indices",
	Short: "Fix index documents (report + optional rewrite)",
	Long: `Reconcile indices/pokemon.json, indices/games.json and indices/pokedexes.json
with the shard documents present.

Index entries without a shard are removed; shards missing from their index are
appended. Keys implied by pokemon forms are reported but never written.

Examples:
  # Rewrite with interactive confirmation
  reconcile indices

  # Report only
  reconcile indices --dry-run

  # Rewrite with auto-confirm (non-interactive)
  reconcile indices --yes`,
	RunE: runIndicesReconcile,
}

func init() {
	reconcileCmd.AddCommand(indicesReconcileCmd)

	indicesReconcileCmd.Flags().BoolVar(&dryRunIndices, "dry-run", false, "Force dry-run (no writes even with --yes)")
	indicesReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm index rewrites (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runIndicesReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := bootstrap()
	if err != nil {
		return err
	}
	l := rt.logger
	if rt.cfg.Server.ReadOnly {
		return integrity.ErrReadOnly
	}

	svc := integrity.NewService(rt.catalog, l, false)
	adapters := svc.Adapters()
	opts := reconcile.Options{DoFix: true, DryRun: dryRunIndices}

	// Step 1: Plan (always runs)
	l.Info("Planning reconciliation...")
	plans := make([]*reconcile.Plan, len(adapters))
	total := 0
	for i, adapter := range adapters {
		plan, err := reconcile.BuildPlan(ctx, adapter, opts)
		if err != nil {
			return fmt.Errorf("failed to plan %s: %w", adapter.Name(), err)
		}
		plans[i] = plan
		total += len(plan.Actions)
		printReconcileReport(l, plan)
	}

	if total == 0 {
		l.Info("No actions required.")
		return nil
	}
	if dryRunIndices {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	executed := 0
	for i, adapter := range adapters {
		n, err := reconcile.ApplyPlan(ctx, adapter, plans[i], opts)
		if err != nil {
			return fmt.Errorf("failed to apply plan: %w", err)
		}
		executed += n
	}
	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.String("collection", plan.Collection),
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("missing_index", s.MissingIndex),
		zap.Int("missing_shard", s.MissingShard),
		zap.Int("missing_derived", s.MissingDerived),
		zap.Int("index_actions", s.IndexActions),
	)

	maxShow := 5
	if len(plan.Actions) < maxShow {
		maxShow = len(plan.Actions)
	}
	for i := 0; i < maxShow; i++ {
		action := plan.Actions[i]
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to rewrite the index documents: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
