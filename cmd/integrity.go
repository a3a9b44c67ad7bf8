package cmd

import (
	"errors"
	"fmt"

	"pokepc-dataset/core/reconcile"
	"pokepc-dataset/feature/integrity"
	"pokepc-dataset/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityJSON bool

// errIntegrity marks a check that ran and found problems.
var errIntegrity = errors.New("integrity check failed")

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Validate the dataset",
	Long: `Runs every integrity check: required documents, index consistency,
id uniqueness and cross-collection references. Exits non-zero when any
check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := integrityService()
		if err != nil {
			return err
		}

		report := svc.RunAll(cmd.Context())
		if integrityJSON {
			if err := printJSON(report); err != nil {
				return err
			}
		} else {
			if report.Structure != nil {
				logStructure(logg, *report.Structure)
			}
			for _, p := range report.Indices {
				logPlan(logg, p)
			}
			if report.Uniqueness != nil {
				logIssues(logg, "uniqueness", *report.Uniqueness)
			}
			if report.References != nil {
				logIssues(logg, "references", *report.References)
			}
			for check, msg := range report.Errors {
				logg.Error("Check could not run", zap.String("check", check), zap.String("error", msg))
			}
		}

		if !report.OK {
			return errIntegrity
		}
		logg.Info("Dataset is consistent.")
		return nil
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check that every required document exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := integrityService()
		if err != nil {
			return err
		}
		report, err := svc.CheckStructure()
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		logStructure(logg, report)
		if len(report.Missing) > 0 {
			return errIntegrity
		}
		return nil
	},
}

// indicesCmd represents the integrity indices command
var indicesCmd = &cobra.Command{
	Use:   "indices",
	Short: "Compare index documents with the shards present",
	Long:  `Reports index entries without a shard and shards missing from their index. Use "reconcile indices" to fix them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := integrityService()
		if err != nil {
			return err
		}
		plans, err := svc.CheckIndices(cmd.Context())
		if err != nil {
			return fmt.Errorf("index check failed: %w", err)
		}
		consistent := true
		for _, p := range plans {
			logPlan(logg, p)
			consistent = consistent && p.Summary.Consistent()
		}
		if !consistent {
			return errIntegrity
		}
		return nil
	},
}

// uniquenessCmd represents the integrity uniqueness command
var uniquenessCmd = &cobra.Command{
	Use:   "uniqueness",
	Short: "Check ids and game name slugs for duplicates",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := integrityService()
		if err != nil {
			return err
		}
		report, err := svc.CheckUniqueness()
		if err != nil {
			return fmt.Errorf("uniqueness check failed: %w", err)
		}
		return issuesResult(logg, "uniqueness", report)
	},
}

// referencesCmd represents the integrity references command
var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Check cross-collection references",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := integrityService()
		if err != nil {
			return err
		}
		report, err := svc.CheckReferences()
		if err != nil {
			return fmt.Errorf("reference check failed: %w", err)
		}
		return issuesResult(logg, "references", report)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, indicesCmd, uniquenessCmd, referencesCmd)

	integrityCmd.Flags().BoolVar(&integrityJSON, "json", false, "Print the combined report as JSON")
}

func integrityService() (*integrity.Service, *zap.Logger, error) {
	rt, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	return integrity.NewService(rt.catalog, rt.logger, rt.cfg.Server.ReadOnly), rt.logger, nil
}

func logStructure(l *zap.Logger, report checks.StructureReport) {
	if len(report.Missing) == 0 {
		l.Info("Structure is intact.", zap.Int("documents", report.Checked))
		return
	}
	l.Warn("Missing documents detected", zap.Strings("missing", report.Missing))
}

// logPlan prints a reconciliation summary with a sample of the inconsistent keys.
func logPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary
	fields := []zap.Field{
		zap.String("collection", plan.Collection),
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("missing_index", s.MissingIndex),
		zap.Int("missing_shard", s.MissingShard),
		zap.Int("missing_derived", s.MissingDerived),
	}
	if s.Consistent() {
		l.Info("Index is consistent", fields...)
		return
	}
	l.Warn("Index is inconsistent", fields...)

	const maxShow = 5
	shown := 0
	for _, r := range plan.Results {
		if r.IndexPresent && r.ShardPresent && (r.DerivedPresent || s.MissingDerived == 0) {
			continue
		}
		if shown == maxShow {
			l.Info("Additional keys not shown", zap.String("collection", plan.Collection))
			break
		}
		l.Info("Inconsistent key",
			zap.String("collection", plan.Collection),
			zap.String("key", r.ID),
			zap.Bool("index", r.IndexPresent),
			zap.Bool("shard", r.ShardPresent),
			zap.Bool("derived", r.DerivedPresent),
		)
		shown++
	}
}

func logIssues(l *zap.Logger, check string, report checks.Report) {
	if report.OK() {
		l.Info("Check passed", zap.String("check", check), zap.Int("checked", report.Checked))
		return
	}
	l.Warn("Check found issues", zap.String("check", check), zap.Int("checked", report.Checked), zap.Int("issues", len(report.Issues)))
	for _, issue := range report.Issues {
		l.Warn(issue.Message,
			zap.String("collection", issue.Collection),
			zap.String("id", issue.ID),
			zap.String("field", issue.Field),
			zap.String("value", issue.Value),
		)
	}
}

func issuesResult(l *zap.Logger, check string, report checks.Report) error {
	logIssues(l, check, report)
	if !report.OK() {
		return errIntegrity
	}
	return nil
}
