package cmd

import (
	"fmt"
	"strings"

	"pokepc-dataset/core/database"
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/export"
	"pokepc-dataset/feature/pokemon"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportLangs     []string
	exportBatchSize int
	exportVerify    bool
)

// exportCmd writes translated pokemon into the configured SQL database.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export translated pokemon to SQL",
	Long: `Translates every pokemon into each --lang and upserts one row per
(id, lang) into the pokemon_search table of the configured database.

Examples:
  export --lang eng,deu
  export --lang all --batch-size 1000
  export --verify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		l := rt.logger

		db, err := database.Connect(rt.cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		report, err := export.VerifySchema(db)
		if err != nil {
			return fmt.Errorf("failed to inspect %s: %w", export.TableName, err)
		}
		if report.Exists && !report.Matched {
			l.Warn("Export table differs from the expected schema",
				zap.Strings("missing_columns", report.MissingColumns),
				zap.Strings("type_mismatches", report.TypeMismatches),
			)
		}
		if exportVerify {
			return printJSON(report)
		}

		langs, err := parseLangs(exportLangs)
		if err != nil {
			return err
		}

		rows, err := export.BuildRows(pokemon.NewService(rt.catalog, nil, l), langs)
		if err != nil {
			return fmt.Errorf("failed to build rows: %w", err)
		}

		n, err := export.NewExporter(db, l, exportBatchSize).Export(cmd.Context(), rows)
		if err != nil {
			return err
		}
		l.Info("Export completed", zap.Int64("rows", n), zap.Int("languages", len(langs)), zap.String("driver", rt.cfg.Database.Driver))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringSliceVar(&exportLangs, "lang", []string{string(i18n.Base)}, `Languages to export (dataset codes or BCP 47 tags, or "all")`)
	exportCmd.Flags().IntVar(&exportBatchSize, "batch-size", export.DefaultBatchSize, "Rows per INSERT statement")
	exportCmd.Flags().BoolVar(&exportVerify, "verify", false, "Only compare the existing table with the expected schema")
}

// parseLangs resolves language flags, rejecting unknown ones.
func parseLangs(values []string) ([]i18n.Code, error) {
	var langs []i18n.Code
	seen := make(map[i18n.Code]bool)
	for _, v := range values {
		if strings.EqualFold(v, "all") {
			return i18n.Codes, nil
		}
		code, ok := i18n.Parse(v)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", v)
		}
		if !seen[code] {
			seen[code] = true
			langs = append(langs, code)
		}
	}
	return langs, nil
}
