package cmd

import (
	"fmt"
	"io"
	"time"

	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/pokemon"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	searchGen   int
	searchLang  string
	searchColor string
	searchType  string
	searchForms bool
	searchShiny bool
	searchJSON  bool
)

// searchCmd runs a pokemon search from the command line.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search pokemon",
	Long: `Searches the pokemon of the dataset by name, dex number, type, color,
region or generation, like GET /pokemon.

Examples:
  # Text search
  search pika

  # Every gen 1 fire type, forms included
  search --gen 1 --type fire --forms

  # German names
  search glu --lang de`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		svc := pokemon.NewService(rt.catalog, nil, rt.logger)
		return runSearch(cmd.OutOrStdout(), svc, searchFilter(args), searchJSON, rt.logger)
	},
}

// searchFilter builds the filter from the parsed flags and the optional query.
func searchFilter(args []string) pokemon.Filter {
	f := pokemon.Filter{
		Gen:   searchGen,
		Lang:  i18n.Resolve(searchLang),
		Color: searchColor,
		Type:  searchType,
		Forms: searchForms,
		Shiny: searchShiny,
	}
	if len(args) > 0 {
		f.Q = args[0]
	}
	return f
}

// runSearch prints the result of f to w. Without a query, --gen, --type or
// --color filter on their own.
func runSearch(w io.Writer, svc *pokemon.Service, f pokemon.Filter, asJSON bool, l *zap.Logger) error {
	start := time.Now()
	res, err := svc.Search(f)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	l.Debug("Search completed", zap.Int("results", len(res.Records)), zap.Duration("elapsed", time.Since(start)))

	if asJSON {
		return writeJSON(w, res)
	}
	if res.Meta.Skipped {
		fmt.Fprintf(w, "Query too short (minimum %d characters), %d pokemon not filtered\n", pokemon.MinQueryLength, res.Meta.Total)
		return nil
	}
	for _, p := range res.Records {
		fmt.Fprintf(w, "#%s  %-24s %s\n", p.DexNum, p.Name, p.ID)
	}
	fmt.Fprintf(w, "\n%d of %d pokemon\n", len(res.Records), res.Meta.Total)
	return nil
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchGen, "gen", 0, "Only pokemon of this generation")
	searchCmd.Flags().StringVar(&searchLang, "lang", string(i18n.Base), "Language of names (dataset code or BCP 47 tag)")
	searchCmd.Flags().StringVar(&searchColor, "color", "", "Only pokemon of this color")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Only pokemon with this type")
	searchCmd.Flags().BoolVar(&searchForms, "forms", false, "Include alternate forms")
	searchCmd.Flags().BoolVar(&searchShiny, "shiny", false, "Accepted for API parity, has no effect")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the result as JSON")
}
