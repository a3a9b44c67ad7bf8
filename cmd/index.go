package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// indexCmd groups the index document commands.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage index documents",
}

// regenerateCmd rebuilds indices/pokemon.json.
var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild the pokemon index from the loaded pokemon",
	Long: `Loads every pokemon listed in indices/pokemon.json and rewrites the index
with each id followed by its form ids, duplicates removed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		keys, err := rt.catalog.RegeneratePokemonIndex()
		if err != nil {
			return fmt.Errorf("failed to regenerate pokemon index: %w", err)
		}
		rt.logger.Info("Pokemon index regenerated", zap.Int("entries", len(keys)))
		return nil
	},
}

func init() {
	indexCmd.AddCommand(regenerateCmd)
	RootCmd.AddCommand(indexCmd)
}
