package cmd

import (
	"fmt"

	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/pokemon"

	"github.com/spf13/cobra"
)

var (
	pokemonLang     string
	pokemonNickname string
)

// pokemonCmd prints one translated pokemon.
var pokemonCmd = &cobra.Command{
	Use:   "pokemon <id>",
	Short: "Show one pokemon",
	Long:  `Prints a pokemon translated to --lang with its description, possible genders and display names.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}

		lang := i18n.Resolve(pokemonLang)
		svc := pokemon.NewService(rt.catalog, nil, rt.logger)
		p, ok, err := svc.Get(args[0], lang)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("pokemon %s not found", args[0])
		}

		return printJSON(struct {
			pokemon.Details
			Names pokemon.NameInfo `json:"names"`
		}{
			Details: pokemon.Details{
				Pokemon:     p,
				Description: pokemon.Description(p, lang),
				Genders:     pokemon.PossibleGenders(p.Pokemon),
			},
			Names: pokemon.ResolveName(p, pokemonNickname, ""),
		})
	},
}

func init() {
	RootCmd.AddCommand(pokemonCmd)

	pokemonCmd.Flags().StringVar(&pokemonLang, "lang", string(i18n.Base), "Language (dataset code or BCP 47 tag)")
	pokemonCmd.Flags().StringVar(&pokemonNickname, "nickname", "", "Nickname to resolve display names with")
}
