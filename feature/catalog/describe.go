package catalog

import (
	"fmt"
	"strings"

	"pokepc-dataset/feature/catalog/models"
)

// GameCategoryLabel names the series a game belongs to.
func GameCategoryLabel(g models.Game) string {
	switch g.Series {
	case "main":
		return "Main-series"
	case "legends":
		return "Legends-series"
	case "storage":
		return "Storage-series"
	default:
		return "Spin-off"
	}
}

// GameDescription builds a one-paragraph English summary of a game.
func GameDescription(g models.Game, category string) string {
	platforms := make([]string, len(g.Platforms))
	for i, p := range g.Platforms {
		platforms[i] = strings.ToUpper(p)
	}

	genPart := ""
	if g.Gen > 0 {
		genPart = fmt.Sprintf(" from Generation %d ", g.Gen)
	}

	parts := []string{
		fmt.Sprintf("Pokémon %s is a %s %s %sreleased for %s", g.Name, category, g.Type, genPart, strings.Join(platforms, " / ")),
	}

	if g.Region != nil && *g.Region != "" && *g.Region != "unknown" {
		parts = append(parts, fmt.Sprintf("The game takes place in the %s region", ucfirst(*g.Region)))
	}

	return strings.Join(parts, ". ") + "."
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
