package pokemon

import (
	"fmt"
	"strings"

	"pokepc-dataset/core/i18n"
)

// Description builds a short English sentence list about p using the genus
// and form name of lang.
func Description(p Translated, lang i18n.Code) string {
	text := TranslateText(p.Pokemon, lang)

	var parts []string
	if text.GenusText != "" {
		parts = append(parts, text.GenusText)
	}
	if p.IsForm {
		parts = append(parts, "Form: "+text.FormName)
	}

	types := []string{ucfirst(p.Type1)}
	if p.Type2 != "" {
		types = append(types, ucfirst(p.Type2))
	}
	parts = append(parts, strings.Join(types, "/")+" type")
	parts = append(parts, fmt.Sprintf("It was discovered in Generation %d", p.Gen))

	var features []string
	if p.IsMythical {
		features = append(features, "Mythical")
	}
	if p.IsLegendary {
		features = append(features, "Legendary")
	}
	if len(features) > 0 {
		parts = append(parts, fmt.Sprintf("Classified as a %s Pokémon", strings.Join(features, " and ")))
	}

	return strings.Join(parts, ". ") + "."
}

func ucfirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
