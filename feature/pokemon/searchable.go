package pokemon

import (
	"fmt"
	"strings"

	"pokepc-dataset/feature/catalog/models"
)

// BuildSearchableText returns the lower-cased token blob free-text search
// matches against.
func BuildSearchableText(p models.Pokemon) string {
	speciesGen := DexNumToGen(p.DexNum.Int())

	color := "color:" + p.Color
	if p.Color == "brown" {
		color += " color:orange"
	}

	parts := []string{
		strings.Join(p.Names.Values(), " "),
		strings.Join(p.FormNames.Values(), " "),
		p.DexNum.String(),
		p.ID,
		"type:" + p.Type1,
		prefixed("type:", p.Type2),
		"region:" + p.Region,
		color,
		fmt.Sprintf("gen%d gen:%d gen%d gen:%d", speciesGen, speciesGen, p.Gen, p.Gen),
		tag(p.IsMythical, "mythical"),
		tag(p.IsLegendary, "legendary"),
		tag(p.IsFemaleForm, "female"),
		tag(p.IsBaby, "baby"),
		tag(p.IsUltraBeast, "ultrabeast ultra beast"),
		tag(p.IsRegional, "regional"),
		tag(p.IsFusion, "fusion"),
		tag(p.IsParadox, "paradox"),
		tag(p.IsConvergent, "convergent"),
		tag(p.IsCosmeticForm, "cosmetic"),
		tag(p.IsGmax, "gigantamax"),
	}

	tokens := parts[:0]
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return strings.ToLower(strings.Join(tokens, " "))
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}

func tag(set bool, v string) string {
	if !set {
		return ""
	}
	return v
}
