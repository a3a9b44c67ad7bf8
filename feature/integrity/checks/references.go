package checks

import (
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/core/reconcile"
	"pokepc-dataset/feature/catalog/models"
)

// ReferenceData is the dataset slice the reference checks read.
type ReferenceData struct {
	Pokemon     []models.Pokemon
	Games       []models.Game
	Pokedexes   []models.Pokedex
	Abilities   []models.Ability
	Regions     []models.Region
	OriginMarks []models.OriginMark
}

// CheckReferences reports every cross-collection reference that does not resolve:
// pokemon to pokemon, abilities and games; pokedex entries to pokemon; games to
// regions, origin marks, pokedexes and their game set and superset. It also
// reports pokemon without an English name, pokedexes listing a pokemon twice,
// games listing a pokedex twice and supersets with pokedexes.
func CheckReferences(d ReferenceData) Report {
	report := newReport()

	pokemon := make(reconcile.KeySet, len(d.Pokemon))
	for _, p := range d.Pokemon {
		pokemon.Add(p.ID)
	}
	games := make(reconcile.KeySet, len(d.Games))
	for _, g := range d.Games {
		games.Add(g.ID)
	}
	pokedexes := make(reconcile.KeySet, len(d.Pokedexes))
	for _, dex := range d.Pokedexes {
		pokedexes.Add(dex.ID)
	}
	abilities := make(reconcile.KeySet, len(d.Abilities))
	for _, a := range d.Abilities {
		abilities.Add(a.ID)
	}
	regions := make(reconcile.KeySet, len(d.Regions))
	for _, r := range d.Regions {
		regions.Add(r.ID)
	}
	marks := make(reconcile.KeySet, len(d.OriginMarks))
	for _, m := range d.OriginMarks {
		marks.Add(m.ID)
	}

	for _, p := range d.Pokemon {
		report.Checked++
		if _, ok := p.Names.Get(i18n.Base); !ok {
			report.add("pokemon", p.ID, "names.eng", "", "missing English name")
		}
		for _, ref := range p.PokemonRefIDs() {
			if !pokemon.Has(ref) {
				report.add("pokemon", p.ID, "pokemon", ref, "unknown pokemon")
			}
		}
		for _, ref := range p.AbilityRefIDs() {
			if !abilities.Has(ref) {
				report.add("pokemon", p.ID, "ability", ref, "unknown ability")
			}
		}
		for _, ref := range p.GameRefIDs() {
			if !games.Has(ref) {
				report.add("pokemon", p.ID, "game", ref, "unknown game")
			}
		}
	}

	for _, dex := range d.Pokedexes {
		report.Checked++
		listed := make(reconcile.KeySet, len(dex.Entries))
		for _, e := range dex.Entries {
			if listed.Has(e.PID) {
				report.add("pokedexes", dex.ID, "entries.pid", e.PID, "duplicate pokemon entry")
				continue
			}
			listed.Add(e.PID)
			if !pokemon.Has(e.PID) {
				report.add("pokedexes", dex.ID, "entries.pid", e.PID, "unknown pokemon")
			}
		}
	}

	for _, g := range d.Games {
		report.Checked++
		checkOptional(&report, g.ID, "region", g.Region, regions, "unknown region")
		checkOptional(&report, g.ID, "originMark", g.OriginMark, marks, "unknown origin mark")
		checkOptional(&report, g.ID, "gameSet", g.GameSet, games, "unknown game set")
		checkOptional(&report, g.ID, "gameSuperSet", g.GameSuperSet, games, "unknown game superset")

		if g.Type == models.GameTypeSuperset && len(g.Pokedexes) > 0 {
			report.add("games", g.ID, "pokedexes", "", "superset must not list pokedexes")
		}
		listed := make(reconcile.KeySet, len(g.Pokedexes))
		for _, ref := range g.Pokedexes {
			if listed.Has(ref) {
				report.add("games", g.ID, "pokedexes", ref, "duplicate pokedex")
				continue
			}
			listed.Add(ref)
			if !pokedexes.Has(ref) {
				report.add("games", g.ID, "pokedexes", ref, "unknown pokedex")
			}
		}
	}

	return report
}

func checkOptional(report *Report, id, field string, ref *string, known reconcile.KeySet, message string) {
	if ref == nil || *ref == "" {
		return
	}
	if !known.Has(*ref) {
		report.add("games", id, field, *ref, message)
	}
}
