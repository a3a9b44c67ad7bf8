package models

import (
	"sort"

	"pokepc-dataset/core/i18n"
)

// I18nText maps a language code to a translation. Any code may be absent.
type I18nText map[i18n.Code]string

// Get returns the non-empty translation for code.
func (t I18nText) Get(code i18n.Code) (string, bool) {
	v, ok := t[code]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Values returns the distinct non-empty translations, in canonical language
// order followed by any unknown codes in key order.
func (t I18nText) Values() []string {
	seen := make(map[string]bool, len(t))
	out := make([]string, 0, len(t))
	add := func(v string) {
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	known := make(map[i18n.Code]bool, len(i18n.Codes))
	for _, code := range i18n.Codes {
		known[code] = true
		add(t[code])
	}

	var extra []string
	for code := range t {
		if !known[code] {
			extra = append(extra, string(code))
		}
	}
	sort.Strings(extra)
	for _, code := range extra {
		add(t[i18n.Code(code)])
	}
	return out
}

// PokemonRefs links a pokemon to external references.
type PokemonRefs struct {
	PkApiID       string `json:"pkApiId"`
	PkApiFormID   string `json:"pkApiFormId"`
	PkApiFormSlug string `json:"pkApiFormSlug"`
	Smogon        string `json:"smogon"`
	Showdown      string `json:"showdown"`
	ShowdownName  string `json:"showdownName"`
	Serebii       string `json:"serebii"`
	Bulbapedia    string `json:"bulbapedia"`
}

// Pokemon is a species or form shard.
type Pokemon struct {
	ID             string `json:"id"`
	NID            string `json:"nid"`
	DexNum         DexNum `json:"dexNum"`
	FormID         string `json:"formId,omitempty"`
	Region         string `json:"region"`
	Gen            int    `json:"gen"`
	Type1          string `json:"type1"`
	Type2          string `json:"type2,omitempty"`
	Color          string `json:"color"`
	Ability1       string `json:"ability1"`
	Ability2       string `json:"ability2,omitempty"`
	AbilityHidden  string `json:"abilityHidden,omitempty"`
	AbilitySpecial string `json:"abilitySpecial,omitempty"`

	IsPrerelease         bool     `json:"isPrerelease"`
	IsDefault            bool     `json:"isDefault"`
	IsForm               bool     `json:"isForm"`
	FormItem             string   `json:"formItem,omitempty"`
	IsLegendary          bool     `json:"isLegendary"`
	IsMythical           bool     `json:"isMythical"`
	IsBaby               bool     `json:"isBaby"`
	IsUltraBeast         bool     `json:"isUltraBeast"`
	IsParadox            bool     `json:"isParadox"`
	ParadoxSpecies       []string `json:"paradoxSpecies,omitempty"`
	IsConvergent         bool     `json:"isConvergent"`
	ConvergentSpecies    []string `json:"convergentSpecies,omitempty"`
	IsCosmeticForm       bool     `json:"isCosmeticForm"`
	IsFemaleForm         bool     `json:"isFemaleForm"`
	HasGenderDifferences bool     `json:"hasGenderDifferences"`
	IsBattleOnlyForm     bool     `json:"isBattleOnlyForm"`
	IsFusion             bool     `json:"isFusion"`
	IsMega               bool     `json:"isMega"`
	IsPrimal             bool     `json:"isPrimal"`
	IsGmax               bool     `json:"isGmax"`
	IsRegional           bool     `json:"isRegional"`
	CanGmax              bool     `json:"canGmax"`
	CanDynamax           bool     `json:"canDynamax"`
	CanBeAlpha           bool     `json:"canBeAlpha"`

	DebutIn       string   `json:"debutIn"`
	ObtainableIn  []string `json:"obtainableIn"`
	EventOnlyIn   []string `json:"eventOnlyIn"`
	StorableIn    []string `json:"storableIn"`
	ShinyReleased bool     `json:"shinyReleased"`
	ShinyBase     string   `json:"shinyBase,omitempty"`
	ShinyLockedIn []string `json:"shinyLockedIn,omitempty"`

	BaseHp     int     `json:"baseHp"`
	BaseAtk    int     `json:"baseAtk"`
	BaseDef    int     `json:"baseDef"`
	BaseSpAtk  int     `json:"baseSpAtk"`
	BaseSpDef  int     `json:"baseSpDef"`
	BaseSpeed  int     `json:"baseSpeed"`
	Height     int     `json:"height"`
	Weight     int     `json:"weight"`
	MaleRate   float64 `json:"maleRate"`
	FemaleRate float64 `json:"femaleRate"`

	BaseSpecies string      `json:"baseSpecies,omitempty"`
	BaseForms   []string    `json:"baseForms"`
	Forms       []string    `json:"forms"`
	FormsDesc   string      `json:"formsDesc,omitempty"`
	Family      string      `json:"family,omitempty"`
	Refs        PokemonRefs `json:"refs"`

	EvolvesFrom       string `json:"evolvesFrom,omitempty"`
	EvoFromLevel      int    `json:"evoFromLevel,omitempty"`
	EvoFromItem       string `json:"evoFromItem,omitempty"`
	EvoFromMove       string `json:"evoFromMove,omitempty"`
	EvoFromAbility    string `json:"evoFromAbility,omitempty"`
	EvoFromGender     string `json:"evoFromGender,omitempty"`
	EvoFromTrading    bool   `json:"evoFromTrading,omitempty"`
	EvoFromFriendship bool   `json:"evoFromFriendship,omitempty"`
	EvoFromCondition  string `json:"evoFromCondition,omitempty"`

	Names        I18nText `json:"names"`
	Genus        I18nText `json:"genus"`
	SpeciesNames I18nText `json:"speciesNames"`
	FormNames    I18nText `json:"formNames"`
}

// Key returns the primary key.
func (p Pokemon) Key() string {
	return p.ID
}

// PokemonRefIDs returns every pokemon id referenced by p.
func (p Pokemon) PokemonRefIDs() []string {
	refs := make([]string, 0, len(p.Forms)+len(p.BaseForms)+3)
	refs = append(refs, p.Forms...)
	for _, ref := range []string{p.BaseSpecies, p.ShinyBase, p.EvolvesFrom} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	refs = append(refs, p.BaseForms...)
	refs = append(refs, p.ParadoxSpecies...)
	refs = append(refs, p.ConvergentSpecies...)
	return refs
}

// AbilityRefIDs returns every ability id referenced by p.
func (p Pokemon) AbilityRefIDs() []string {
	var refs []string
	for _, ref := range []string{p.Ability1, p.Ability2, p.AbilityHidden, p.EvoFromAbility} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

// GameRefIDs returns every game id referenced by p.
func (p Pokemon) GameRefIDs() []string {
	var refs []string
	if p.DebutIn != "" {
		refs = append(refs, p.DebutIn)
	}
	refs = append(refs, p.StorableIn...)
	refs = append(refs, p.EventOnlyIn...)
	refs = append(refs, p.ObtainableIn...)
	return refs
}
