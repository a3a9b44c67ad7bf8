package models

import "strconv"

// Entity holds the fields every named record shares.
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Key returns the primary key.
func (e Entity) Key() string {
	return e.ID
}

// Described adds the generation and description fields.
type Described struct {
	Entity
	Gen       int     `json:"gen"`
	ShortDesc string  `json:"shortDesc"`
	Desc      *string `json:"desc"`
}

// Item is a held or bag item.
type Item struct {
	Described
	PsName     string `json:"psName"`
	Category   string `json:"category"`
	Unholdable bool   `json:"unholdable,omitempty"`
}

// Pokeball is a ball a pokemon can be caught with.
type Pokeball struct {
	Described
	Category string `json:"category"`
	Unusable bool   `json:"unusable,omitempty"`
}

// Ability is a pokemon ability.
type Ability struct {
	Described
	PsName string `json:"psName"`
}

// Move is a battle move.
type Move struct {
	Described
	PsName   string `json:"psName"`
	Type     string `json:"type"`
	Power    int    `json:"power"`
	Accuracy int    `json:"accuracy"`
	PP       int    `json:"pp"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
	IsZ      bool   `json:"isZ"`
	IsGmax   bool   `json:"isGmax"`
}

// Character is a trainer or NPC.
type Character struct {
	Entity
}

// Ribbon is an award attached to a pokemon.
type Ribbon struct {
	Described
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Mark is a gen 8+ mark.
type Mark struct {
	Described
	Title       string `json:"title"`
	Conditions  string `json:"conditions"`
	Chance      string `json:"chance"`
	ChanceCharm string `json:"chanceCharm"`
}

// OriginMark is the symbol identifying the game a pokemon comes from.
type OriginMark struct {
	Entity
}

// Region is a game region.
type Region struct {
	Entity
}

// Type is an elemental type.
type Type struct {
	Entity
	Color       string `json:"color"`
	IsCanonical bool   `json:"isCanonical"`
}

// Nature is a pokemon nature. Raises and Lowers are stat ids, nil when neutral.
type Nature struct {
	Entity
	Raises *string `json:"raises"`
	Lowers *string `json:"lowers"`
}

// Personality is a characteristic text.
type Personality struct {
	ID        string `json:"id"`
	ShortDesc string `json:"shortDesc"`
}

// Key returns the primary key.
func (p Personality) Key() string {
	return p.ID
}

// Color is a pokedex color.
type Color struct {
	Entity
	Color string `json:"color"`
}

// Language is a language as stored in the dataset.
type Language struct {
	Entity
	NameEng    string `json:"nameEng"`
	Alpha3     string `json:"alpha3"`
	InGameCode string `json:"inGameCode"`
	Locale     string `json:"locale"`
	Flag       string `json:"flag"`
}

// Generation maps a generation number to its national dex range.
type Generation struct {
	ID        int `json:"id"`
	MinDexNum int `json:"minDexNum"`
	MaxDexNum int `json:"maxDexNum"`
}

// Key returns the generation number as a string.
func (g Generation) Key() string {
	return strconv.Itoa(g.ID)
}
