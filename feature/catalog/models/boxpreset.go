package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Box preset variants.
const (
	VariantClassic = "classic"
	VariantModern  = "modern"
)

// IsVariant reports whether v names a box preset variant.
func IsVariant(v string) bool {
	return v == VariantClassic || v == VariantModern
}

// BoxPokemon is one box cell: empty, a pokemon id, or a pokemon with display flags.
type BoxPokemon struct {
	PID         string
	Gmax        bool
	ShinyLocked bool
	Shiny       bool
	// Detailed records that the cell was written as an object.
	Detailed bool
}

// IsEmpty reports whether the cell holds no pokemon.
func (b *BoxPokemon) IsEmpty() bool {
	return b == nil || b.PID == ""
}

type boxPokemonObject struct {
	PID         string `json:"pid"`
	Gmax        bool   `json:"gmax,omitempty"`
	ShinyLocked bool   `json:"shinyLocked,omitempty"`
	Shiny       bool   `json:"shiny,omitempty"`
}

func (b BoxPokemon) MarshalJSON() ([]byte, error) {
	if b.PID == "" {
		return []byte("null"), nil
	}
	if !b.Detailed {
		return json.Marshal(b.PID)
	}
	return json.Marshal(boxPokemonObject{PID: b.PID, Gmax: b.Gmax, ShinyLocked: b.ShinyLocked, Shiny: b.Shiny})
}

func (b *BoxPokemon) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = BoxPokemon{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var pid string
		if err := json.Unmarshal(data, &pid); err != nil {
			return err
		}
		*b = BoxPokemon{PID: pid}
		return nil
	default:
		var obj boxPokemonObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("box pokemon must be null, a string or an object: %w", err)
		}
		*b = BoxPokemon{PID: obj.PID, Gmax: obj.Gmax, ShinyLocked: obj.ShinyLocked, Shiny: obj.Shiny, Detailed: true}
		return nil
	}
}

// Box is one storage box of a preset. A nil cell is an empty slot.
type Box struct {
	Title   string        `json:"title,omitempty"`
	Pokemon []*BoxPokemon `json:"pokemon"`
}

// BoxPreset is a legacy box layout for a game set.
type BoxPreset struct {
	ID          string  `json:"id"`
	LegacyID    string  `json:"legacyId,omitempty"`
	Name        string  `json:"name"`
	Version     int     `json:"version"`
	GameSet     *string `json:"gameSet"`
	Description string  `json:"description"`
	Boxes       []Box   `json:"boxes"`
	IsHidden    bool    `json:"isHidden,omitempty"`
}

// Key returns the primary key.
func (p BoxPreset) Key() string {
	return p.ID
}

// BoxPresetMap is a preset document: presets keyed by id, in document order.
type BoxPresetMap []BoxPreset

func (m *BoxPresetMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("box preset document must be an object")
	}

	var presets []BoxPreset
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return err
		}
		var p BoxPreset
		if err := dec.Decode(&p); err != nil {
			return err
		}
		presets = append(presets, p)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = presets
	return nil
}

// BoxPresetGroup holds the presets of one game set.
type BoxPresetGroup struct {
	GameSet string      `json:"gameset"`
	Presets []BoxPreset `json:"presets"`
}
