package export

import (
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/pokemon"
)

// TableName is the export table.
const TableName = "pokemon_search"

// PokemonRow is one translated pokemon.
type PokemonRow struct {
	ID             string `gorm:"column:id;type:varchar(64);primaryKey"`
	Lang           string `gorm:"column:lang;type:varchar(8);primaryKey"`
	NID            string `gorm:"column:nid;type:varchar(96)"`
	DexNum         int    `gorm:"column:dex_num;type:int"`
	DexNumText     string `gorm:"column:dex_num_text;type:varchar(8)"`
	Gen            int    `gorm:"column:gen;type:int"`
	SpeciesGen     int    `gorm:"column:species_gen;type:int"`
	Name           string `gorm:"column:name;type:varchar(255)"`
	SpeciesName    string `gorm:"column:species_name;type:varchar(255)"`
	FormName       string `gorm:"column:form_name;type:varchar(255)"`
	GenusText      string `gorm:"column:genus_text;type:varchar(255)"`
	Type1          string `gorm:"column:type1;type:varchar(32)"`
	Type2          string `gorm:"column:type2;type:varchar(32)"`
	Color          string `gorm:"column:color;type:varchar(32)"`
	Region         string `gorm:"column:region;type:varchar(32)"`
	IsForm         bool   `gorm:"column:is_form"`
	SearchableText string `gorm:"column:searchable_text;type:text"`
}

// TableName overrides the table name used by PokemonRow.
func (PokemonRow) TableName() string {
	return TableName
}

// NewRow flattens a translated pokemon.
func NewRow(p pokemon.Translated) PokemonRow {
	return PokemonRow{
		ID:             p.ID,
		Lang:           string(p.Lang),
		NID:            p.NID,
		DexNum:         p.Pokemon.DexNum.Int(),
		DexNumText:     p.DexNum,
		Gen:            p.Gen,
		SpeciesGen:     p.SpeciesGen,
		Name:           p.Name,
		SpeciesName:    p.SpeciesName,
		FormName:       p.FormName,
		GenusText:      p.GenusText,
		Type1:          p.Type1,
		Type2:          p.Type2,
		Color:          p.Color,
		Region:         p.Region,
		IsForm:         p.IsForm,
		SearchableText: p.SearchableText,
	}
}

// Lister returns every pokemon translated to one language.
type Lister interface {
	List(lang i18n.Code) ([]pokemon.Translated, error)
}

// BuildRows lists every pokemon in each of langs.
func BuildRows(l Lister, langs []i18n.Code) ([]PokemonRow, error) {
	var rows []PokemonRow
	for _, lang := range langs {
		list, err := l.List(lang)
		if err != nil {
			return nil, err
		}
		for _, p := range list {
			rows = append(rows, NewRow(p))
		}
	}
	return rows, nil
}
