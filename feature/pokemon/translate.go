package pokemon

import (
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/catalog/models"
)

// Text is the text of a pokemon resolved for one language.
type Text struct {
	Lang        i18n.Code `json:"lang"`
	Name        string    `json:"name"`
	GenusText   string    `json:"genusText,omitempty"`
	SpeciesName string    `json:"speciesName,omitempty"`
	FormName    string    `json:"formName,omitempty"`
}

// Record is either a Raw catalog record or an already Translated projection.
type Record interface {
	isRecord()
}

// Raw is a pokemon as loaded from the dataset.
type Raw models.Pokemon

func (Raw) isRecord() {}

// Translated is a pokemon projected onto one language with its derived scalars.
type Translated struct {
	models.Pokemon
	Text

	// DexNum is the zero-padded national dex number.
	DexNum         string `json:"dexNum"`
	SpeciesGen     int    `json:"speciesGen"`
	SearchableText string `json:"searchableText"`
}

func (Translated) isRecord() {}

// TranslateText resolves the text fields of p for lang. Missing translations
// fall back to the base language, then the name falls back to the id and the
// species name to the resolved name. The species name never takes the base
// language's name, only its stored species name.
func TranslateText(p models.Pokemon, lang i18n.Code) Text {
	var fallback Text
	if lang != i18n.Base {
		fallback = TranslateText(p, i18n.Base)
	}

	text := Text{Lang: lang}
	text.Name = firstNonEmpty(lookup(p.Names, lang), fallback.Name, p.ID)
	text.GenusText = firstNonEmpty(lookup(p.Genus, lang), fallback.GenusText)
	text.SpeciesName = firstNonEmpty(lookup(p.SpeciesNames, lang), lookup(p.SpeciesNames, i18n.Base), text.Name)
	text.FormName = firstNonEmpty(lookup(p.FormNames, lang), fallback.FormName)
	return text
}

// Translate projects r onto lang. A Raw record gets its species generation,
// formatted dex number and searchable text computed; a Translated one keeps
// them and only has its text replaced.
func Translate(r Record, lang i18n.Code) Translated {
	switch v := r.(type) {
	case Raw:
		p := models.Pokemon(v)
		positions := len(p.DexNum.String())
		if positions < 3 {
			positions = 3
		}
		return Translated{
			Pokemon:        p,
			Text:           TranslateText(p, lang),
			DexNum:         FormatDexNum(p.DexNum, positions),
			SpeciesGen:     DexNumToGen(p.DexNum.Int()),
			SearchableText: BuildSearchableText(p),
		}
	case *Raw:
		return Translate(*v, lang)
	case Translated:
		v.Text = TranslateText(v.Pokemon, lang)
		return v
	case *Translated:
		return Translate(*v, lang)
	}
	panic("pokemon: unknown record type")
}

// Raws wraps catalog records as Raw records.
func Raws(list []models.Pokemon) []Record {
	out := make([]Record, len(list))
	for i, p := range list {
		out[i] = Raw(p)
	}
	return out
}

// TranslateList translates every record, preserving order.
func TranslateList(list []Record, lang i18n.Code) []Translated {
	out := make([]Translated, len(list))
	for i, r := range list {
		out[i] = Translate(r, lang)
	}
	return out
}

// TranslateByID translates every record keyed by id. Later duplicates win.
func TranslateByID(list []Record, lang i18n.Code) map[string]Translated {
	out := make(map[string]Translated, len(list))
	for _, r := range list {
		t := Translate(r, lang)
		out[t.ID] = t
	}
	return out
}

// TranslateByNID translates every record keyed by nid. Later duplicates win.
func TranslateByNID(list []Record, lang i18n.Code) map[string]Translated {
	out := make(map[string]Translated, len(list))
	for _, r := range list {
		t := Translate(r, lang)
		out[t.NID] = t
	}
	return out
}

// CreateSearchableList builds the English search list: dex numbers padded to
// four digits and English names taken as stored, without fallback.
func CreateSearchableList(list []models.Pokemon) []Translated {
	out := make([]Translated, len(list))
	for i, p := range list {
		out[i] = Translated{
			Pokemon: p,
			Text: Text{
				Lang:        i18n.English,
				Name:        lookup(p.Names, i18n.English),
				SpeciesName: lookup(p.SpeciesNames, i18n.English),
				FormName:    lookup(p.FormNames, i18n.English),
			},
			DexNum:         FormatDexNum(p.DexNum, DefaultDexNumPositions),
			SpeciesGen:     DexNumToGen(p.DexNum.Int()),
			SearchableText: BuildSearchableText(p),
		}
	}
	return out
}

func lookup(t models.I18nText, lang i18n.Code) string {
	v, _ := t.Get(lang)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
