package pokemon

import (
	"fmt"

	"pokepc-dataset/core/i18n"
)

// NameInfo holds the names a pokemon is displayed under.
type NameInfo struct {
	DisplayName     string    `json:"displayName"`
	DisplayFormName string    `json:"displayFormName,omitempty"`
	FullName        string    `json:"fullName"`
	SpeciesName     string    `json:"speciesName"`
	FormName        string    `json:"formName,omitempty"`
	IsNicknamed     bool      `json:"isNicknamed"`
	Lang            i18n.Code `json:"lang"`
}

// ResolveName computes the display names of p. An empty lang keeps the text
// p was translated with. Mega, primal and gigantamax forms display their full
// name; other forms display "Species (Form)". A nickname is prepended.
func ResolveName(p Translated, nickname string, lang i18n.Code) NameInfo {
	text := p.Text
	if lang != "" {
		text = TranslateText(p.Pokemon, lang)
	}

	species := firstNonEmpty(text.SpeciesName, text.Name)
	info := NameInfo{
		DisplayName:     species,
		DisplayFormName: text.FormName,
		FullName:        text.Name,
		SpeciesName:     species,
		FormName:        text.FormName,
		IsNicknamed:     nickname != "",
		Lang:            text.Lang,
	}

	if p.IsForm {
		switch {
		case p.IsMega || p.IsPrimal || p.IsGmax:
			info.DisplayName = info.FullName
		case text.FormName != "":
			info.DisplayName = fmt.Sprintf("%s (%s)", species, text.FormName)
		}
	}
	if nickname != "" {
		info.DisplayName = nickname + " - " + info.DisplayName
	}
	return info
}
