package pokemon

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"pokepc-dataset/core/i18n"
)

// MinQueryLength is the shortest normalised query Search runs.
const MinQueryLength = 2

// Filter selects pokemon. Shiny is accepted but does not filter.
type Filter struct {
	Q     string    `json:"q,omitempty"`
	Gen   int       `json:"gen,omitempty"`
	Lang  i18n.Code `json:"lang"`
	Color string    `json:"color,omitempty"`
	Type  string    `json:"type,omitempty"`
	Forms bool      `json:"forms,omitempty"`
	Shiny bool      `json:"shiny,omitempty"`
}

// RequiresQuery reports whether f needs a query of MinQueryLength to filter.
// A filter with no query but a generation, color or type applies those alone.
func (f Filter) RequiresQuery() bool {
	if strings.TrimSpace(f.Q) != "" {
		return true
	}
	return f.Gen <= 0 && f.Color == "" && f.Type == ""
}

// Meta describes a search run. Total is the input size before filtering.
type Meta struct {
	Total   int  `json:"total"`
	Skipped bool `json:"skipped"`
}

// Result is the outcome of Search.
type Result struct {
	Records []Translated `json:"records"`
	Meta    Meta         `json:"meta"`
}

// Matches JavaScript's \s.
var repeatedSpace = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]{2,}`)

// Sanitize normalises a query: lower-cased, commas turned into spaces.
// Only the first run of repeated whitespace is collapsed on each pass;
// later runs are kept as they are.
func Sanitize(q string) string {
	q = strings.ToLower(q)
	q = collapseFirst(q)
	q = strings.ReplaceAll(q, ",", " ")
	return collapseFirst(q)
}

func collapseFirst(s string) string {
	loc := repeatedSpace.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + " " + s[loc[1]:]
}

// Search filters records. With requireQuery set, a normalised query shorter
// than MinQueryLength skips filtering and returns records unchanged.
func Search(records []Translated, f Filter, requireQuery bool) Result {
	q := Sanitize(f.Q)
	if requireQuery && utf8.RuneCountInString(q) < MinQueryLength {
		return Result{Records: records, Meta: Meta{Total: len(records), Skipped: true}}
	}

	var tokens []string
	if f.Q != "" {
		tokens = strings.Split(q, " ")
	}

	matches := make([]Translated, 0, len(records))
	for _, p := range records {
		if f.match(p, tokens) {
			matches = append(matches, p)
		}
	}
	return Result{Records: matches, Meta: Meta{Total: len(records)}}
}

func (f Filter) match(p Translated, tokens []string) bool {
	if !f.Forms && p.IsForm {
		return false
	}
	if f.Color != "" && !strings.EqualFold(p.Color, f.Color) {
		return false
	}
	if f.Type != "" && f.Type != p.Type1 && (p.Type2 == "" || f.Type != p.Type2) {
		return false
	}
	if f.Gen > 0 && p.SpeciesGen != f.Gen {
		return false
	}
	for _, token := range tokens {
		if !strings.Contains(p.SearchableText, token) {
			return false
		}
	}
	return true
}
