package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9-]+`)
	multiDash = regexp.MustCompile(`-{2,}`)
)

// Slugify converts an arbitrary string into a lowercase ASCII slug.
// Accents are stripped ("Flabébé" becomes "flabebe") and every other
// non-alphanumeric run becomes a single hyphen.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMark))
	result, _, _ := transform.String(t, s)

	result = strings.ToLower(result)
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	result = nonSlug.ReplaceAllString(result, "-")
	result = multiDash.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// IsSlug reports whether s is already a valid slug.
func IsSlug(s string) bool {
	return s != "" && Slugify(s) == s
}

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
