package i18n_test

import (
	"testing"

	"pokepc-dataset/core/i18n"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := map[string]i18n.Code{
		"":           i18n.English,
		"eng":        i18n.English,
		"en":         i18n.English,
		"en_US":      i18n.English,
		"EN-gb":      i18n.English,
		"de":         i18n.German,
		"de-AT":      i18n.German,
		"ja":         i18n.Japanese,
		"jpn":        i18n.Japanese,
		"ES-LA":      i18n.SpanishLatAm,
		"es-MX":      i18n.SpanishLatAm,
		"es-AR":      i18n.SpanishLatAm,
		"es":         i18n.Spanish,
		"zh-Hant":    i18n.ChineseTrad,
		"zh-HK":      i18n.ChineseTrad,
		"zh":         i18n.ChineseSimp,
		"zh-Hans-CN": i18n.ChineseSimp,
		"klingon":    i18n.English,
		"ru":         i18n.English,
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, i18n.Resolve(in))
		})
	}
}

func TestParse(t *testing.T) {
	_, ok := i18n.Parse("ru")
	assert.False(t, ok)

	code, ok := i18n.Parse("fr-CA")
	assert.True(t, ok)
	assert.Equal(t, i18n.French, code)
}

func TestLanguages(t *testing.T) {
	assert.Len(t, i18n.All(), len(i18n.Codes))
	for _, c := range i18n.Codes {
		l, ok := i18n.Lookup(c)
		assert.True(t, ok, c)
		assert.Equal(t, c, l.Code)
		assert.True(t, i18n.IsCode(string(c)))
	}
	assert.False(t, i18n.IsCode("en"))
}
