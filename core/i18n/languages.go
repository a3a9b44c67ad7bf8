package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Code is a dataset language code, the key of every multilingual map.
type Code string

const (
	English      Code = "eng"
	Spanish      Code = "esp"
	SpanishLatAm Code = "esla"
	French       Code = "fra"
	German       Code = "deu"
	Italian      Code = "ita"
	Japanese     Code = "jap"
	Korean       Code = "kor"
	ChineseSimp  Code = "chs"
	ChineseTrad  Code = "cht"
)

// Base is the reference language every translation falls back to.
const Base = English

// Codes lists every dataset language in canonical order.
var Codes = []Code{English, Spanish, SpanishLatAm, French, German, Italian, Japanese, Korean, ChineseSimp, ChineseTrad}

// Language holds the display data of one supported language.
type Language struct {
	Code     Code     `json:"code"`
	Code2    string   `json:"code2Char"`
	GameCode string   `json:"gameCode"`
	Locale   string   `json:"locale"`
	Title    string   `json:"title"`
	Full     string   `json:"fullTitle"`
	Synonyms []string `json:"synonyms"`
}

var languages = []Language{
	{Code: English, Code2: "en", GameCode: "ENG", Locale: "en-US", Title: "English", Full: "English", Synonyms: []string{"en", "eng", "en-US", "en-gb"}},
	{Code: German, Code2: "de", GameCode: "DEU", Locale: "de", Title: "Deutsch", Full: "Deutsch (German)", Synonyms: []string{"de", "deu", "de-DE"}},
	{Code: French, Code2: "fr", GameCode: "FRA", Locale: "fr", Title: "Français", Full: "Français (French)", Synonyms: []string{"fr", "fra", "fr-FR"}},
	{Code: Spanish, Code2: "es", GameCode: "ES-ES", Locale: "es-ES", Title: "Español", Full: "Español (Spanish)", Synonyms: []string{"es", "esp", "es-ES"}},
	{Code: SpanishLatAm, Code2: "esla", GameCode: "ES-LA", Locale: "es-419", Title: "Español (LatAm)", Full: "Español (Latin America)", Synonyms: []string{"esla", "es-419", "es-MX"}},
	{Code: Italian, Code2: "it", GameCode: "ITA", Locale: "it", Title: "Italiano", Full: "Italiano", Synonyms: []string{"it", "ita", "it-IT"}},
	{Code: Japanese, Code2: "ja", GameCode: "JPN", Locale: "ja", Title: "日本語", Full: "日本語 (Japanese)", Synonyms: []string{"ja", "jap", "jpn", "ja-JP", "jp-JP"}},
	{Code: Korean, Code2: "ko", GameCode: "KOR", Locale: "ko", Title: "한국어", Full: "한국어 (Korean)", Synonyms: []string{"ko", "kor", "ko-KR"}},
	{Code: ChineseTrad, Code2: "cht", GameCode: "CHT", Locale: "zh-TW", Title: "繁體中文", Full: "繁體中文 (Traditional Chinese)", Synonyms: []string{"cht", "cht-TW", "zh-Hant", "zh-TW"}},
	{Code: ChineseSimp, Code2: "chs", GameCode: "CHS", Locale: "zh-CN", Title: "简体中文", Full: "简体中文 (Simplified Chinese)", Synonyms: []string{"chs", "chs-CN", "zh-Hans", "zh-CN"}},
}

var synonyms = func() map[string]Code {
	m := make(map[string]Code)
	for _, l := range languages {
		m[strings.ToLower(string(l.Code))] = l.Code
		m[strings.ToLower(l.Code2)] = l.Code
		m[strings.ToLower(l.GameCode)] = l.Code
		for _, s := range l.Synonyms {
			m[strings.ToLower(s)] = l.Code
		}
	}
	return m
}()

// All returns the display data of every supported language.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Lookup returns the display data of code.
func Lookup(code Code) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsCode reports whether s is exactly a dataset language code.
func IsCode(s string) bool {
	for _, c := range Codes {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Resolve maps a language identifier onto a dataset code.
// Unknown or empty input resolves to Base.
func Resolve(tag string) Code {
	code, ok := Parse(tag)
	if !ok {
		return Base
	}
	return code
}

// Parse is like Resolve but reports whether tag was recognised.
func Parse(tag string) (Code, bool) {
	s := strings.TrimSpace(tag)
	if s == "" {
		return "", false
	}
	if code, ok := synonyms[strings.ToLower(s)]; ok {
		return code, true
	}

	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", false
	}
	return fromTag(t)
}

var latinAmerica = language.MustParseRegion("419")

func fromTag(t language.Tag) (Code, bool) {
	base, _ := t.Base()
	switch base.String() {
	case "zh":
		script, _ := t.Script()
		region, _ := t.Region()
		if script.String() == "Hant" || region.String() == "TW" || region.String() == "HK" || region.String() == "MO" {
			return ChineseTrad, true
		}
		return ChineseSimp, true
	case "es":
		region, conf := t.Region()
		if conf == language.Exact && region != language.MustParseRegion("ES") && latinAmerica.Contains(region) {
			return SpanishLatAm, true
		}
		return Spanish, true
	}

	if code, ok := synonyms[base.String()]; ok {
		return code, true
	}
	return "", false
}
