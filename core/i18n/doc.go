// Package i18n describes the languages the dataset carries translations for.
//
// Dataset documents key their multilingual maps by a three or four letter code
// (eng, deu, esla, ...). Callers usually hold something else: a two letter id
// ("de"), an in-game locale ("ES-LA") or a BCP 47 tag from an Accept-Language
// header ("zh-Hant-TW"). Resolve maps all of these onto a Code.
package i18n
