package language

import (
	"golang.org/x/text/language"
)

// DefaultLocale is used for speech when a language has no explicit locale.
var DefaultLocale = language.AmericanEnglish

var locales = map[Code]language.Tag{
	"en": language.AmericanEnglish,
	"es": language.EuropeanSpanish,
	"fr": language.MustParse("fr-FR"),
	"de": language.MustParse("de-DE"),
	"it": language.MustParse("it-IT"),
	"pt": language.EuropeanPortuguese,
	"ru": language.MustParse("ru-RU"),
	"ja": language.MustParse("ja-JP"),
	"ko": language.MustParse("ko-KR"),
	"zh": language.MustParse("zh-CN"),
	"ar": language.MustParse("ar-SA"),
	"hi": language.MustParse("hi-IN"),
}

// Locale derives the speech locale for code, e.g. "es" -> "es-ES".
func Locale(code Code) language.Tag {
	if tag, ok := locales[code]; ok {
		return tag
	}
	return DefaultLocale
}
