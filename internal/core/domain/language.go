package domain

import "strings"

// Language is the tag used to instruct the AI services and localize their fallbacks.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
	LanguageGerman  Language = "de"
	LanguageChinese Language = "zh"

	DefaultLanguage = LanguageSpanish
)

var languageNames = map[Language]string{
	LanguageSpanish: "Spanish",
	LanguageEnglish: "English",
	LanguageGerman:  "German",
	LanguageChinese: "Chinese",
}

// ParseLanguage recognises a supported language tag, ignoring case and region suffixes ("en-GB").
func ParseLanguage(tag string) (Language, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		tag = tag[:i]
	}
	l := Language(tag)
	_, ok := languageNames[l]
	return l, ok
}

// NormalizeLanguage returns the supported language for tag, or DefaultLanguage.
func NormalizeLanguage(tag string) Language {
	if l, ok := ParseLanguage(tag); ok {
		return l
	}
	return DefaultLanguage
}

// Name returns the English name of the language, which the models recognise best.
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}
