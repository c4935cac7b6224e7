// Package entity contains the core business objects of the project.
package entity

// Language represents a display language for menu and order text.
type Language string

const (
	// LanguageEnglish is the primary catalog language.
	LanguageEnglish Language = "en"
	// LanguageArabic is the localized catalog language.
	LanguageArabic Language = "ar"
)

// String returns the string representation of the Language.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageArabic:
		return true
	default:
		return false
	}
}

// ParseLanguage maps a raw string to a Language, falling back to English
// for anything unrecognized.
func ParseLanguage(raw string) Language {
	lang := Language(raw)
	if !lang.IsValid() {
		return LanguageEnglish
	}

	return lang
}
