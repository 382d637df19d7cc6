// Package i18n provides bilingual (Chinese/English) text resolution for the
// presentation layer: a generic key catalog, domain vocabulary tables, and
// the combination rule that merges both languages into a single output string.
package i18n

import "strings"

// Language selects which language(s) user-facing text is rendered in.
type Language string

const (
	LangZH   Language = "zh"
	LangEN   Language = "en"
	LangBoth Language = "both"
)

// DefaultLanguage is used whenever the caller's choice cannot be understood.
const DefaultLanguage = LangZH

// ParseLanguage converts free-form input to a Language. Unrecognized or empty
// input resolves to Chinese; this never fails.
func ParseLanguage(raw string) Language {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "en":
		return LangEN
	case "both":
		return LangBoth
	default:
		return DefaultLanguage
	}
}

// DefaultJoiner separates the two languages in "both" mode.
const DefaultJoiner = " / "

// Combine merges Chinese and English text per the requested language using
// the default joiner.
func Combine(zhText, enText string, lang Language) string {
	return CombineWith(zhText, enText, lang, DefaultJoiner)
}

// CombineWith merges Chinese and English text per the requested language.
// Single-language modes fall back to the other language when their own text
// is empty. In "both" mode the two texts are joined, the English half dropped
// when it exactly equals the Chinese half, and empty halves omitted; if both
// are empty the raw inputs decide.
func CombineWith(zhText, enText string, lang Language, joiner string) string {
	switch lang {
	case LangEN:
		if enText != "" {
			return enText
		}
		return zhText
	case LangBoth:
		zh := strings.TrimSpace(zhText)
		en := strings.TrimSpace(enText)
		parts := make([]string, 0, 2)
		if zh != "" {
			parts = append(parts, zh)
		}
		if en != "" && en != zh {
			parts = append(parts, en)
		}
		if len(parts) == 0 {
			if enText != "" {
				return enText
			}
			return zhText
		}
		return strings.Join(parts, joiner)
	default:
		if zhText != "" {
			return zhText
		}
		return enText
	}
}
