// Package render turns decision and backtest data into colored console
// tables, using the i18n translator for every user-visible string.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth matches the reasoning column width of the signal tables.
const DefaultWrapWidth = 60

// Wrap re-flows text into lines of at most width characters using a greedy
// word accumulator. Words longer than width are never split; they occupy a
// line of their own. Existing line breaks are treated as ordinary word
// separators, so Wrap is not idempotent on text it already wrapped when that
// text contained hard breaks or overlong words.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var b strings.Builder
	line := ""
	lineLen := 0
	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		if line != "" && lineLen+1+wordLen > width {
			b.WriteString(line)
			b.WriteByte('\n')
			line = word
			lineLen = wordLen
		} else if line == "" {
			line = word
			lineLen = wordLen
		} else {
			line += " " + word
			lineLen += 1 + wordLen
		}
	}
	b.WriteString(line)
	return b.String()
}

// ReasoningText coerces a reasoning payload to display text: strings pass
// through, maps are serialized as indented JSON, anything else is
// stringified. Never fails.
func ReasoningText(v any) string {
	switch r := v.(type) {
	case nil:
		return ""
	case string:
		return r
	case map[string]any:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", r)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", r)
	}
}

// WrapReasoning coerces and wraps a reasoning payload at the default width.
func WrapReasoning(v any) string {
	return Wrap(ReasoningText(v), DefaultWrapWidth)
}
