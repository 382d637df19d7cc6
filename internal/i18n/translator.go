package i18n

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
)

// FormattingError reports a template placeholder with no substitution value.
// This is a caller/catalog mismatch and is never masked.
type FormattingError struct {
	Key         string
	Placeholder string
}

func (e *FormattingError) Error() string {
	return fmt.Sprintf("i18n: no value for placeholder {%s} in %q", e.Placeholder, e.Key)
}

// Vars holds named substitution values for placeholder formatting.
type Vars map[string]string

// Translator resolves catalog keys and domain vocabulary to localized text.
// Safe for concurrent use; all tables are read-only after construction.
type Translator struct {
	cat *catalog
}

// NewTranslator loads the embedded catalogs.
func NewTranslator() *Translator {
	return &Translator{cat: newCatalog()}
}

// Resolve looks up key in the generic catalog, substitutes {name}
// placeholders from vars into both language texts, and combines them for the
// requested language. An absent key uses fallback as both texts. A
// placeholder referenced by the text but missing from vars yields a
// *FormattingError.
func (t *Translator) Resolve(key string, lang Language, fallback string, vars Vars) (string, error) {
	zhText, enText, ok := t.cat.lookup(key)
	if !ok {
		zhText, enText = fallback, fallback
	}

	zhOut, err := substitute(key, zhText, vars)
	if err != nil {
		return "", err
	}
	enOut, err := substitute(key, enText, vars)
	if err != nil {
		return "", err
	}
	return Combine(zhOut, enOut, lang), nil
}

// Label resolves a key that carries no placeholders. Substitution cannot
// fail without placeholders, so the error path collapses.
func (t *Translator) Label(key string, lang Language, fallback string) string {
	text, err := t.Resolve(key, lang, fallback, nil)
	if err != nil {
		return fallback
	}
	return text
}

// Status translates a progress-status phrase. English mode returns the
// phrase unchanged; an unknown phrase is never an error.
func (t *Translator) Status(status string, lang Language) string {
	if lang == LangEN {
		return status
	}
	zh, ok := statusVocab[status]
	if !ok {
		zh = status
	}
	if lang == LangZH {
		return zh
	}
	return Combine(zh, status, LangBoth)
}

var titleCaser = cases.Title(xlang.English)

// AgentName returns the localized display name for an agent key. Agents
// missing from the vocabulary get a title-cased, space-joined default.
func (t *Translator) AgentName(agentKey string, lang Language) string {
	base := titleCaser.String(strings.ReplaceAll(agentKey, "_", " "))
	zh, ok := agentVocab[agentKey]
	if !ok {
		zh = base
	}
	return Combine(zh, base, lang)
}

// Signal translates a signal word; the input is uppercased first and used
// verbatim as the fallback.
func (t *Translator) Signal(signal string, lang Language) string {
	up := strings.ToUpper(signal)
	zh, ok := signalVocab[up]
	if !ok {
		zh = up
	}
	return Combine(zh, up, lang)
}

// Action translates a trading action; the input is uppercased first and used
// verbatim as the fallback.
func (t *Translator) Action(action string, lang Language) string {
	up := strings.ToUpper(action)
	zh, ok := actionVocab[up]
	if !ok {
		zh = up
	}
	return Combine(zh, up, lang)
}

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func substitute(key, text string, vars Vars) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := vars[name]; ok {
			return v
		}
		if missing == "" {
			missing = name
		}
		return m
	})
	if missing != "" {
		return "", &FormattingError{Key: key, Placeholder: missing}
	}
	return out, nil
}
