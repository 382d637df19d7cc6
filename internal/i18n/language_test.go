package i18n

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"zh", LangZH},
		{"en", LangEN},
		{"both", LangBoth},
		{"EN", LangEN},
		{" Both ", LangBoth},
		{"", LangZH},
		{"fr", LangZH},
		{"english", LangZH},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ParseLanguage never fails: every input resolves to one of the three modes.
func TestProperty_ParseLanguageTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("ParseLanguage always yields a valid mode", prop.ForAll(
		func(raw string) bool {
			switch ParseLanguage(raw) {
			case LangZH, LangEN, LangBoth:
				return true
			}
			return false
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		zh   string
		en   string
		lang Language
		want string
	}{
		{"zh picks chinese", "买入", "BUY", LangZH, "买入"},
		{"zh falls back to english", "", "BUY", LangZH, "BUY"},
		{"en picks english", "买入", "BUY", LangEN, "BUY"},
		{"en falls back to chinese", "买入", "", LangEN, "买入"},
		{"both joins", "买入", "BUY", LangBoth, "买入 / BUY"},
		{"both drops duplicate english", "AAPL", "AAPL", LangBoth, "AAPL"},
		{"both skips empty chinese", "", "BUY", LangBoth, "BUY"},
		{"both skips empty english", "买入", "", LangBoth, "买入"},
		{"both whitespace only", "  ", "  ", LangBoth, "  "},
		{"both all empty", "", "", LangBoth, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Combine(tt.zh, tt.en, tt.lang); got != tt.want {
				t.Errorf("Combine(%q, %q, %q) = %q, want %q", tt.zh, tt.en, tt.lang, got, tt.want)
			}
		})
	}
}

func TestCombineWithJoiner(t *testing.T) {
	if got := CombineWith("买入", "BUY", LangBoth, " | "); got != "买入 | BUY" {
		t.Errorf("CombineWith custom joiner = %q", got)
	}
}

// In "both" mode the output always contains the non-empty trimmed halves.
func TestProperty_CombineBothContainsHalves(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("both-mode output contains each non-empty half", prop.ForAll(
		func(zh, en string) bool {
			out := Combine(zh, en, LangBoth)
			zhTrim := strings.TrimSpace(zh)
			enTrim := strings.TrimSpace(en)
			if zhTrim != "" && !strings.Contains(out, zhTrim) {
				t.Logf("missing zh half %q in %q", zhTrim, out)
				return false
			}
			if enTrim != "" && !strings.Contains(out, enTrim) {
				t.Logf("missing en half %q in %q", enTrim, out)
				return false
			}
			return true
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
