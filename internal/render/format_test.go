package render

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1, "$1.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-1234.5, "$-1,234.50"},
		{999.999, "$1,000.00"},
		{100000, "$100,000.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Formatting then stripping the "$" and commas recovers the amount to cent
// precision; this is the contract the backtest summary parser relies on.
func TestProperty_CurrencyRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("FormatCurrency round-trips through parse", prop.ForAll(
		func(amount float64) bool {
			if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > 1e12 {
				return true
			}

			formatted := FormatCurrency(amount)
			if !strings.HasPrefix(formatted, "$") {
				t.Logf("no $ prefix: %q", formatted)
				return false
			}

			stripped := strings.ReplaceAll(strings.TrimPrefix(formatted, "$"), ",", "")
			parsed, err := strconv.ParseFloat(stripped, 64)
			if err != nil {
				t.Logf("parse %q: %v", stripped, err)
				return false
			}
			if math.Abs(parsed-amount) > 0.005+math.Abs(amount)*1e-9 {
				t.Logf("round-trip %v -> %q -> %v", amount, formatted, parsed)
				return false
			}
			return true
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}

func TestFormatShares(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{1500, "1,500"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}
	for _, tt := range tests {
		if got := FormatShares(tt.in); got != tt.want {
			t.Errorf("FormatShares(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSignedPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.345, "+12.35%"},
		{-3.2, "-3.20%"},
		{0, "+0.00%"},
	}
	for _, tt := range tests {
		if got := FormatSignedPercent(tt.in); got != tt.want {
			t.Errorf("FormatSignedPercent(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfidenceFormats(t *testing.T) {
	if got := FormatConfidence(87.456); got != "87.5%" {
		t.Errorf("FormatConfidence = %q", got)
	}
	if got := FormatConfidenceInt(87.456); got != "87%" {
		t.Errorf("FormatConfidenceInt = %q", got)
	}
	if got := FormatRatio(1.2345); got != "1.23" {
		t.Errorf("FormatRatio = %q", got)
	}
}
