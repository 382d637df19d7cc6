package render

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats an amount as "$" + comma-grouped thousands with two
// decimals. The sign follows the dollar marker ("$-1,234.50") so that the
// summary-row reverse parser recovers negative values intact.
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	str := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.Split(str, ".")
	return "$" + sign + groupThousands(parts[0]) + "." + parts[1]
}

// FormatShares formats a share or contract count with comma grouping and no
// decimals.
func FormatShares(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
}

// groupThousands inserts commas every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 0 {
		if len(s) >= 3 {
			result = s[len(s)-3:] + "," + result
			s = s[:len(s)-3]
		} else {
			result = s + "," + result
			s = ""
		}
	}
	return result
}

// FormatSignedPercent renders a return percentage with an explicit sign and
// two decimals. Zero counts as non-negative.
func FormatSignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatConfidence renders a decision confidence with one decimal place.
func FormatConfidence(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatConfidenceInt renders an agent-signal confidence as an integer
// percentage.
func FormatConfidenceInt(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// FormatRatio renders a performance ratio with two decimals.
func FormatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
