// Package analysts defines the roster of analyst agents and their display
// order in reports.
package analysts

// displayOrder lists analyst keys in the order they appear in signal tables.
var displayOrder = []string{
	"aswath_damodaran",
	"ben_graham",
	"bill_ackman",
	"cathie_wood",
	"charlie_munger",
	"michael_burry",
	"peter_lynch",
	"phil_fisher",
	"rakesh_jhunjhunwala",
	"stanley_druckenmiller",
	"warren_buffett",
	"technical_analyst",
	"fundamentals_analyst",
	"sentiment_analyst",
	"valuation_analyst",
}

// OrderMap returns analyst key to display rank. Callers append any trailing
// slots (such as risk management) themselves.
func OrderMap() map[string]int {
	m := make(map[string]int, len(displayOrder))
	for i, key := range displayOrder {
		m[key] = i
	}
	return m
}

// Keys returns the analyst keys in display order.
func Keys() []string {
	out := make([]string, len(displayOrder))
	copy(out, displayOrder)
	return out
}
