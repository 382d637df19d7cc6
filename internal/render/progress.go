package render

import (
	"fmt"
	"strings"
)

// PrintAgentStatus writes a one-line progress update for an agent: a status
// glyph, the localized agent name, and the localized status text.
func (r *Renderer) PrintAgentStatus(agentKey, status string) {
	glyph := colorize(colorYellow, "⋯")
	switch {
	case status == "Done":
		glyph = colorize(colorGreen, "✓")
	case strings.HasPrefix(status, "Failed"), strings.HasPrefix(status, "Error"):
		glyph = colorize(colorRed, "✗")
	}

	name := r.tr.AgentName(strings.TrimSuffix(agentKey, "_agent"), r.lang)
	fmt.Fprintf(r.w, "%s %s: %s\n", glyph, name, r.tr.Status(status, r.lang))
}
