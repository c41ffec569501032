package initiative

import (
	"fmt"
	"strings"
)

const (
	CurrentMarker = "➡️"
	EmptyRoster   = "No combatants in the initiative order."
)

// FormatStatus renders the roster in turn order with a round header while
// combat is active and a marker on the combatant whose turn it is.
func (t *Tracker) FormatStatus() string {
	if t.IsEmpty() {
		return EmptyRoster
	}

	var sb strings.Builder
	if t.IsActive {
		fmt.Fprintf(&sb, "📋 **INITIATIVE** (Round %d)\n", t.Round)
	} else {
		sb.WriteString("📋 **INITIATIVE**\n")
	}

	lines := make([]string, len(t.Combatants))
	for i, c := range t.Combatants {
		if t.IsActive && i == t.CurrentIndex {
			lines[i] = CurrentMarker + " " + c.String()
			continue
		}
		lines[i] = c.String()
	}
	sb.WriteString(strings.Join(lines, "\n"))

	return sb.String()
}
