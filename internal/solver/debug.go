package solver

import (
	"fmt"
	"strings"
)

// DebugString renders a row-major dump of committed values (with empty
// cells shown as a dot), followed by the remaining candidates of every
// still-empty cell.
func (s *State) DebugString() string {
	var b strings.Builder
	for _, row := range s.Grid {
		for _, c := range row {
			if c.HasValue {
				fmt.Fprintf(&b, "%v ", c.Value)
			} else {
				b.WriteString(". ")
			}
		}
		b.WriteByte('\n')
	}
	for _, row := range s.Grid {
		for _, c := range row {
			if c.HasValue {
				continue
			}
			fmt.Fprintf(&b, "%s: %v\n", c.Pos, c.CandidateValues(s.Model.Values))
		}
	}
	return b.String()
}
