package resultlog

import (
	"fmt"

	"github.com/crimson-sun/runlog/internal/model"
)

// Consolidate collapses bursty repeated messages. All messages sharing a
// non-empty grouping key are grouped by that key alone (category is not part
// of the key); any group with strictly more than the group limit keeps only
// its first occurrence, whose text gains an " and {N-1} more" suffix. All
// other messages keep their relative order.
//
// Typically called once, after recording and before export.
func (l *Log) Consolidate() {
	// Index positions by grouping key, preserving first-occurrence order.
	var order []string
	groups := make(map[string][]int)
	for i, m := range l.messages {
		if m.MessageID == "" {
			continue
		}
		if _, seen := groups[m.MessageID]; !seen {
			order = append(order, m.MessageID)
		}
		groups[m.MessageID] = append(groups[m.MessageID], i)
	}

	drop := make(map[int]bool)
	for _, id := range order {
		positions := groups[id]
		if len(positions) <= l.groupLimit {
			continue
		}
		first := positions[0]
		l.messages[first].Message += fmt.Sprintf(" and %d more", len(positions)-1)
		for _, i := range positions[1:] {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return
	}

	// Single stable rebuild pass.
	kept := make([]model.Message, 0, len(l.messages)-len(drop))
	for i, m := range l.messages {
		if !drop[i] {
			kept = append(kept, m)
		}
	}
	l.messages = kept
}
