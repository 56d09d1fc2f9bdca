package emit

import (
	"fmt"
	"time"
)

// Kind classifies a split update.
type Kind uint8

const (
	Resize       Kind = iota // Sibling sizes changed by a drag commit
	Reorder                  // Siblings were reordered by a replacement
	NestedUpdate             // A nested level changed
)

func (k Kind) String() string {
	switch k {
	case Resize:
		return "resize"
	case Reorder:
		return "reorder"
	case NestedUpdate:
		return "nested-update"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event describes one committed change as seen from one level.
type Event struct {
	Kind Kind
	// SplitID names the pane the change is reported for. For a resize it is
	// the pane before the dragged separator, for a reorder the split owning
	// the reordered level, and for a nested update the child split whose
	// subtree changed. A reorder of the root level carries the empty ID,
	// since the root has no owning pane.
	SplitID   string
	Timestamp time.Time
}

// Delivery is one hop of a propagated event.
type Delivery struct {
	// Level is the owner ID of the level receiving the event; empty for the root.
	Level string
	Event Event
}

// Route computes the deliveries for origin, which happened at the level
// owned by owners[0]. owners lists the enclosing level owners nearest first
// and ends with the root ("").
//
// The first hop carries origin unchanged. Every later hop is re-wrapped as
// a nested-update naming the split owned by the previous hop.
func Route(owners []string, origin Event) []Delivery {
	out := make([]Delivery, 0, len(owners))
	for i, owner := range owners {
		ev := origin
		if i > 0 {
			ev = Event{Kind: NestedUpdate, SplitID: owners[i-1], Timestamp: origin.Timestamp}
		}
		out = append(out, Delivery{Level: owner, Event: ev})
	}
	return out
}
