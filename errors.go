package splitpane

import (
	"errors"

	"github.com/grindlemire/go-splitpane/internal/tree"
)

var (
	// ErrClosed is returned by operations on a closed layout.
	ErrClosed = errors.New("splitpane: layout closed")

	// ErrDuplicateID is returned when two panes share an ID.
	ErrDuplicateID = tree.ErrDuplicateID

	// ErrInvalidSizes is returned when committed sizes do not sum to 100.
	ErrInvalidSizes = tree.ErrInvalidSizes

	// ErrNoSuchLevel is returned for a path or ID that names no sibling level.
	ErrNoSuchLevel = tree.ErrNoSuchLevel
)
