package drag

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-splitpane/internal/debug"
)

// Controller runs separator drag gestures for one layout. It is not safe
// for concurrent use; hosts call it from their event loop.
type Controller struct {
	model   Model
	host    Host
	state   State
	release func()
	closed  bool
}

// New creates an idle controller.
func New(model Model, host Host) *Controller {
	return &Controller{
		model: model,
		host:  host,
		state: Idle{},
	}
}

// State returns the current drag state.
func (c *Controller) State() State {
	return c.state
}

// Active returns true while a gesture is in progress.
func (c *Controller) Active() bool {
	_, ok := c.state.(Dragging)
	return ok
}

// Begin starts a gesture on the separator at target with the pointer at
// at. It returns false, and does nothing, if a gesture is already in
// progress, the controller is closed, or target names no separator.
func (c *Controller) Begin(target Target, at Point) bool {
	if c.closed {
		return false
	}
	if c.Active() {
		debug.Log("drag: ignoring pointer-down while dragging")
		return false
	}
	if !finite(at.X) || !finite(at.Y) {
		return false
	}

	level, err := c.model.Level(target.Level)
	if err != nil {
		debug.Log("drag: begin: %v", err)
		return false
	}
	if target.Index < 0 || target.Index+1 >= len(level.Panes) {
		debug.Log("drag: begin: no separator %d in level %s", target.Index, level.Path)
		return false
	}

	c.state = Dragging{
		Separator: target.Index,
		Level:     level.Path,
		Owner:     level.Owner,
		Anchor:    at,
		Axis:      level.Axis,
		start:     level.Sizes(),
		bounds:    level.Bounds(),
		splitID:   level.Panes[target.Index].ID(),
	}
	c.release = c.host.CapturePointer(c.Handle)
	debug.Log("drag: begin separator %d of level %s at %v", target.Index, level.Path, at)
	return true
}

// Move recomputes the dragged level for the pointer at at and commits it.
// Frames with a non-finite position or a container that measures zero,
// negative or non-finite are skipped.
func (c *Controller) Move(at Point) error {
	d, ok := c.state.(Dragging)
	if !ok {
		return nil
	}

	pos, anchor := at.Along(d.Axis), d.Anchor.Along(d.Axis)
	if !finite(pos) {
		return nil
	}
	extent := c.host.Measure(Container{SplitID: d.Owner, Axis: d.Axis})
	if !finite(extent) || extent <= 0 {
		debug.Log("drag: skipping frame, container %q measures %v", d.Owner, extent)
		return nil
	}

	delta := (pos - anchor) / extent * 100
	sizes := Resize(d.start, d.bounds, d.Separator, delta)
	if err := c.model.Commit(d.Level, sizes, d.splitID); err != nil {
		return fmt.Errorf("drag commit: %w", err)
	}
	return nil
}

// End finishes the gesture. The last committed frame stays in place.
func (c *Controller) End() {
	if !c.Active() {
		return
	}
	c.state = Idle{}
	c.releaseCapture()
	debug.Log("drag: end")
}

// Handle dispatches a captured pointer event. A pointer-down during a
// gesture is ignored.
func (c *Controller) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerMove:
		if err := c.Move(ev.Point()); err != nil {
			debug.Log("drag: %v", err)
		}
	case PointerUp:
		c.End()
	}
}

// Close ends any gesture and releases the pointer capture. The controller
// ignores all input afterwards.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.End()
	c.releaseCapture()
	c.closed = true
}

func (c *Controller) releaseCapture() {
	if c.release == nil {
		return
	}
	release := c.release
	c.release = nil
	release()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
