// Package drag implements the separator drag gesture.
//
// A [Controller] is either [Idle] or [Dragging]. Pointer-down on a separator
// starts a gesture and captures the pointer through the host; every move
// recomputes the two affected sizes from the sizes captured at pointer-down
// and commits the whole sibling level; pointer-up releases the capture.
//
// The controller never touches the tree directly. It reads levels from and
// commits sizes to a [Model], and asks a [Host] for container extents and
// pointer capture.
package drag
