// Package splitpane provides a recursive, resizable split-pane layout engine.
//
// A layout is a tree of panes whose sizes are percentages of their parent's
// main axis. Siblings at every level sum to 100, and the axis alternates
// with depth. Users import this single package for the complete public API:
// configuration, solving, pointer-driven resizing and change notification.
//
// The engine does not draw. A [Host] measures containers and captures the
// pointer during a drag; the host renders the [Frame] or the [Instruction]
// list returned by the layout however it likes. The tcellhost and teahost
// packages are ready-made hosts for terminal programs.
package splitpane
