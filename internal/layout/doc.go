// Package layout turns a split tree into concrete layout instructions.
//
// [Solve] is a pure, recursive function that maps a tree to nested
// [Instruction] values: one per pane, carrying the pane's effective size in
// percent of its parent's main axis and the axis its level is laid out on.
// Nested levels always use the axis orthogonal to their parent's.
//
// [Resolve] converts those percentages into integer cell rectangles for a
// given container, including the separator boxes between adjacent siblings
// that hosts use for hit testing. [Compose] folds instructions into host
// visual nodes bottom-up.
//
// Types are re-exported through the root splitpane package for public
// consumption.
package layout
