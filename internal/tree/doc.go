// Package tree implements the split-pane data model.
//
// A [Tree] is an ordered list of sibling [Pane] values laid out along a
// [Direction]. Each pane is either a [Leaf] holding host content or a [Split]
// holding nested children, which are laid out along the orthogonal axis.
// Sizes are percentages of the parent's main-axis extent and every sibling
// level sums to 100 after construction and after every [Tree.Commit].
//
// Trees are immutable: a commit returns a new tree that shares every
// untouched subtree with the old one.
package tree
