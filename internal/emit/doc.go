// Package emit propagates split update events from the level that changed
// up to the root.
//
// A committed mutation produces one [Event] at the mutated level. Each
// enclosing level then receives a nested-update event naming the split it
// contains, so a listener at any level sees exactly one event per commit.
// The original split ID is not chained beyond one hop.
package emit
