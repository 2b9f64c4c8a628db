// Package layout implements a terminal flex layout engine: a tree of
// rectangular nodes with flex-like sizing constraints is placed into a
// rectangular output region and drawn through a host-provided Surface.
//
// A Layout owns its root Node, every descendant Node and TextItem, and the
// Surface it draws into. Nothing in this package touches the terminal or
// any concrete cell buffer directly; that is the Surface implementation's
// job.
package layout
