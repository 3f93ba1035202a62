// Package tree provides a mutable, multi-child tree with safe re-parenting.
//
// # Overview
//
// The package defines one entity, the generic Node. A node holds a payload,
// a back-reference to its parent and an ordered list of children it owns.
// Both directions of every link are maintained by the package: assigning a
// parent appends the node to that parent's children, replacing a node's
// children re-parents each child.
//
// Mutations validate before they act and hold the structural invariants
// after every operation:
//
//   - a node is never its own parent, and never a descendant of itself
//   - a node has at most one parent; re-parenting detaches first
//   - a node appears at most once among a parent's children
//   - a wholesale children replacement either completes or is rolled back
//
// Violations reachable through the public API are ordinary errors (ErrLoop,
// ErrDuplicateChild, ErrNilNode). Internal corruption, which cannot be
// reached through correct use, panics.
//
// Derived queries (Path, Ancestors, Descendants, Siblings, Root, Leaves,
// Depth, Height) are read-only and computed on demand; Descendants and
// Leaves walk the subtree with the walk package's pre-order strategy.
//
// Structural changes can be observed, and vetoed, through optional callback
// Hooks on each node.
//
// Trees are single-threaded: nothing in this package locks, and concurrent
// mutation of one tree must be serialized by the caller.
package tree
