// Package walk provides lazy traversal strategies over tree-shaped data.
//
// # Overview
//
// Every strategy is parameterized by a Children accessor, so the package
// walks any type that can enumerate its child nodes, without depending on a
// particular node type. Strategies share a common set of options:
//
//   - Filter: yield only nodes satisfying a predicate
//   - Stop: exclude a node and its whole subtree
//   - MaxLevel: bound descent by depth, root counted as level 1
//
// # Iterators
//
// A strategy returns an Iter, a one-shot pull iterator. Construction is
// free; the walk starts lazily on the first Next call and cannot be reset.
// Single-node strategies (PreOrder, PostOrder, LevelOrder) produce
// Iter[N]; grouped strategies (LevelGroups, ZigZagGroups) produce Iter[[]N]
// with one slice per level.
//
// A panicking filter or stop predicate propagates to the caller and aborts
// the walk; it is never swallowed.
package walk
