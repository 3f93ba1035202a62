package tree

import "errors"

var (
	// ErrLoop reports a mutation that would make a node a descendant of
	// itself.
	ErrLoop = errors.New("loop detected")
	// ErrDuplicateChild reports the same node instance supplied more than
	// once as a child.
	ErrDuplicateChild = errors.New("duplicate child")
	// ErrNilNode reports a nil node supplied where a node is required.
	ErrNilNode = errors.New("nil node")
)
