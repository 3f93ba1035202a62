package walk

import (
	"github.com/signadot/arbor/debug"
)

// Children provides the ordered child nodes of a tree node. The walk
// strategies are parameterized by a Children accessor so they can run over
// any tree-shaped type without depending on it.
type Children[N any] func(N) []N

type options[N any] struct {
	filter   func(N) bool
	stop     func(N) bool
	maxLevel int
}

// Option configures a walk strategy.
type Option[N any] func(*options[N])

// Filter restricts the walk output to nodes for which f returns true.
// Filtered nodes still have their subtrees visited.
func Filter[N any](f func(N) bool) Option[N] {
	return func(o *options[N]) { o.filter = f }
}

// Stop excludes a node and its entire subtree from the walk when f returns
// true for it, checked before descending.
func Stop[N any](f func(N) bool) Option[N] {
	return func(o *options[N]) { o.stop = f }
}

// MaxLevel bounds descent: nodes deeper than n levels are excluded, counting
// the root as level 1. Zero means unbounded. Negative values are not
// validated and prune everything.
func MaxLevel[N any](n int) Option[N] {
	return func(o *options[N]) { o.maxLevel = n }
}

func buildOptions[N any](opts []Option[N]) options[N] {
	o := options[N]{
		filter: func(N) bool { return true },
		stop:   func(N) bool { return false },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func abortAtLevel(level, maxLevel int) bool {
	return maxLevel != 0 && level > maxLevel
}

// rootFrontier is the shared setup of every strategy: the walk frontier is
// the root alone, unless the root itself is stopped or level 1 is already
// out of bounds.
func rootFrontier[N any](root N, o *options[N]) []N {
	if abortAtLevel(1, o.maxLevel) || o.stop(root) {
		return nil
	}
	return []N{root}
}

// Iter is a lazy, one-shot, forward-only iterator produced by a walk
// strategy. Construction does no traversal work; the first call to Next
// initializes the walk. Exhaustion is final: there is no reset, re-walk by
// constructing a new Iter.
//
// An Iter holds live references into the tree being walked and is undefined
// under structural mutation of that tree. Single-threaded use only.
type Iter[E any] struct {
	init func() func() (E, bool)
	next func() (E, bool)
	done bool
}

func newIter[E any](init func() func() (E, bool)) *Iter[E] {
	return &Iter[E]{init: init}
}

// Next returns the next element of the walk. The second result is false once
// the walk is exhausted, and stays false on every subsequent call.
func (it *Iter[E]) Next() (E, bool) {
	if it.done {
		var zero E
		return zero, false
	}
	if it.next == nil {
		if debug.Walk() {
			debug.Logf("walk: init\n")
		}
		it.next = it.init()
	}
	e, ok := it.next()
	if !ok {
		if debug.Walk() {
			debug.Logf("walk: exhausted\n")
		}
		it.done = true
		it.next = nil
		var zero E
		return zero, false
	}
	return e, ok
}

// Slice drains the iterator and returns the remaining elements in walk
// order.
func (it *Iter[E]) Slice() []E {
	var res []E
	for {
		e, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, e)
	}
}
