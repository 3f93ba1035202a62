package walk

import "slices"

// ZigZagGroups walks the tree like LevelGroups but alternates direction per
// level: the root group is yielded unchanged, the next level reversed, the
// one after in natural order, and so on. A final level that has no deeper
// pair is still yielded, in whichever direction its depth calls for.
func ZigZagGroups[N any](root N, children Children[N], opts ...Option[N]) *Iter[[]N] {
	return newIter(func() func() ([]N, bool) {
		groups := LevelGroups(root, children, opts...)
		idx := 0
		return func() ([]N, bool) {
			g, ok := groups.Next()
			if !ok {
				return nil, false
			}
			if idx%2 == 1 {
				slices.Reverse(g)
			}
			idx++
			return g, true
		}
	})
}
