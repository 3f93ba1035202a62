package walk

// LevelGroups walks the tree breadth-first, yielding one group per level,
// shallowest first. Each group holds the qualifying nodes of its level in
// left-to-right child order. A level whose nodes are all filtered out still
// yields its (empty) group; a level with no nodes at all ends the walk.
func LevelGroups[N any](root N, children Children[N], opts ...Option[N]) *Iter[[]N] {
	o := buildOptions(opts)
	return newIter(func() func() ([]N, bool) {
		level := 1
		cur := rootFrontier(root, &o)
		return func() ([]N, bool) {
			if len(cur) == 0 {
				return nil, false
			}
			group := make([]N, 0, len(cur))
			for _, n := range cur {
				if o.filter(n) {
					group = append(group, n)
				}
			}
			var next []N
			if !abortAtLevel(level+1, o.maxLevel) {
				for _, n := range cur {
					for _, c := range children(n) {
						if !o.stop(c) {
							next = append(next, c)
						}
					}
				}
			}
			cur, level = next, level+1
			return group, true
		}
	})
}

// LevelOrder walks the tree breadth-first, yielding single nodes in
// level-grouped order.
func LevelOrder[N any](root N, children Children[N], opts ...Option[N]) *Iter[N] {
	return newIter(func() func() (N, bool) {
		groups := LevelGroups(root, children, opts...)
		var buf []N
		return func() (N, bool) {
			for len(buf) == 0 {
				g, ok := groups.Next()
				if !ok {
					var zero N
					return zero, false
				}
				buf = g
			}
			n := buf[0]
			buf = buf[1:]
			return n, true
		}
	})
}
