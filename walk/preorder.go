package walk

type frame[N any] struct {
	node  N
	level int
}

// PreOrder walks the tree depth-first, yielding each node before its
// subtree, children left to right. This is the default strategy.
func PreOrder[N any](root N, children Children[N], opts ...Option[N]) *Iter[N] {
	o := buildOptions(opts)
	return newIter(func() func() (N, bool) {
		var stack []frame[N]
		for _, n := range rootFrontier(root, &o) {
			stack = append(stack, frame[N]{n, 1})
		}
		return func() (N, bool) {
			for len(stack) > 0 {
				f := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if !abortAtLevel(f.level+1, o.maxLevel) {
					kids := children(f.node)
					// reversed, so the leftmost child is popped first
					for i := len(kids) - 1; i >= 0; i-- {
						if !o.stop(kids[i]) {
							stack = append(stack, frame[N]{kids[i], f.level + 1})
						}
					}
				}
				if o.filter(f.node) {
					return f.node, true
				}
			}
			var zero N
			return zero, false
		}
	})
}
