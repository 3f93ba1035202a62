package walk

type postFrame[N any] struct {
	node     N
	level    int
	expanded bool
}

// PostOrder walks the tree depth-first, yielding each node after its
// subtree, children left to right.
func PostOrder[N any](root N, children Children[N], opts ...Option[N]) *Iter[N] {
	o := buildOptions(opts)
	return newIter(func() func() (N, bool) {
		var stack []postFrame[N]
		for _, n := range rootFrontier(root, &o) {
			stack = append(stack, postFrame[N]{node: n, level: 1})
		}
		return func() (N, bool) {
			for len(stack) > 0 {
				i := len(stack) - 1
				if !stack[i].expanded {
					stack[i].expanded = true
					node, level := stack[i].node, stack[i].level
					if !abortAtLevel(level+1, o.maxLevel) {
						kids := children(node)
						for j := len(kids) - 1; j >= 0; j-- {
							if !o.stop(kids[j]) {
								stack = append(stack, postFrame[N]{node: kids[j], level: level + 1})
							}
						}
					}
					continue
				}
				f := stack[i]
				stack = stack[:i]
				if o.filter(f.node) {
					return f.node, true
				}
			}
			var zero N
			return zero, false
		}
	})
}
