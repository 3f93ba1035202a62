package tree

// copyContext threads the duplicate-check relaxation through a recursive
// copy. It is local to one NewTree call; public mutation is always strict.
type copyContext struct {
	strict bool
}

// NewTree deep-copies the tree rooted at n into a structurally isomorphic
// new tree and returns its root. copyInfo produces the payload-only,
// unattached copy of each source node; linkage is rebuilt by NewTree. The
// source tree is left untouched.
func NewTree[T any](n *Node[T], copyInfo func(*Node[T]) *Node[T]) (*Node[T], error) {
	return newTree(n, copyInfo, copyContext{strict: false})
}

func newTree[T any](n *Node[T], copyInfo func(*Node[T]) *Node[T], ctx copyContext) (*Node[T], error) {
	dst := copyInfo(n)
	if dst == nil {
		return nil, ErrNilNode
	}
	for _, c := range n.children {
		cc, err := newTree(c, copyInfo, ctx)
		if err != nil {
			return nil, err
		}
		if err := cc.setParent(dst, ctx.strict); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
