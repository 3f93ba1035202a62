package tree

import (
	"fmt"
	"slices"

	"github.com/signadot/arbor/debug"
	"github.com/signadot/arbor/walk"
)

// Node is a single element of a tree: a payload, a back-reference to at most
// one parent, and an ordered list of owned children. A freshly constructed
// Node is a detached single-node tree.
//
// Linkage is homogeneous by construction: a *Node[T] only ever links to
// other *Node[T] values. All mutation goes through SetParent, SetChildren
// and ClearChildren, which maintain both directions of every link.
//
// A Node is not safe for concurrent mutation; callers serialize access to a
// tree externally if they share it between goroutines.
type Node[T any] struct {
	Data  T
	Hooks *Hooks[T]

	parent   *Node[T]
	children []*Node[T]
}

// New returns a detached node carrying data.
func New[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// SetParent re-parents n under p, or detaches n when p is nil. Setting the
// current parent again is a no-op. The move either completes or leaves a
// failed step's error; a veto from a pre-detach hook leaves the old linkage
// in place, a veto from a pre-attach hook leaves n detached.
//
// SetParent returns ErrLoop when p is n itself or when n is an ancestor of
// p, leaving the tree unchanged.
func (n *Node[T]) SetParent(p *Node[T]) error {
	return n.setParent(p, true)
}

func (n *Node[T]) setParent(p *Node[T], strict bool) error {
	if n.parent == p {
		return nil
	}
	if err := n.checkLoop(p); err != nil {
		return err
	}
	if err := n.detach(n.parent); err != nil {
		return err
	}
	return n.attach(p, strict)
}

func (n *Node[T]) checkLoop(p *Node[T]) error {
	if p == nil {
		return nil
	}
	if p == n {
		return fmt.Errorf("%w: %v cannot be parent of itself", ErrLoop, n.Data)
	}
	for a := p; a != nil; a = a.parent {
		if a == n {
			return fmt.Errorf("%w: %v is an ancestor of %v", ErrLoop, n.Data, p.Data)
		}
	}
	return nil
}

func (n *Node[T]) detach(p *Node[T]) error {
	if p == nil {
		return nil
	}
	if err := n.preDetach(p); err != nil {
		return err
	}
	i := indexOf(p.children, n)
	if i < 0 {
		panic("arbor: tree is corrupt: child missing from parent at detach")
	}
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
	if debug.Link() {
		debug.Logf("tree: detach %v from %v\n", n.Data, p.Data)
	}
	return n.postDetach(p)
}

func (n *Node[T]) attach(p *Node[T], strict bool) error {
	if p == nil {
		return nil
	}
	if err := n.preAttach(p); err != nil {
		return err
	}
	if strict && indexOf(p.children, n) >= 0 {
		panic("arbor: tree is corrupt: child already present at attach")
	}
	p.children = append(p.children, n)
	n.parent = p
	if debug.Link() {
		debug.Logf("tree: attach %v to %v\n", n.Data, p.Data)
	}
	return n.postAttach(p)
}

// Children returns a copy of the node's ordered child list.
func (n *Node[T]) Children() []*Node[T] {
	return slices.Clone(n.children)
}

// SetChildren replaces the node's children wholesale. Candidates are
// validated before anything changes: a nil candidate returns ErrNilNode, a
// repeated instance returns ErrDuplicateChild. The current children are then
// detached and the candidates attached in order through the SetParent
// protocol. If any step fails, the previous children are restored
// (best-effort: a failure during restore propagates instead of the original
// error) and the original error is returned.
func (n *Node[T]) SetChildren(children ...*Node[T]) error {
	if err := checkChildren(children); err != nil {
		return err
	}
	old := slices.Clone(n.children)
	if err := n.ClearChildren(); err != nil {
		return err
	}
	if err := n.attachChildren(children); err != nil {
		if rerr := n.SetChildren(old...); rerr != nil {
			return rerr
		}
		return err
	}
	return nil
}

func checkChildren[T any](children []*Node[T]) error {
	seen := make(map[*Node[T]]struct{}, len(children))
	for _, c := range children {
		if c == nil {
			return fmt.Errorf("%w: cannot add nil as child", ErrNilNode)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: cannot add %v multiple times", ErrDuplicateChild, c.Data)
		}
		seen[c] = struct{}{}
	}
	return nil
}

func (n *Node[T]) attachChildren(children []*Node[T]) error {
	if err := n.preAttachChildren(children); err != nil {
		return err
	}
	for _, c := range children {
		if err := c.SetParent(n); err != nil {
			return err
		}
	}
	if err := n.postAttachChildren(children); err != nil {
		return err
	}
	if len(n.children) != len(children) {
		panic("arbor: tree is corrupt: children count mismatch after attach")
	}
	return nil
}

// ClearChildren detaches every child, equivalent to SetChildren with no
// arguments. The batch detach hooks fire once around the whole batch.
func (n *Node[T]) ClearChildren() error {
	kids := slices.Clone(n.children)
	if err := n.preDetachChildren(kids); err != nil {
		return err
	}
	for _, c := range kids {
		if err := c.SetParent(nil); err != nil {
			return err
		}
	}
	if len(n.children) != 0 {
		panic("arbor: tree is corrupt: children remain after detach")
	}
	return n.postDetachChildren(kids)
}

// Path returns the nodes from the root down to n, inclusive.
func (n *Node[T]) Path() []*Node[T] {
	var path []*Node[T]
	for a := n; a != nil; a = a.parent {
		path = append(path, a)
	}
	slices.Reverse(path)
	return path
}

// Ancestors returns the nodes from the root down to n's parent, or nil for
// a root.
func (n *Node[T]) Ancestors() []*Node[T] {
	if n.parent == nil {
		return nil
	}
	return n.parent.Path()
}

// Descendants returns every node strictly below n, in pre-order.
func (n *Node[T]) Descendants() []*Node[T] {
	return walk.PreOrder(n, childrenOf[T]).Slice()[1:]
}

// Root walks parent links up to the root of n's tree.
func (n *Node[T]) Root() *Node[T] {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Siblings returns the other children of n's parent, or nil for a root.
func (n *Node[T]) Siblings() []*Node[T] {
	if n.parent == nil {
		return nil
	}
	var sibs []*Node[T]
	for _, c := range n.parent.children {
		if c != n {
			sibs = append(sibs, c)
		}
	}
	return sibs
}

// Leaves returns the childless nodes of n's subtree, in pre-order,
// including n itself when it qualifies.
func (n *Node[T]) Leaves() []*Node[T] {
	return walk.PreOrder(n, childrenOf[T], walk.Filter(func(x *Node[T]) bool {
		return x.IsLeaf()
	})).Slice()
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Height is the number of edges on the longest path from n down to a leaf:
// 0 for a leaf. O(subtree size).
func (n *Node[T]) Height() int {
	res := 0
	for _, c := range n.children {
		if h := c.Height() + 1; h > res {
			res = h
		}
	}
	return res
}

// Depth is the number of parent hops from n up to the root, computed
// without materializing the path.
func (n *Node[T]) Depth() int {
	res := 0
	for a := n.parent; a != nil; a = a.parent {
		res++
	}
	return res
}

// childrenOf adapts Node to the walk package's children accessor. The walk
// strategies only read, so no copy is taken.
func childrenOf[T any](n *Node[T]) []*Node[T] {
	return n.children
}

func indexOf[T any](s []*Node[T], n *Node[T]) int {
	for i, c := range s {
		if c == n {
			return i
		}
	}
	return -1
}
