package tree

// Hooks observe structural changes to a node. Fields are optional; a nil
// field is a no-op. A non-nil error from a pre-hook vetoes the step before
// any linkage changes; an error from a post-hook propagates to the caller of
// the mutating operation. Within SetChildren either kind triggers rollback
// of the whole batch.
//
// Hooks fire on the node being attached or detached (with its parent as the
// second argument), and on the parent for the batch variants.
type Hooks[T any] struct {
	PreDetach  func(n, parent *Node[T]) error
	PostDetach func(n, parent *Node[T]) error
	PreAttach  func(n, parent *Node[T]) error
	PostAttach func(n, parent *Node[T]) error

	PreDetachChildren  func(n *Node[T], children []*Node[T]) error
	PostDetachChildren func(n *Node[T], children []*Node[T]) error
	PreAttachChildren  func(n *Node[T], children []*Node[T]) error
	PostAttachChildren func(n *Node[T], children []*Node[T]) error
}

func (n *Node[T]) preDetach(parent *Node[T]) error {
	if h := n.Hooks; h != nil && h.PreDetach != nil {
		return h.PreDetach(n, parent)
	}
	return nil
}

func (n *Node[T]) postDetach(parent *Node[T]) error {
	if h := n.Hooks; h != nil && h.PostDetach != nil {
		return h.PostDetach(n, parent)
	}
	return nil
}

func (n *Node[T]) preAttach(parent *Node[T]) error {
	if h := n.Hooks; h != nil && h.PreAttach != nil {
		return h.PreAttach(n, parent)
	}
	return nil
}

func (n *Node[T]) postAttach(parent *Node[T]) error {
	if h := n.Hooks; h != nil && h.PostAttach != nil {
		return h.PostAttach(n, parent)
	}
	return nil
}

func (n *Node[T]) preDetachChildren(children []*Node[T]) error {
	if h := n.Hooks; h != nil && h.PreDetachChildren != nil {
		return h.PreDetachChildren(n, children)
	}
	return nil
}

func (n *Node[T]) postDetachChildren(children []*Node[T]) error {
	if h := n.Hooks; h != nil && h.PostDetachChildren != nil {
		return h.PostDetachChildren(n, children)
	}
	return nil
}

func (n *Node[T]) preAttachChildren(children []*Node[T]) error {
	if h := n.Hooks; h != nil && h.PreAttachChildren != nil {
		return h.PreAttachChildren(n, children)
	}
	return nil
}

func (n *Node[T]) postAttachChildren(children []*Node[T]) error {
	if h := n.Hooks; h != nil && h.PostAttachChildren != nil {
		return h.PostAttachChildren(n, children)
	}
	return nil
}
