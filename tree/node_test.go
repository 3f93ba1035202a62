package tree

import (
	"errors"
	"slices"
	"testing"
)

// sample builds the tree
//
//	f
//	|-- b
//	|   |-- a
//	|   +-- d
//	|       |-- c
//	|       +-- e
//	+-- g
//	    +-- i
//	        +-- h
//
// and returns its nodes by name.
func sample(t *testing.T) map[string]*Node[string] {
	t.Helper()
	nodes := map[string]*Node[string]{}
	for _, name := range []string{"f", "b", "a", "d", "c", "e", "g", "i", "h"} {
		nodes[name] = New(name)
	}
	links := [][2]string{
		{"b", "f"}, {"a", "b"}, {"d", "b"}, {"c", "d"},
		{"e", "d"}, {"g", "f"}, {"i", "g"}, {"h", "i"},
	}
	for _, l := range links {
		if err := nodes[l[0]].SetParent(nodes[l[1]]); err != nil {
			t.Fatalf("linking %s under %s: %v", l[0], l[1], err)
		}
	}
	return nodes
}

func names(nodes []*Node[string]) []string {
	var res []string
	for _, n := range nodes {
		res = append(res, n.Data)
	}
	return res
}

func TestSetParentSingleOwnership(t *testing.T) {
	x := New("x")
	p1 := New("p1")
	p2 := New("p2")
	if err := x.SetParent(p1); err != nil {
		t.Fatal(err)
	}
	if x.Parent() != p1 {
		t.Fatal("parent not set")
	}
	if got := names(p1.Children()); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("p1 children = %v", got)
	}
	if err := x.SetParent(p2); err != nil {
		t.Fatal(err)
	}
	if len(p1.Children()) != 0 {
		t.Fatal("x still present under old parent")
	}
	if got := names(p2.Children()); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("p2 children = %v", got)
	}
	if x.Parent() != p2 {
		t.Fatal("parent not moved")
	}
}

func TestSetParentLoop(t *testing.T) {
	nodes := sample(t)
	f, b, d, e := nodes["f"], nodes["b"], nodes["d"], nodes["e"]

	if err := f.SetParent(f); !errors.Is(err, ErrLoop) {
		t.Errorf("self-parent: err = %v, want ErrLoop", err)
	}
	// e is in f's subtree: f under e would close a cycle
	if err := f.SetParent(e); !errors.Is(err, ErrLoop) {
		t.Errorf("descendant parent: err = %v, want ErrLoop", err)
	}
	if err := b.SetParent(d); !errors.Is(err, ErrLoop) {
		t.Errorf("b under d: err = %v, want ErrLoop", err)
	}
	// failed attempts leave the tree unchanged
	if got := names(f.Children()); !slices.Equal(got, []string{"b", "g"}) {
		t.Errorf("f children after failed loops = %v", got)
	}
	if e.Parent() != d || b.Parent() != f {
		t.Error("parents changed by failed loop attempts")
	}
	if len(f.Descendants()) != 8 {
		t.Errorf("descendant count changed: %d", len(f.Descendants()))
	}
}

func TestSetParentIdempotent(t *testing.T) {
	nodes := sample(t)
	b, f := nodes["b"], nodes["f"]
	fired := 0
	b.Hooks = &Hooks[string]{
		PreDetach: func(n, parent *Node[string]) error {
			fired++
			return nil
		},
	}
	if err := b.SetParent(f); err != nil {
		t.Fatal(err)
	}
	if fired != 0 {
		t.Error("re-setting the current parent fired hooks")
	}
	if got := names(f.Children()); !slices.Equal(got, []string{"b", "g"}) {
		t.Errorf("children order changed: %v", got)
	}
}

func TestSetParentDetach(t *testing.T) {
	nodes := sample(t)
	g := nodes["g"]
	if err := g.SetParent(nil); err != nil {
		t.Fatal(err)
	}
	if !g.IsRoot() {
		t.Error("g not detached")
	}
	if got := names(nodes["f"].Children()); !slices.Equal(got, []string{"b"}) {
		t.Errorf("f children = %v", got)
	}
}

func TestSetChildrenRoundTrip(t *testing.T) {
	p := New("p")
	c1, c2, c3 := New("c1"), New("c2"), New("c3")
	if err := p.SetChildren(c1, c2, c3); err != nil {
		t.Fatal(err)
	}
	if got := names(p.Children()); !slices.Equal(got, []string{"c1", "c2", "c3"}) {
		t.Fatalf("children = %v", got)
	}
	for _, c := range []*Node[string]{c1, c2, c3} {
		if c.Parent() != p {
			t.Errorf("%s parent not set", c.Data)
		}
	}
}

func TestSetChildrenValidation(t *testing.T) {
	p := New("p")
	old := New("old")
	if err := p.SetChildren(old); err != nil {
		t.Fatal(err)
	}
	c := New("c")
	if err := p.SetChildren(c, c); !errors.Is(err, ErrDuplicateChild) {
		t.Errorf("duplicate: err = %v, want ErrDuplicateChild", err)
	}
	if err := p.SetChildren(c, nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("nil: err = %v, want ErrNilNode", err)
	}
	// validation precedes mutation: old linkage intact
	if got := names(p.Children()); !slices.Equal(got, []string{"old"}) {
		t.Errorf("children after failed validation = %v", got)
	}
	if c.Parent() != nil {
		t.Error("candidate attached by failed validation")
	}
}

func TestSetChildrenRollback(t *testing.T) {
	g := New("g")
	p := New("p")
	if err := p.SetParent(g); err != nil {
		t.Fatal(err)
	}
	o1, o2 := New("o1"), New("o2")
	if err := p.SetChildren(o1, o2); err != nil {
		t.Fatal(err)
	}
	// attaching g under p closes a cycle; the batch fails after c1 went in
	c1 := New("c1")
	if err := p.SetChildren(c1, g); !errors.Is(err, ErrLoop) {
		t.Fatalf("err = %v, want ErrLoop", err)
	}
	if got := names(p.Children()); !slices.Equal(got, []string{"o1", "o2"}) {
		t.Errorf("children after rollback = %v", got)
	}
	if o1.Parent() != p || o2.Parent() != p {
		t.Error("old children not re-attached")
	}
	if c1.Parent() != nil {
		t.Error("failed candidate left attached")
	}
	if p.Parent() != g {
		t.Error("outer linkage disturbed")
	}
}

func TestClearChildren(t *testing.T) {
	nodes := sample(t)
	b := nodes["b"]
	if err := b.ClearChildren(); err != nil {
		t.Fatal(err)
	}
	if !b.IsLeaf() {
		t.Error("b still has children")
	}
	for _, name := range []string{"a", "d"} {
		if !nodes[name].IsRoot() {
			t.Errorf("%s still attached", name)
		}
	}
	// the detached subtrees are intact
	if got := names(nodes["d"].Children()); !slices.Equal(got, []string{"c", "e"}) {
		t.Errorf("d children = %v", got)
	}
}

func TestPathAncestorsRoot(t *testing.T) {
	nodes := sample(t)
	e, f := nodes["e"], nodes["f"]
	if got := names(e.Path()); !slices.Equal(got, []string{"f", "b", "d", "e"}) {
		t.Errorf("path = %v", got)
	}
	if got := names(e.Ancestors()); !slices.Equal(got, []string{"f", "b", "d"}) {
		t.Errorf("ancestors = %v", got)
	}
	if f.Ancestors() != nil {
		t.Error("root has ancestors")
	}
	if e.Root() != f || f.Root() != f {
		t.Error("root lookup failed")
	}
	if !f.IsRoot() || e.IsRoot() {
		t.Error("IsRoot wrong")
	}
}

func TestDescendants(t *testing.T) {
	nodes := sample(t)
	got := names(nodes["f"].Descendants())
	want := []string{"b", "a", "d", "c", "e", "g", "i", "h"}
	if !slices.Equal(got, want) {
		t.Errorf("descendants = %v, want %v", got, want)
	}
	if len(nodes["h"].Descendants()) != 0 {
		t.Error("leaf has descendants")
	}
}

func TestSiblings(t *testing.T) {
	nodes := sample(t)
	if got := names(nodes["b"].Siblings()); !slices.Equal(got, []string{"g"}) {
		t.Errorf("b siblings = %v", got)
	}
	if nodes["f"].Siblings() != nil {
		t.Error("root has siblings")
	}
}

func TestLeaves(t *testing.T) {
	nodes := sample(t)
	got := names(nodes["f"].Leaves())
	want := []string{"a", "c", "e", "h"}
	if !slices.Equal(got, want) {
		t.Errorf("leaves = %v, want %v", got, want)
	}
	// a leaf is its own only leaf
	if got := names(nodes["h"].Leaves()); !slices.Equal(got, []string{"h"}) {
		t.Errorf("h leaves = %v", got)
	}
}

func TestDepthHeight(t *testing.T) {
	root := New("root")
	a, b, c := New("a"), New("b"), New("c")
	for _, l := range [][2]*Node[string]{{a, root}, {b, a}, {c, b}} {
		if err := l[0].SetParent(l[1]); err != nil {
			t.Fatal(err)
		}
	}
	tests := []struct {
		node          *Node[string]
		depth, height int
	}{
		{root, 0, 3},
		{a, 1, 2},
		{b, 2, 1},
		{c, 3, 0},
	}
	for _, tt := range tests {
		if got := tt.node.Depth(); got != tt.depth {
			t.Errorf("%s depth = %d, want %d", tt.node.Data, got, tt.depth)
		}
		if got := tt.node.Height(); got != tt.height {
			t.Errorf("%s height = %d, want %d", tt.node.Data, got, tt.height)
		}
	}
}

func TestChildrenCopied(t *testing.T) {
	nodes := sample(t)
	f := nodes["f"]
	kids := f.Children()
	kids[0] = nil
	if got := names(f.Children()); !slices.Equal(got, []string{"b", "g"}) {
		t.Errorf("internal children mutated through copy: %v", got)
	}
}
