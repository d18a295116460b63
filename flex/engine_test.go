package flex

import (
	"testing"

	flexbridge "github.com/onebit/flexbridge"
)

func TestEngine_NodeLifecycle(t *testing.T) {
	e := New()

	a := e.CreateNode(0)
	b := e.CreateNode(0)
	if a == 0 || b == 0 || a == b {
		t.Fatalf("expected two distinct refs, got %d and %d", a, b)
	}
	if got := e.NodeCount(); got != 2 {
		t.Fatalf("NodeCount = %d, want 2", got)
	}

	e.DestroyNode(a)
	if got := e.NodeCount(); got != 1 {
		t.Fatalf("NodeCount after destroy = %d, want 1", got)
	}

	// The freed slot is reused.
	c := e.CreateNode(0)
	if c != a {
		t.Fatalf("expected slot reuse: got %d, want %d", c, a)
	}
}

func TestEngine_StaleRefsAreNoOps(t *testing.T) {
	e := New()
	a := e.CreateNode(0)
	e.DestroyNode(a)

	e.DestroyNode(a)
	e.SetFloat(a, flexbridge.PropFlexGrow, 1)
	e.InsertChild(a, a, 0)
	e.CalculateLayout(a, 100, 100, flexbridge.DirectionLTR)
	if got := e.Layout(a); got != (flexbridge.Rect{}) {
		t.Fatalf("Layout on stale ref = %+v, want zero", got)
	}
	if got := e.ChildCount(999); got != 0 {
		t.Fatalf("ChildCount on bogus ref = %d, want 0", got)
	}
}

func TestEngine_ChildOrdering(t *testing.T) {
	e := New()
	p := e.CreateNode(0)
	a := e.CreateNode(0)
	b := e.CreateNode(0)
	c := e.CreateNode(0)

	e.InsertChild(p, a, 0)
	e.InsertChild(p, c, 1)
	e.InsertChild(p, b, 1)

	if got := e.ChildCount(p); got != 3 {
		t.Fatalf("ChildCount = %d, want 3", got)
	}
	want := []flexbridge.NodeRef{a, b, c}
	for i, w := range want {
		if got := e.ChildAt(p, i); got != w {
			t.Fatalf("ChildAt(%d) = %d, want %d", i, got, w)
		}
	}
	if got := e.ChildAt(p, 3); got != 0 {
		t.Fatalf("ChildAt out of range = %d, want 0", got)
	}
	if got := e.ChildAt(p, -1); got != 0 {
		t.Fatalf("ChildAt(-1) = %d, want 0", got)
	}
}

func TestEngine_InsertChildReparents(t *testing.T) {
	e := New()
	p1 := e.CreateNode(0)
	p2 := e.CreateNode(0)
	c := e.CreateNode(0)

	e.InsertChild(p1, c, 0)
	e.InsertChild(p2, c, 0)

	if got := e.ChildCount(p1); got != 0 {
		t.Fatalf("old parent still has %d children", got)
	}
	if got := e.ChildAt(p2, 0); got != c {
		t.Fatalf("new parent child = %d, want %d", got, c)
	}
}

func TestEngine_RemoveChildDetachesOnly(t *testing.T) {
	e := New()
	p := e.CreateNode(0)
	c := e.CreateNode(0)
	e.InsertChild(p, c, 0)

	e.RemoveChild(p, c)
	if got := e.ChildCount(p); got != 0 {
		t.Fatalf("ChildCount = %d, want 0", got)
	}
	if got := e.NodeCount(); got != 2 {
		t.Fatalf("NodeCount = %d, want 2: removed child must stay alive", got)
	}

	// Removing a non-child is a no-op.
	other := e.CreateNode(0)
	e.RemoveChild(p, other)
	if got := e.NodeCount(); got != 3 {
		t.Fatalf("NodeCount = %d, want 3", got)
	}
}

func TestEngine_DestroyNodeOrphansChildren(t *testing.T) {
	e := New()
	p := e.CreateNode(0)
	c := e.CreateNode(0)
	e.InsertChild(p, c, 0)

	e.DestroyNode(p)
	if got := e.NodeCount(); got != 1 {
		t.Fatalf("NodeCount = %d, want 1: child survives its parent", got)
	}
	if got := e.Layout(c); got != (flexbridge.Rect{}) {
		t.Fatalf("orphan layout = %+v, want zero", got)
	}
}

func TestEngine_DestroySubtree(t *testing.T) {
	e := New()
	root := e.CreateNode(0)
	mid := e.CreateNode(0)
	leaf := e.CreateNode(0)
	e.InsertChild(root, mid, 0)
	e.InsertChild(mid, leaf, 0)

	e.DestroySubtree(root)
	if got := e.NodeCount(); got != 0 {
		t.Fatalf("NodeCount = %d, want 0", got)
	}
}

func TestEngine_ConfigDefaults(t *testing.T) {
	e := New()

	plain := e.CreateNode(0)
	if got := e.nodes[int(plain)-1].style.flexDirection; got != flexbridge.FlexDirectionColumn {
		t.Fatalf("default flexDirection = %d, want column", got)
	}

	cfg := e.CreateConfig()
	e.ConfigSetUseWebDefaults(cfg, true)
	web := e.CreateNode(cfg)
	s := e.nodes[int(web)-1].style
	if s.flexDirection != flexbridge.FlexDirectionRow {
		t.Fatalf("web default flexDirection = %d, want row", s.flexDirection)
	}
	if s.flexShrink != 1 {
		t.Fatalf("web default flexShrink = %v, want 1", s.flexShrink)
	}

	e.DestroyConfig(cfg)
	reused := e.CreateConfig()
	if reused != cfg {
		t.Fatalf("config slot not reused: got %d, want %d", reused, cfg)
	}
}

func TestEngine_SetFlexShorthand(t *testing.T) {
	e := New()
	n := e.CreateNode(0)

	e.SetFloat(n, flexbridge.PropFlex, 2)
	s := e.nodes[int(n)-1].style
	if s.flexGrow != 2 || s.flexShrink != 1 {
		t.Fatalf("flex=2: grow=%v shrink=%v, want 2/1", s.flexGrow, s.flexShrink)
	}

	e.SetFloat(n, flexbridge.PropFlex, -3)
	s = e.nodes[int(n)-1].style
	if s.flexShrink != 3 {
		t.Fatalf("flex=-3: shrink=%v, want 3", s.flexShrink)
	}
}
