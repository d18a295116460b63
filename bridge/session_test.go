package bridge

import (
	"testing"

	flexbridge "github.com/onebit/flexbridge"
)

// fakeBackend is a scripted in-memory Backend that records how the
// session drives it.
type fakeBackend struct {
	t       *testing.T
	nodes   map[flexbridge.NodeRef]*fakeNode
	configs map[flexbridge.ConfigRef]bool

	nextNode flexbridge.NodeRef
	nextCfg  flexbridge.ConfigRef

	failNode bool
	failCfg  bool

	lastCreateCfg flexbridge.ConfigRef
	styleCalls    int
	webDefaults   map[flexbridge.ConfigRef]bool
}

type fakeNode struct {
	children []flexbridge.NodeRef
	rect     flexbridge.Rect
	freed    bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	return &fakeBackend{
		t:           t,
		nodes:       make(map[flexbridge.NodeRef]*fakeNode),
		configs:     make(map[flexbridge.ConfigRef]bool),
		webDefaults: make(map[flexbridge.ConfigRef]bool),
	}
}

func (b *fakeBackend) node(ref flexbridge.NodeRef) *fakeNode {
	n, ok := b.nodes[ref]
	if !ok {
		b.t.Fatalf("backend touched unknown node ref %d", ref)
	}
	if n.freed {
		b.t.Fatalf("backend touched freed node ref %d", ref)
	}
	return n
}

func (b *fakeBackend) CreateConfig() flexbridge.ConfigRef {
	if b.failCfg {
		return 0
	}
	b.nextCfg++
	b.configs[b.nextCfg] = true
	return b.nextCfg
}

func (b *fakeBackend) DestroyConfig(ref flexbridge.ConfigRef) {
	if !b.configs[ref] {
		b.t.Fatalf("destroy of unknown config ref %d", ref)
	}
	delete(b.configs, ref)
}

func (b *fakeBackend) ConfigSetUseWebDefaults(ref flexbridge.ConfigRef, on bool) {
	if !b.configs[ref] {
		b.t.Fatalf("configure of unknown config ref %d", ref)
	}
	b.webDefaults[ref] = on
}

func (b *fakeBackend) CreateNode(cfg flexbridge.ConfigRef) flexbridge.NodeRef {
	b.lastCreateCfg = cfg
	if b.failNode {
		return 0
	}
	b.nextNode++
	b.nodes[b.nextNode] = &fakeNode{}
	return b.nextNode
}

func (b *fakeBackend) DestroyNode(ref flexbridge.NodeRef) {
	b.node(ref).freed = true
}

func (b *fakeBackend) DestroySubtree(ref flexbridge.NodeRef) {
	n := b.node(ref)
	for _, c := range n.children {
		b.DestroySubtree(c)
	}
	n.freed = true
}

func (b *fakeBackend) InsertChild(parent, child flexbridge.NodeRef, index int) {
	p := b.node(parent)
	b.node(child)
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children[:index], append([]flexbridge.NodeRef{child}, p.children[index:]...)...)
}

func (b *fakeBackend) RemoveChild(parent, child flexbridge.NodeRef) {
	p := b.node(parent)
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

func (b *fakeBackend) ChildCount(ref flexbridge.NodeRef) int {
	return len(b.node(ref).children)
}

func (b *fakeBackend) ChildAt(ref flexbridge.NodeRef, index int) flexbridge.NodeRef {
	n := b.node(ref)
	if index < 0 || index >= len(n.children) {
		return 0
	}
	return n.children[index]
}

func (b *fakeBackend) SetEnum(ref flexbridge.NodeRef, _ flexbridge.EnumProp, _ int32) {
	b.node(ref)
	b.styleCalls++
}

func (b *fakeBackend) SetFloat(ref flexbridge.NodeRef, _ flexbridge.FloatProp, _ float32) {
	b.node(ref)
	b.styleCalls++
}

func (b *fakeBackend) SetDimension(ref flexbridge.NodeRef, _ flexbridge.DimensionProp, _ flexbridge.Value) {
	b.node(ref)
	b.styleCalls++
}

func (b *fakeBackend) SetEdge(ref flexbridge.NodeRef, _ flexbridge.EdgeProp, _ flexbridge.Edge, _ flexbridge.Value) {
	b.node(ref)
	b.styleCalls++
}

func (b *fakeBackend) CalculateLayout(ref flexbridge.NodeRef, _, _ float32, _ flexbridge.Direction) {
	b.node(ref)
}

func (b *fakeBackend) Layout(ref flexbridge.NodeRef) flexbridge.Rect {
	return b.node(ref).rect
}

func newTestSession(t *testing.T) (*Session, *fakeBackend) {
	t.Helper()
	fake := newFakeBackend(t)
	s, err := NewSession(fake)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, fake
}

func TestNewSession_NilBackend(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatal("expected error for nil backend")
	}
}

func TestSession_NodeLifecycle(t *testing.T) {
	s, fake := newTestSession(t)

	h := s.CreateNode()
	if h == None {
		t.Fatal("CreateNode returned None")
	}
	if s.NodeCount() != 1 {
		t.Fatalf("NodeCount = %d, want 1", s.NodeCount())
	}

	s.FreeNode(h)
	if s.NodeCount() != 0 {
		t.Fatalf("NodeCount = %d, want 0", s.NodeCount())
	}
	if !fake.nodes[1].freed {
		t.Fatal("foreign node was not freed")
	}

	// Double free is a no-op.
	s.FreeNode(h)
}

func TestSession_AllocationFailureReturnsNone(t *testing.T) {
	s, fake := newTestSession(t)
	fake.failNode = true
	fake.failCfg = true

	if h := s.CreateNode(); h != None {
		t.Fatalf("CreateNode = %d, want None", h)
	}
	if h := s.CreateConfig(); h != None {
		t.Fatalf("CreateConfig = %d, want None", h)
	}
	if s.NodeCount() != 0 || s.ConfigCount() != 0 {
		t.Fatal("failed allocations must not leave handles behind")
	}
}

func TestSession_CreateNodeWithInvalidConfigFallsBack(t *testing.T) {
	s, fake := newTestSession(t)

	h := s.CreateNodeWithConfig(42)
	if h == None {
		t.Fatal("fallback creation failed")
	}
	if fake.lastCreateCfg != 0 {
		t.Fatalf("backend got config ref %d, want 0 (default)", fake.lastCreateCfg)
	}

	cfg := s.CreateConfig()
	h2 := s.CreateNodeWithConfig(cfg)
	if h2 == None {
		t.Fatal("creation with config failed")
	}
	if fake.lastCreateCfg == 0 {
		t.Fatal("backend did not receive the config ref")
	}
}

func TestSession_NamespaceIsolation(t *testing.T) {
	s, fake := newTestSession(t)

	// Node handles resolve only against the node table. With no configs
	// alive, config operations on a node handle find nothing, even though
	// the integer itself is a perfectly live node id. The fake fails the
	// test if a garbage ref ever crosses the boundary.
	node := s.CreateNode()
	if node != 0 {
		t.Fatalf("node handle = %d, want 0", node)
	}
	s.SetUseWebDefaults(node, true)
	s.FreeConfig(node)
	if len(fake.webDefaults) != 0 {
		t.Fatal("config namespace acted on a node handle")
	}
	if s.NodeCount() != 1 {
		t.Fatal("FreeConfig must not touch the node namespace")
	}

	// And the reverse: a live config handle is invisible to node
	// operations.
	s2, fake2 := newTestSession(t)
	cfg := s2.CreateConfig()
	if cfg != 0 {
		t.Fatalf("config handle = %d, want 0", cfg)
	}
	s2.SetFlexGrow(cfg, 1)
	s2.FreeNode(cfg)
	if fake2.styleCalls != 0 {
		t.Fatal("node namespace acted on a config handle")
	}
	if w := s2.LayoutWidth(cfg); w != 0 {
		t.Fatalf("LayoutWidth = %v, want 0 for cross-namespace handle", w)
	}
	if s2.ConfigCount() != 1 {
		t.Fatal("FreeNode must not touch the config namespace")
	}
}

func TestSession_ChildLazySynthesis(t *testing.T) {
	s, fake := newTestSession(t)

	parent := s.CreateNode()
	pref, _ := s.nodes.Get(parent)

	// A child created behind the bridge's back: foreign node with no
	// handle, discovered only through traversal.
	fake.nextNode++
	orphan := fake.nextNode
	fake.nodes[orphan] = &fakeNode{}
	fake.nodes[pref].children = []flexbridge.NodeRef{orphan}

	h1 := s.Child(parent, 0)
	if h1 == None {
		t.Fatal("lazy synthesis failed")
	}
	h2 := s.Child(parent, 0)
	if h2 != h1 {
		t.Fatalf("repeated Child = %d, want %d (idempotent)", h2, h1)
	}
	if s.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2", s.NodeCount())
	}

	// Out of range and invalid parent yield the sentinel.
	if h := s.Child(parent, 5); h != None {
		t.Fatalf("out-of-range Child = %d, want None", h)
	}
	if h := s.Child(None, 0); h != None {
		t.Fatalf("Child of None = %d, want None", h)
	}
}

func TestSession_ChildReturnsExplicitHandle(t *testing.T) {
	s, _ := newTestSession(t)

	parent := s.CreateNode()
	child := s.CreateNode()
	s.InsertChild(parent, child, 0)

	if got := s.Child(parent, 0); got != child {
		t.Fatalf("Child = %d, want the explicitly created handle %d", got, child)
	}
	if s.NodeCount() != 2 {
		t.Fatalf("NodeCount = %d, want 2 (no duplicate handle)", s.NodeCount())
	}
}

func TestSession_FreeSubtreeThreeLevels(t *testing.T) {
	s, fake := newTestSession(t)

	root := s.CreateNode()
	child := s.CreateNode()
	grandchild := s.CreateNode()
	s.InsertChild(root, child, 0)
	s.InsertChild(child, grandchild, 0)

	s.FreeSubtree(root)

	for _, h := range []Handle{root, child, grandchild} {
		if _, ok := s.nodes.Get(h); ok {
			t.Fatalf("handle %d still resolves after subtree free", h)
		}
	}
	if s.NodeCount() != 0 {
		t.Fatalf("NodeCount = %d, want 0", s.NodeCount())
	}
	for ref, n := range fake.nodes {
		if !n.freed {
			t.Fatalf("foreign node %d not freed", ref)
		}
	}
}

func TestSession_FreeSubtreeSkipsUnhandledDescendants(t *testing.T) {
	s, fake := newTestSession(t)

	root := s.CreateNode()
	rref, _ := s.nodes.Get(root)

	// Foreign-only descendant, never given a handle.
	fake.nextNode++
	hidden := fake.nextNode
	fake.nodes[hidden] = &fakeNode{}
	fake.nodes[rref].children = []flexbridge.NodeRef{hidden}

	s.FreeSubtree(root)

	if s.NodeCount() != 0 {
		t.Fatalf("NodeCount = %d, want 0", s.NodeCount())
	}
	if !fake.nodes[hidden].freed {
		t.Fatal("foreign-only descendant not freed natively")
	}
	// The scrub must not have synthesized a handle for it on the way out;
	// the walk runs before the native free, so the fake would have failed
	// the test on any post-free access.
}

func TestSession_FreeSubtreeInvalidHandle(t *testing.T) {
	s, _ := newTestSession(t)
	s.FreeSubtree(None)
	s.FreeSubtree(99)
}

func TestSession_RemoveChildKeepsHandle(t *testing.T) {
	s, fake := newTestSession(t)

	parent := s.CreateNode()
	child := s.CreateNode()
	s.InsertChild(parent, child, 0)
	if s.ChildCount(parent) != 1 {
		t.Fatalf("ChildCount = %d, want 1", s.ChildCount(parent))
	}

	s.RemoveChild(parent, child)
	if s.ChildCount(parent) != 0 {
		t.Fatalf("ChildCount = %d, want 0", s.ChildCount(parent))
	}
	// Detached, not freed: handle and foreign memory both live.
	if _, ok := s.nodes.Get(child); !ok {
		t.Fatal("detached child lost its handle")
	}
	cref, _ := s.nodes.Get(child)
	if fake.nodes[cref].freed {
		t.Fatal("detached child was freed")
	}
}

func TestSession_MutatorsIgnoreInvalidHandles(t *testing.T) {
	s, fake := newTestSession(t)
	node := s.CreateNode()

	s.InsertChild(node, 99, 0)
	s.InsertChild(99, node, 0)
	s.RemoveChild(99, node)
	s.CalculateLayout(99, 100, 100, flexbridge.DirectionLTR)
	s.SetWidth(99, flexbridge.Points(10))
	s.SetMargin(99, flexbridge.EdgeAll, flexbridge.Points(1))
	s.SetFlexDirection(99, flexbridge.FlexDirectionRow)
	s.SetFlexGrow(99, 1)

	if fake.styleCalls != 0 {
		t.Fatalf("styleCalls = %d, want 0", fake.styleCalls)
	}
	if s.ChildCount(node) != 0 {
		t.Fatal("no child should have been attached")
	}
}

func TestSession_LayoutGettersZeroOnInvalid(t *testing.T) {
	s, fake := newTestSession(t)

	h := s.CreateNode()
	ref, _ := s.nodes.Get(h)
	fake.nodes[ref].rect = flexbridge.Rect{Left: 1, Top: 2, Width: 3, Height: 4}

	if got := s.LayoutWidth(h); got != 3 {
		t.Fatalf("LayoutWidth = %v, want 3", got)
	}
	for _, bad := range []Handle{None, 7, -5} {
		if s.LayoutLeft(bad) != 0 || s.LayoutTop(bad) != 0 ||
			s.LayoutWidth(bad) != 0 || s.LayoutHeight(bad) != 0 {
			t.Fatalf("layout getters for %d should all be 0", bad)
		}
	}
}

func TestSession_Close(t *testing.T) {
	s, fake := newTestSession(t)

	s.CreateNode()
	s.CreateNode()
	s.CreateConfig()

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.NodeCount() != 0 || s.ConfigCount() != 0 {
		t.Fatal("Close must reset both namespaces")
	}
	for ref, n := range fake.nodes {
		if !n.freed {
			t.Fatalf("foreign node %d leaked past Close", ref)
		}
	}
	if len(fake.configs) != 0 {
		t.Fatal("foreign config leaked past Close")
	}

	// Session stays usable.
	if h := s.CreateNode(); h == None {
		t.Fatal("session unusable after Close")
	}
}
