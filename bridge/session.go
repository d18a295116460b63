package bridge

import (
	"go.uber.org/zap"

	flexbridge "github.com/onebit/flexbridge"
	"github.com/onebit/flexbridge/errors"
	"github.com/onebit/flexbridge/handle"
)

// Handle aliases the table handle type for callers of this package.
type Handle = handle.Handle

// None is the invalid-handle sentinel.
const None = handle.None

// Session exposes one foreign layout tree universe through integer
// handles. Node and config handles are drawn from independent tables: a
// handle is only meaningful for the namespace that issued it, and a
// handle from the wrong namespace behaves exactly like an invalid one.
//
// Every operation is total over the handle domain. Invalid handles make
// mutators no-ops, accessors return zero values, and allocators return
// None; no operation panics or dereferences foreign memory for a handle
// it cannot resolve.
//
// A Session is single-threaded; see the package documentation.
type Session struct {
	backend flexbridge.Backend
	nodes   *handle.Table[flexbridge.NodeRef]
	configs *handle.Table[flexbridge.ConfigRef]
}

// NewSession creates a session over the given backend.
func NewSession(b flexbridge.Backend) (*Session, error) {
	if b == nil {
		return nil, errors.InvalidInput(errors.PhaseInit, "nil backend")
	}
	return &Session{
		backend: b,
		nodes:   handle.New[flexbridge.NodeRef](),
		configs: handle.New[flexbridge.ConfigRef](),
	}, nil
}

// Backend returns the foreign library surface this session drives.
func (s *Session) Backend() flexbridge.Backend { return s.backend }

// CreateConfig allocates a foreign config and returns its handle, or None
// if the foreign allocation failed.
func (s *Session) CreateConfig() Handle {
	ref := s.backend.CreateConfig()
	if ref == 0 {
		Logger().Warn("foreign config allocation failed")
		return None
	}
	return s.configs.Add(ref)
}

// FreeConfig releases a config handle and frees the foreign config.
// No-op for an invalid handle.
func (s *Session) FreeConfig(h Handle) {
	ref, ok := s.configs.Get(h)
	if !ok {
		return
	}
	s.backend.DestroyConfig(ref)
	s.configs.Remove(h)
	s.configs.CompactIfSparse()
}

// SetUseWebDefaults toggles web-compatible defaults on a config.
func (s *Session) SetUseWebDefaults(h Handle, enabled bool) {
	if ref, ok := s.configs.Get(h); ok {
		s.backend.ConfigSetUseWebDefaults(ref, enabled)
	}
}

// CreateNode allocates a default-config node and returns its handle, or
// None if the foreign allocation failed.
func (s *Session) CreateNode() Handle {
	return s.CreateNodeWithConfig(None)
}

// CreateNodeWithConfig allocates a node using the given config. An
// invalid config handle falls back to the library default config rather
// than failing.
func (s *Session) CreateNodeWithConfig(cfg Handle) Handle {
	cref, _ := s.configs.Get(cfg)
	ref := s.backend.CreateNode(cref)
	if ref == 0 {
		Logger().Warn("foreign node allocation failed")
		return None
	}
	return s.nodes.Add(ref)
}

// FreeNode frees a single node and releases its handle. Children keep
// their handles and their foreign memory. No-op for an invalid handle.
func (s *Session) FreeNode(h Handle) {
	ref, ok := s.nodes.Get(h)
	if !ok {
		return
	}
	s.backend.DestroyNode(ref)
	s.nodes.Remove(h)
	s.nodes.CompactIfSparse()
}

// FreeSubtree frees the node and its whole subtree in the foreign
// library, invalidating every handle that aliases a node in that subtree.
// Descendants that never acquired a handle are simply gone.
//
// The scrub must finish before the native free: the walk uses the foreign
// child accessors, which need the subtree's memory to still be alive.
func (s *Session) FreeSubtree(h Handle) {
	ref, ok := s.nodes.Get(h)
	if !ok {
		return
	}
	scrubbed := s.scrub(ref)
	s.backend.DestroySubtree(ref)
	s.nodes.CompactIfSparse()
	Logger().Debug("subtree freed",
		zap.Int32("handle", int32(h)),
		zap.Int("handles_scrubbed", scrubbed))
}

// scrub removes the handles of ref's subtree, children first, and
// reports how many it removed.
func (s *Session) scrub(ref flexbridge.NodeRef) int {
	n := 0
	count := s.backend.ChildCount(ref)
	for i := 0; i < count; i++ {
		if child := s.backend.ChildAt(ref, i); child != 0 {
			n += s.scrub(child)
		}
	}
	if s.nodes.RemoveRef(ref) {
		n++
	}
	return n
}

// InsertChild attaches child under parent at index. No-op unless both
// handles resolve in the node namespace.
func (s *Session) InsertChild(parent, child Handle, index int) {
	pref, ok := s.nodes.Get(parent)
	if !ok {
		return
	}
	cref, ok := s.nodes.Get(child)
	if !ok {
		return
	}
	s.backend.InsertChild(pref, cref, index)
}

// RemoveChild detaches child from parent. The child keeps its handle and
// its foreign memory; only FreeNode or FreeSubtree release it.
func (s *Session) RemoveChild(parent, child Handle) {
	pref, ok := s.nodes.Get(parent)
	if !ok {
		return
	}
	cref, ok := s.nodes.Get(child)
	if !ok {
		return
	}
	s.backend.RemoveChild(pref, cref)
}

// ChildCount reports the number of children of a node, 0 for an invalid
// handle.
func (s *Session) ChildCount(h Handle) int {
	ref, ok := s.nodes.Get(h)
	if !ok {
		return 0
	}
	return s.backend.ChildCount(ref)
}

// Child returns the handle of parent's child at index, synthesizing one
// if the child was reached through traversal before ever being handed
// out. The same foreign node always resolves to the same handle for as
// long as that node is alive. Returns None if parent does not resolve or
// index is out of range.
func (s *Session) Child(parent Handle, index int) Handle {
	pref, ok := s.nodes.Get(parent)
	if !ok {
		return None
	}
	cref := s.backend.ChildAt(pref, index)
	if cref == 0 {
		return None
	}
	if h, ok := s.nodes.Find(cref); ok {
		return h
	}
	return s.nodes.Add(cref)
}

// CalculateLayout runs the foreign layout pass over the subtree rooted at
// h. Pass flexbridge.Undefined for an unconstrained dimension. No-op for
// an invalid handle.
func (s *Session) CalculateLayout(h Handle, availWidth, availHeight float32, dir flexbridge.Direction) {
	if ref, ok := s.nodes.Get(h); ok {
		s.backend.CalculateLayout(ref, availWidth, availHeight, dir)
	}
}

// Layout returns the computed geometry of a node, the zero Rect for an
// invalid handle.
func (s *Session) Layout(h Handle) flexbridge.Rect {
	ref, ok := s.nodes.Get(h)
	if !ok {
		return flexbridge.Rect{}
	}
	return s.backend.Layout(ref)
}

// LayoutLeft returns the computed left offset, 0 for an invalid handle.
func (s *Session) LayoutLeft(h Handle) float32 { return s.Layout(h).Left }

// LayoutTop returns the computed top offset, 0 for an invalid handle.
func (s *Session) LayoutTop(h Handle) float32 { return s.Layout(h).Top }

// LayoutWidth returns the computed width, 0 for an invalid handle.
func (s *Session) LayoutWidth(h Handle) float32 { return s.Layout(h).Width }

// LayoutHeight returns the computed height, 0 for an invalid handle.
func (s *Session) LayoutHeight(h Handle) float32 { return s.Layout(h).Height }

// NodeCount returns the number of live node handles.
func (s *Session) NodeCount() int { return s.nodes.Len() }

// ConfigCount returns the number of live config handles.
func (s *Session) ConfigCount() int { return s.configs.Len() }

// Close frees every foreign object this session still tracks and resets
// both namespaces. The session remains usable afterwards.
func (s *Session) Close() error {
	s.nodes.Each(func(_ Handle, ref flexbridge.NodeRef) bool {
		s.backend.DestroyNode(ref)
		return true
	})
	s.configs.Each(func(_ Handle, ref flexbridge.ConfigRef) bool {
		s.backend.DestroyConfig(ref)
		return true
	})
	s.nodes = handle.New[flexbridge.NodeRef]()
	s.configs = handle.New[flexbridge.ConfigRef]()
	return nil
}
