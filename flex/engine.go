package flex

import (
	flexbridge "github.com/onebit/flexbridge"
)

// Engine is an in-process retained-mode layout tree implementing
// flexbridge.Backend. It owns its node and config memory the way a
// foreign library would: refs are arena slots, freed slots are reused,
// and a ref is only meaningful while its object is alive.
type Engine struct {
	nodes       []*node
	freeNodes   []int
	configs     []*config
	freeConfigs []int
}

type config struct {
	useWebDefaults bool
}

type node struct {
	ref      flexbridge.NodeRef
	cfg      *config
	parent   *node
	children []*node
	style    style
	layout   flexbridge.Rect
}

type style struct {
	display       flexbridge.Display
	flexDirection flexbridge.FlexDirection
	justify       flexbridge.Justify
	alignItems    flexbridge.Align
	alignSelf     flexbridge.Align
	alignContent  flexbridge.Align
	wrap          flexbridge.Wrap
	positionType  flexbridge.PositionType

	flexGrow   float32
	flexShrink float32

	flexBasis flexbridge.Value
	width     flexbridge.Value
	height    flexbridge.Value
	minWidth  flexbridge.Value
	minHeight flexbridge.Value
	maxWidth  flexbridge.Value
	maxHeight flexbridge.Value

	// Indexed by flexbridge.Edge.
	margin   [9]flexbridge.Value
	padding  [9]flexbridge.Value
	border   [9]flexbridge.Value
	position [9]flexbridge.Value
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{}
}

func defaultStyle(cfg *config) style {
	s := style{
		flexDirection: flexbridge.FlexDirectionColumn,
		alignItems:    flexbridge.AlignStretch,
		alignSelf:     flexbridge.AlignAuto,
	}
	if cfg != nil && cfg.useWebDefaults {
		s.flexDirection = flexbridge.FlexDirectionRow
		s.flexShrink = 1
	}
	return s
}

func (e *Engine) lookupNode(ref flexbridge.NodeRef) *node {
	i := int(ref) - 1
	if i < 0 || i >= len(e.nodes) {
		return nil
	}
	return e.nodes[i]
}

func (e *Engine) lookupConfig(ref flexbridge.ConfigRef) *config {
	i := int(ref) - 1
	if i < 0 || i >= len(e.configs) {
		return nil
	}
	return e.configs[i]
}

// CreateConfig implements flexbridge.Backend.
func (e *Engine) CreateConfig() flexbridge.ConfigRef {
	c := &config{}
	if n := len(e.freeConfigs); n > 0 {
		i := e.freeConfigs[n-1]
		e.freeConfigs = e.freeConfigs[:n-1]
		e.configs[i] = c
		return flexbridge.ConfigRef(i + 1)
	}
	e.configs = append(e.configs, c)
	return flexbridge.ConfigRef(len(e.configs))
}

// DestroyConfig implements flexbridge.Backend.
func (e *Engine) DestroyConfig(ref flexbridge.ConfigRef) {
	if c := e.lookupConfig(ref); c != nil {
		e.configs[int(ref)-1] = nil
		e.freeConfigs = append(e.freeConfigs, int(ref)-1)
	}
}

// ConfigSetUseWebDefaults implements flexbridge.Backend.
func (e *Engine) ConfigSetUseWebDefaults(ref flexbridge.ConfigRef, on bool) {
	if c := e.lookupConfig(ref); c != nil {
		c.useWebDefaults = on
	}
}

// CreateNode implements flexbridge.Backend. The config's defaults are
// captured at creation time.
func (e *Engine) CreateNode(cfg flexbridge.ConfigRef) flexbridge.NodeRef {
	c := e.lookupConfig(cfg)
	n := &node{cfg: c, style: defaultStyle(c)}
	if ln := len(e.freeNodes); ln > 0 {
		i := e.freeNodes[ln-1]
		e.freeNodes = e.freeNodes[:ln-1]
		e.nodes[i] = n
		n.ref = flexbridge.NodeRef(i + 1)
	} else {
		e.nodes = append(e.nodes, n)
		n.ref = flexbridge.NodeRef(len(e.nodes))
	}
	return n.ref
}

// DestroyNode implements flexbridge.Backend. The node is detached from
// its parent and its children are orphaned, not freed.
func (e *Engine) DestroyNode(ref flexbridge.NodeRef) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	n.detach()
	for _, c := range n.children {
		c.parent = nil
	}
	e.release(int(ref) - 1)
}

// DestroySubtree implements flexbridge.Backend: frees the node and every
// descendant in one call.
func (e *Engine) DestroySubtree(ref flexbridge.NodeRef) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	n.detach()
	e.releaseSubtree(n)
}

func (e *Engine) releaseSubtree(n *node) {
	for _, c := range n.children {
		e.releaseSubtree(c)
	}
	e.release(int(n.ref) - 1)
}

func (e *Engine) release(i int) {
	if e.nodes[i] == nil {
		return
	}
	e.nodes[i] = nil
	e.freeNodes = append(e.freeNodes, i)
}

func (n *node) detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// InsertChild implements flexbridge.Backend.
func (e *Engine) InsertChild(parent, child flexbridge.NodeRef, index int) {
	p := e.lookupNode(parent)
	c := e.lookupNode(child)
	if p == nil || c == nil || p == c {
		return
	}
	c.detach()
	if index < 0 || index > len(p.children) {
		index = len(p.children)
	}
	p.children = append(p.children[:index], append([]*node{c}, p.children[index:]...)...)
	c.parent = p
}

// RemoveChild implements flexbridge.Backend.
func (e *Engine) RemoveChild(parent, child flexbridge.NodeRef) {
	p := e.lookupNode(parent)
	c := e.lookupNode(child)
	if p == nil || c == nil || c.parent != p {
		return
	}
	c.detach()
}

// ChildCount implements flexbridge.Backend.
func (e *Engine) ChildCount(ref flexbridge.NodeRef) int {
	n := e.lookupNode(ref)
	if n == nil {
		return 0
	}
	return len(n.children)
}

// ChildAt implements flexbridge.Backend.
func (e *Engine) ChildAt(ref flexbridge.NodeRef, index int) flexbridge.NodeRef {
	n := e.lookupNode(ref)
	if n == nil || index < 0 || index >= len(n.children) {
		return 0
	}
	return n.children[index].ref
}

// SetEnum implements flexbridge.Backend.
func (e *Engine) SetEnum(ref flexbridge.NodeRef, prop flexbridge.EnumProp, v int32) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	switch prop {
	case flexbridge.PropFlexDirection:
		n.style.flexDirection = flexbridge.FlexDirection(v)
	case flexbridge.PropJustifyContent:
		n.style.justify = flexbridge.Justify(v)
	case flexbridge.PropAlignItems:
		n.style.alignItems = flexbridge.Align(v)
	case flexbridge.PropAlignSelf:
		n.style.alignSelf = flexbridge.Align(v)
	case flexbridge.PropAlignContent:
		n.style.alignContent = flexbridge.Align(v)
	case flexbridge.PropFlexWrap:
		n.style.wrap = flexbridge.Wrap(v)
	case flexbridge.PropPositionType:
		n.style.positionType = flexbridge.PositionType(v)
	case flexbridge.PropDisplay:
		n.style.display = flexbridge.Display(v)
	}
}

// SetFloat implements flexbridge.Backend.
func (e *Engine) SetFloat(ref flexbridge.NodeRef, prop flexbridge.FloatProp, v float32) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	switch prop {
	case flexbridge.PropFlex:
		// Positive flex is a grow factor, negative a shrink factor.
		if v > 0 {
			n.style.flexGrow = v
			n.style.flexShrink = 1
		} else if v < 0 {
			n.style.flexShrink = -v
		}
	case flexbridge.PropFlexGrow:
		n.style.flexGrow = v
	case flexbridge.PropFlexShrink:
		n.style.flexShrink = v
	}
}

// SetDimension implements flexbridge.Backend.
func (e *Engine) SetDimension(ref flexbridge.NodeRef, prop flexbridge.DimensionProp, v flexbridge.Value) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	switch prop {
	case flexbridge.PropWidth:
		n.style.width = v
	case flexbridge.PropHeight:
		n.style.height = v
	case flexbridge.PropMinWidth:
		n.style.minWidth = v
	case flexbridge.PropMinHeight:
		n.style.minHeight = v
	case flexbridge.PropMaxWidth:
		n.style.maxWidth = v
	case flexbridge.PropMaxHeight:
		n.style.maxHeight = v
	case flexbridge.PropFlexBasis:
		n.style.flexBasis = v
	}
}

// SetEdge implements flexbridge.Backend.
func (e *Engine) SetEdge(ref flexbridge.NodeRef, prop flexbridge.EdgeProp, edge flexbridge.Edge, v flexbridge.Value) {
	n := e.lookupNode(ref)
	if n == nil || edge < 0 || int(edge) >= len(n.style.margin) {
		return
	}
	switch prop {
	case flexbridge.PropMargin:
		n.style.margin[edge] = v
	case flexbridge.PropPadding:
		n.style.padding[edge] = v
	case flexbridge.PropBorder:
		n.style.border[edge] = v
	case flexbridge.PropPosition:
		n.style.position[edge] = v
	}
}

// CalculateLayout implements flexbridge.Backend.
func (e *Engine) CalculateLayout(ref flexbridge.NodeRef, availWidth, availHeight float32, dir flexbridge.Direction) {
	n := e.lookupNode(ref)
	if n == nil {
		return
	}
	calculate(n, availWidth, availHeight, dir)
}

// Layout implements flexbridge.Backend.
func (e *Engine) Layout(ref flexbridge.NodeRef) flexbridge.Rect {
	n := e.lookupNode(ref)
	if n == nil {
		return flexbridge.Rect{}
	}
	return n.layout
}

// NodeCount reports live nodes, for tests and tooling.
func (e *Engine) NodeCount() int {
	count := 0
	for _, n := range e.nodes {
		if n != nil {
			count++
		}
	}
	return count
}
