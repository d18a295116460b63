package flexbridge

import "math"

// NodeRef is an opaque reference to a node owned by the foreign layout
// library. The zero value means "no node". Refs are only meaningful to the
// Backend that issued them; nothing outside a Backend may interpret one.
type NodeRef uint32

// ConfigRef is an opaque reference to a foreign layout configuration.
// The zero value means "no config".
type ConfigRef uint32

// Rect is the computed geometry of a node after a layout pass, in the
// coordinate space of its parent.
type Rect struct {
	Left   float32
	Top    float32
	Width  float32
	Height float32
}

// Undefined is the foreign library's "no constraint" dimension value.
var Undefined = float32(math.NaN())

// IsUndefined reports whether v is the undefined dimension value.
func IsUndefined(v float32) bool {
	return math.IsNaN(float64(v))
}

// Unit qualifies a style Value.
type Unit uint8

const (
	UnitUndefined Unit = iota
	UnitPoint
	UnitPercent
	UnitAuto
)

// Value is a style dimension: a number of points, a percentage of the
// parent's corresponding dimension, or auto.
type Value struct {
	Value float32
	Unit  Unit
}

// Points returns a point-valued dimension.
func Points(v float32) Value { return Value{Value: v, Unit: UnitPoint} }

// Percent returns a percent-valued dimension.
func Percent(v float32) Value { return Value{Value: v, Unit: UnitPercent} }

// Auto returns the auto dimension.
func Auto() Value { return Value{Unit: UnitAuto} }

// Backend is the capability surface of the foreign layout library. It is
// resolved once at session construction; every operation the bridge
// performs on foreign memory goes through it, and nothing else does.
//
// A Backend is the only owner of node and config memory. Refs passed to
// any method are assumed live; the bridge guarantees it never passes a ref
// it has already asked the backend to destroy.
//
// Backends are not required to be safe for concurrent use.
type Backend interface {
	// CreateConfig allocates a foreign config. Zero ref on failure.
	CreateConfig() ConfigRef

	// DestroyConfig frees a foreign config.
	DestroyConfig(ConfigRef)

	// ConfigSetUseWebDefaults toggles web-compatible style defaults.
	ConfigSetUseWebDefaults(ConfigRef, bool)

	// CreateNode allocates a foreign node. A zero cfg means the library
	// default config. Zero ref on failure.
	CreateNode(cfg ConfigRef) NodeRef

	// DestroyNode frees a single node. Children are not freed.
	DestroyNode(NodeRef)

	// DestroySubtree frees a node and every descendant in one call.
	DestroySubtree(NodeRef)

	// InsertChild attaches child under parent at index.
	InsertChild(parent, child NodeRef, index int)

	// RemoveChild detaches child from parent without freeing it.
	RemoveChild(parent, child NodeRef)

	// ChildCount reports the number of children of a node.
	ChildCount(NodeRef) int

	// ChildAt returns the child at index, or zero if out of range.
	ChildAt(ref NodeRef, index int) NodeRef

	// SetEnum sets an enum-valued style property.
	SetEnum(NodeRef, EnumProp, int32)

	// SetFloat sets a scalar style property.
	SetFloat(NodeRef, FloatProp, float32)

	// SetDimension sets a dimension style property.
	SetDimension(NodeRef, DimensionProp, Value)

	// SetEdge sets a per-edge style property.
	SetEdge(NodeRef, EdgeProp, Edge, Value)

	// CalculateLayout runs the foreign layout pass over the subtree rooted
	// at ref. Pass Undefined for an unconstrained dimension.
	CalculateLayout(ref NodeRef, availWidth, availHeight float32, dir Direction)

	// Layout returns the computed geometry of a node.
	Layout(NodeRef) Rect
}
