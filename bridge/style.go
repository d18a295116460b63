package bridge

import (
	flexbridge "github.com/onebit/flexbridge"
)

// The style setter family. Every setter is a no-op when the node handle
// does not resolve; none of them return anything.

func (s *Session) setEnum(h Handle, prop flexbridge.EnumProp, v int32) {
	if ref, ok := s.nodes.Get(h); ok {
		s.backend.SetEnum(ref, prop, v)
	}
}

func (s *Session) setFloat(h Handle, prop flexbridge.FloatProp, v float32) {
	if ref, ok := s.nodes.Get(h); ok {
		s.backend.SetFloat(ref, prop, v)
	}
}

func (s *Session) setDimension(h Handle, prop flexbridge.DimensionProp, v flexbridge.Value) {
	if ref, ok := s.nodes.Get(h); ok {
		s.backend.SetDimension(ref, prop, v)
	}
}

func (s *Session) setEdge(h Handle, prop flexbridge.EdgeProp, edge flexbridge.Edge, v flexbridge.Value) {
	if ref, ok := s.nodes.Get(h); ok {
		s.backend.SetEdge(ref, prop, edge, v)
	}
}

// SetFlexDirection sets the container's main axis.
func (s *Session) SetFlexDirection(h Handle, v flexbridge.FlexDirection) {
	s.setEnum(h, flexbridge.PropFlexDirection, int32(v))
}

// SetJustifyContent sets main-axis distribution.
func (s *Session) SetJustifyContent(h Handle, v flexbridge.Justify) {
	s.setEnum(h, flexbridge.PropJustifyContent, int32(v))
}

// SetAlignItems sets the default cross-axis alignment of children.
func (s *Session) SetAlignItems(h Handle, v flexbridge.Align) {
	s.setEnum(h, flexbridge.PropAlignItems, int32(v))
}

// SetAlignSelf overrides the parent's AlignItems for this node.
func (s *Session) SetAlignSelf(h Handle, v flexbridge.Align) {
	s.setEnum(h, flexbridge.PropAlignSelf, int32(v))
}

// SetAlignContent sets multi-line cross-axis distribution.
func (s *Session) SetAlignContent(h Handle, v flexbridge.Align) {
	s.setEnum(h, flexbridge.PropAlignContent, int32(v))
}

// SetFlexWrap sets line wrapping.
func (s *Session) SetFlexWrap(h Handle, v flexbridge.Wrap) {
	s.setEnum(h, flexbridge.PropFlexWrap, int32(v))
}

// SetPositionType selects flow or absolute positioning.
func (s *Session) SetPositionType(h Handle, v flexbridge.PositionType) {
	s.setEnum(h, flexbridge.PropPositionType, int32(v))
}

// SetDisplay toggles participation in layout.
func (s *Session) SetDisplay(h Handle, v flexbridge.Display) {
	s.setEnum(h, flexbridge.PropDisplay, int32(v))
}

// SetFlex sets the flex shorthand.
func (s *Session) SetFlex(h Handle, v float32) {
	s.setFloat(h, flexbridge.PropFlex, v)
}

// SetFlexGrow sets the grow factor.
func (s *Session) SetFlexGrow(h Handle, v float32) {
	s.setFloat(h, flexbridge.PropFlexGrow, v)
}

// SetFlexShrink sets the shrink factor.
func (s *Session) SetFlexShrink(h Handle, v float32) {
	s.setFloat(h, flexbridge.PropFlexShrink, v)
}

// SetFlexBasis sets the initial main-axis size.
func (s *Session) SetFlexBasis(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropFlexBasis, v)
}

// SetWidth sets the width dimension.
func (s *Session) SetWidth(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropWidth, v)
}

// SetHeight sets the height dimension.
func (s *Session) SetHeight(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropHeight, v)
}

// SetMinWidth sets the minimum width.
func (s *Session) SetMinWidth(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropMinWidth, v)
}

// SetMinHeight sets the minimum height.
func (s *Session) SetMinHeight(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropMinHeight, v)
}

// SetMaxWidth sets the maximum width.
func (s *Session) SetMaxWidth(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropMaxWidth, v)
}

// SetMaxHeight sets the maximum height.
func (s *Session) SetMaxHeight(h Handle, v flexbridge.Value) {
	s.setDimension(h, flexbridge.PropMaxHeight, v)
}

// SetMargin sets the margin on one edge (or edge group).
func (s *Session) SetMargin(h Handle, edge flexbridge.Edge, v flexbridge.Value) {
	s.setEdge(h, flexbridge.PropMargin, edge, v)
}

// SetPadding sets the padding on one edge (or edge group).
func (s *Session) SetPadding(h Handle, edge flexbridge.Edge, v flexbridge.Value) {
	s.setEdge(h, flexbridge.PropPadding, edge, v)
}

// SetBorder sets the border width on one edge (or edge group).
func (s *Session) SetBorder(h Handle, edge flexbridge.Edge, v flexbridge.Value) {
	s.setEdge(h, flexbridge.PropBorder, edge, v)
}

// SetPosition sets the inset on one edge for positioned nodes.
func (s *Session) SetPosition(h Handle, edge flexbridge.Edge, v flexbridge.Value) {
	s.setEdge(h, flexbridge.PropPosition, edge, v)
}
