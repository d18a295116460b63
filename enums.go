package flexbridge

// Enum values mirror the foreign library's C enums so they can cross the
// boundary as plain integers.

// Direction is the layout direction of a tree.
type Direction int32

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection sets the main axis of a container.
type FlexDirection int32

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// Justify distributes children along the main axis.
type Justify int32

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align positions children on the cross axis.
type Align int32

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

// Wrap controls line wrapping of a container.
type Wrap int32

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

// PositionType selects normal flow or absolute positioning.
type PositionType int32

const (
	PositionStatic PositionType = iota
	PositionRelative
	PositionAbsolute
)

// Display toggles participation in layout.
type Display int32

const (
	DisplayFlex Display = iota
	DisplayNone
)

// Edge names one side (or side group) for per-edge properties.
type Edge int32

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll
)

// EnumProp keys the enum-valued style setters.
type EnumProp uint8

const (
	PropFlexDirection EnumProp = iota
	PropJustifyContent
	PropAlignItems
	PropAlignSelf
	PropAlignContent
	PropFlexWrap
	PropPositionType
	PropDisplay
)

// FloatProp keys the scalar style setters.
type FloatProp uint8

const (
	PropFlex FloatProp = iota
	PropFlexGrow
	PropFlexShrink
)

// DimensionProp keys the dimension style setters.
type DimensionProp uint8

const (
	PropWidth DimensionProp = iota
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropFlexBasis
)

// EdgeProp keys the per-edge style setters.
type EdgeProp uint8

const (
	PropMargin EdgeProp = iota
	PropPadding
	PropBorder
	PropPosition
)
