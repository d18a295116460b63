package engine

// Export names of the guest layout ABI. The guest is a Yoga-flavored C
// library compiled to wasm, so the names follow its convention.
const (
	expConfigNew            = "YGConfigNew"
	expConfigFree           = "YGConfigFree"
	expConfigSetWebDefaults = "YGConfigSetUseWebDefaults"

	expNodeNew           = "YGNodeNew"
	expNodeNewWithConfig = "YGNodeNewWithConfig"
	expNodeFree          = "YGNodeFree"
	expNodeFreeRecursive = "YGNodeFreeRecursive"

	expInsertChild   = "YGNodeInsertChild"
	expRemoveChild   = "YGNodeRemoveChild"
	expGetChildCount = "YGNodeGetChildCount"
	expGetChild      = "YGNodeGetChild"

	expCalculateLayout = "YGNodeCalculateLayout"
	expLayoutLeft      = "YGNodeLayoutGetLeft"
	expLayoutTop       = "YGNodeLayoutGetTop"
	expLayoutWidth     = "YGNodeLayoutGetWidth"
	expLayoutHeight    = "YGNodeLayoutGetHeight"

	expSetFlexDirection = "YGNodeStyleSetFlexDirection"
	expSetJustify       = "YGNodeStyleSetJustifyContent"
	expSetAlignItems    = "YGNodeStyleSetAlignItems"
	expSetAlignSelf     = "YGNodeStyleSetAlignSelf"
	expSetAlignContent  = "YGNodeStyleSetAlignContent"
	expSetFlexWrap      = "YGNodeStyleSetFlexWrap"
	expSetPositionType  = "YGNodeStyleSetPositionType"
	expSetDisplay       = "YGNodeStyleSetDisplay"

	expSetFlex       = "YGNodeStyleSetFlex"
	expSetFlexGrow   = "YGNodeStyleSetFlexGrow"
	expSetFlexShrink = "YGNodeStyleSetFlexShrink"

	expSetWidth            = "YGNodeStyleSetWidth"
	expSetWidthPercent     = "YGNodeStyleSetWidthPercent"
	expSetWidthAuto        = "YGNodeStyleSetWidthAuto"
	expSetHeight           = "YGNodeStyleSetHeight"
	expSetHeightPercent    = "YGNodeStyleSetHeightPercent"
	expSetHeightAuto       = "YGNodeStyleSetHeightAuto"
	expSetMinWidth         = "YGNodeStyleSetMinWidth"
	expSetMinWidthPercent  = "YGNodeStyleSetMinWidthPercent"
	expSetMinHeight        = "YGNodeStyleSetMinHeight"
	expSetMinHeightPercent = "YGNodeStyleSetMinHeightPercent"
	expSetMaxWidth         = "YGNodeStyleSetMaxWidth"
	expSetMaxWidthPercent  = "YGNodeStyleSetMaxWidthPercent"
	expSetMaxHeight        = "YGNodeStyleSetMaxHeight"
	expSetMaxHeightPercent = "YGNodeStyleSetMaxHeightPercent"
	expSetFlexBasis        = "YGNodeStyleSetFlexBasis"
	expSetFlexBasisPercent = "YGNodeStyleSetFlexBasisPercent"
	expSetFlexBasisAuto    = "YGNodeStyleSetFlexBasisAuto"

	expSetMargin          = "YGNodeStyleSetMargin"
	expSetMarginPercent   = "YGNodeStyleSetMarginPercent"
	expSetMarginAuto      = "YGNodeStyleSetMarginAuto"
	expSetPadding         = "YGNodeStyleSetPadding"
	expSetPaddingPercent  = "YGNodeStyleSetPaddingPercent"
	expSetBorder          = "YGNodeStyleSetBorder"
	expSetPosition        = "YGNodeStyleSetPosition"
	expSetPositionPercent = "YGNodeStyleSetPositionPercent"
)
