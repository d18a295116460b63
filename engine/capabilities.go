package engine

import (
	"github.com/tetratelabs/wazero/api"

	flexbridge "github.com/onebit/flexbridge"
	flexerrors "github.com/onebit/flexbridge/errors"
)

// dimFuncs holds the unit variants of a dimension setter. point is
// required; percent and auto are optional capabilities.
type dimFuncs struct {
	point   api.Function
	percent api.Function
	auto    api.Function
}

// capabilities is the resolved export table. Populated once at
// construction so calls never probe by name.
type capabilities struct {
	configNew            api.Function
	configFree           api.Function
	configSetWebDefaults api.Function // optional

	nodeNew           api.Function
	nodeNewWithConfig api.Function // optional, falls back to nodeNew
	nodeFree          api.Function
	nodeFreeRecursive api.Function

	insertChild api.Function
	removeChild api.Function
	childCount  api.Function
	getChild    api.Function

	calculateLayout api.Function
	layoutLeft      api.Function
	layoutTop       api.Function
	layoutWidth     api.Function
	layoutHeight    api.Function

	enums  map[flexbridge.EnumProp]api.Function
	floats map[flexbridge.FloatProp]api.Function
	dims   map[flexbridge.DimensionProp]dimFuncs
	edges  map[flexbridge.EdgeProp]dimFuncs
}

type resolver struct {
	mod     api.Module
	missing []string
}

func (r *resolver) require(name string) api.Function {
	fn := r.mod.ExportedFunction(name)
	if fn == nil {
		r.missing = append(r.missing, name)
	}
	return fn
}

func (r *resolver) optional(name string) api.Function {
	return r.mod.ExportedFunction(name)
}

func resolveCapabilities(mod api.Module) (capabilities, error) {
	r := &resolver{mod: mod}

	caps := capabilities{
		configNew:            r.require(expConfigNew),
		configFree:           r.require(expConfigFree),
		configSetWebDefaults: r.optional(expConfigSetWebDefaults),

		nodeNew:           r.require(expNodeNew),
		nodeNewWithConfig: r.optional(expNodeNewWithConfig),
		nodeFree:          r.require(expNodeFree),
		nodeFreeRecursive: r.require(expNodeFreeRecursive),

		insertChild: r.require(expInsertChild),
		removeChild: r.require(expRemoveChild),
		childCount:  r.require(expGetChildCount),
		getChild:    r.require(expGetChild),

		calculateLayout: r.require(expCalculateLayout),
		layoutLeft:      r.require(expLayoutLeft),
		layoutTop:       r.require(expLayoutTop),
		layoutWidth:     r.require(expLayoutWidth),
		layoutHeight:    r.require(expLayoutHeight),
	}

	caps.enums = map[flexbridge.EnumProp]api.Function{
		flexbridge.PropFlexDirection:  r.require(expSetFlexDirection),
		flexbridge.PropJustifyContent: r.require(expSetJustify),
		flexbridge.PropAlignItems:     r.require(expSetAlignItems),
		flexbridge.PropAlignSelf:      r.require(expSetAlignSelf),
		flexbridge.PropAlignContent:   r.require(expSetAlignContent),
		flexbridge.PropFlexWrap:       r.require(expSetFlexWrap),
		flexbridge.PropPositionType:   r.require(expSetPositionType),
		flexbridge.PropDisplay:        r.require(expSetDisplay),
	}

	caps.floats = map[flexbridge.FloatProp]api.Function{
		flexbridge.PropFlex:       r.require(expSetFlex),
		flexbridge.PropFlexGrow:   r.require(expSetFlexGrow),
		flexbridge.PropFlexShrink: r.require(expSetFlexShrink),
	}

	caps.dims = map[flexbridge.DimensionProp]dimFuncs{
		flexbridge.PropWidth: {
			point:   r.require(expSetWidth),
			percent: r.optional(expSetWidthPercent),
			auto:    r.optional(expSetWidthAuto),
		},
		flexbridge.PropHeight: {
			point:   r.require(expSetHeight),
			percent: r.optional(expSetHeightPercent),
			auto:    r.optional(expSetHeightAuto),
		},
		flexbridge.PropMinWidth: {
			point:   r.require(expSetMinWidth),
			percent: r.optional(expSetMinWidthPercent),
		},
		flexbridge.PropMinHeight: {
			point:   r.require(expSetMinHeight),
			percent: r.optional(expSetMinHeightPercent),
		},
		flexbridge.PropMaxWidth: {
			point:   r.require(expSetMaxWidth),
			percent: r.optional(expSetMaxWidthPercent),
		},
		flexbridge.PropMaxHeight: {
			point:   r.require(expSetMaxHeight),
			percent: r.optional(expSetMaxHeightPercent),
		},
		flexbridge.PropFlexBasis: {
			point:   r.require(expSetFlexBasis),
			percent: r.optional(expSetFlexBasisPercent),
			auto:    r.optional(expSetFlexBasisAuto),
		},
	}

	caps.edges = map[flexbridge.EdgeProp]dimFuncs{
		flexbridge.PropMargin: {
			point:   r.require(expSetMargin),
			percent: r.optional(expSetMarginPercent),
			auto:    r.optional(expSetMarginAuto),
		},
		flexbridge.PropPadding: {
			point:   r.require(expSetPadding),
			percent: r.optional(expSetPaddingPercent),
		},
		flexbridge.PropBorder: {
			point: r.require(expSetBorder),
		},
		flexbridge.PropPosition: {
			point:   r.require(expSetPosition),
			percent: r.optional(expSetPositionPercent),
		},
	}

	if len(r.missing) > 0 {
		return capabilities{}, flexerrors.NewMissingExportsError(r.missing)
	}
	return caps, nil
}
