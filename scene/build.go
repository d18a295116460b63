package scene

import (
	"strconv"
	"strings"

	flexbridge "github.com/onebit/flexbridge"
	"github.com/onebit/flexbridge/bridge"
	flexerrors "github.com/onebit/flexbridge/errors"
)

// Tree is a built scene: session handles addressable by node id.
type Tree struct {
	Root   bridge.Handle
	Config bridge.Handle
	byID   map[string]bridge.Handle
}

// Handle returns the session handle for a node id.
func (t *Tree) Handle(id string) (bridge.Handle, bool) {
	h, ok := t.byID[id]
	return h, ok
}

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.byID) }

// Free releases the whole tree and its config back to the session.
func (t *Tree) Free(s *bridge.Session) {
	if t.Root != bridge.None {
		s.FreeSubtree(t.Root)
	}
	if t.Config != bridge.None {
		s.FreeConfig(t.Config)
	}
}

// Build materializes the document through a session. Nodes are created
// in document order, so a parent must be declared before its children.
// On error the partially built tree is freed before returning.
func Build(s *bridge.Session, doc *Document) (*Tree, error) {
	if s == nil || doc == nil {
		return nil, flexerrors.InvalidInput(flexerrors.PhaseBuild, "nil session or document")
	}
	if len(doc.Nodes) == 0 {
		return nil, flexerrors.InvalidData(flexerrors.PhaseBuild, nil, "scene has no nodes")
	}

	t := &Tree{
		Root:   bridge.None,
		Config: s.CreateConfig(),
		byID:   make(map[string]bridge.Handle, len(doc.Nodes)),
	}
	if doc.Config.UseWebDefaults {
		s.SetUseWebDefaults(t.Config, true)
	}

	for i := range doc.Nodes {
		spec := &doc.Nodes[i]
		if spec.ID == "" {
			t.Free(s)
			return nil, flexerrors.InvalidData(flexerrors.PhaseBuild, nil, "node without id")
		}
		if _, dup := t.byID[spec.ID]; dup {
			t.Free(s)
			return nil, flexerrors.Duplicate(flexerrors.PhaseBuild, "node", spec.ID)
		}

		var parent bridge.Handle
		if spec.Parent == "" {
			if t.Root != bridge.None {
				t.Free(s)
				return nil, flexerrors.InvalidData(flexerrors.PhaseBuild, []string{spec.ID},
					"second root: only one node may omit parent")
			}
		} else {
			var ok bool
			parent, ok = t.byID[spec.Parent]
			if !ok {
				t.Free(s)
				return nil, flexerrors.NotFound(flexerrors.PhaseBuild, "parent", spec.Parent)
			}
		}

		h := s.CreateNodeWithConfig(t.Config)
		if h == bridge.None {
			t.Free(s)
			return nil, flexerrors.AllocationFailed(flexerrors.PhaseBuild, "node")
		}
		if err := applyStyle(s, h, spec); err != nil {
			s.FreeNode(h)
			t.Free(s)
			return nil, err
		}

		if spec.Parent == "" {
			t.Root = h
		} else {
			s.InsertChild(parent, h, s.ChildCount(parent))
		}
		t.byID[spec.ID] = h
	}

	return t, nil
}

func applyStyle(s *bridge.Session, h bridge.Handle, spec *NodeSpec) error {
	fail := func(field, detail string) error {
		return flexerrors.New(flexerrors.PhaseBuild, flexerrors.KindInvalidData).
			Path(spec.ID, field).
			Detail(detail).
			Build()
	}

	if spec.FlexDirection != "" {
		v, ok := flexDirections[spec.FlexDirection]
		if !ok {
			return fail("flex_direction", "unknown value "+strconv.Quote(spec.FlexDirection))
		}
		s.SetFlexDirection(h, v)
	}
	if spec.JustifyContent != "" {
		v, ok := justifies[spec.JustifyContent]
		if !ok {
			return fail("justify_content", "unknown value "+strconv.Quote(spec.JustifyContent))
		}
		s.SetJustifyContent(h, v)
	}
	if spec.AlignItems != "" {
		v, ok := aligns[spec.AlignItems]
		if !ok {
			return fail("align_items", "unknown value "+strconv.Quote(spec.AlignItems))
		}
		s.SetAlignItems(h, v)
	}
	if spec.AlignSelf != "" {
		v, ok := aligns[spec.AlignSelf]
		if !ok {
			return fail("align_self", "unknown value "+strconv.Quote(spec.AlignSelf))
		}
		s.SetAlignSelf(h, v)
	}
	if spec.AlignContent != "" {
		v, ok := aligns[spec.AlignContent]
		if !ok {
			return fail("align_content", "unknown value "+strconv.Quote(spec.AlignContent))
		}
		s.SetAlignContent(h, v)
	}
	if spec.FlexWrap != "" {
		v, ok := wraps[spec.FlexWrap]
		if !ok {
			return fail("flex_wrap", "unknown value "+strconv.Quote(spec.FlexWrap))
		}
		s.SetFlexWrap(h, v)
	}
	if spec.Position != "" {
		v, ok := positionTypes[spec.Position]
		if !ok {
			return fail("position", "unknown value "+strconv.Quote(spec.Position))
		}
		s.SetPositionType(h, v)
	}
	if spec.Display != "" {
		v, ok := displays[spec.Display]
		if !ok {
			return fail("display", "unknown value "+strconv.Quote(spec.Display))
		}
		s.SetDisplay(h, v)
	}

	if spec.Flex != nil {
		s.SetFlex(h, float32(*spec.Flex))
	}
	if spec.FlexGrow != nil {
		s.SetFlexGrow(h, float32(*spec.FlexGrow))
	}
	if spec.FlexShrink != nil {
		s.SetFlexShrink(h, float32(*spec.FlexShrink))
	}

	dims := []struct {
		field string
		raw   string
		set   func(bridge.Handle, flexbridge.Value)
	}{
		{"flex_basis", spec.FlexBasis, s.SetFlexBasis},
		{"width", spec.Width, s.SetWidth},
		{"height", spec.Height, s.SetHeight},
		{"min_width", spec.MinWidth, s.SetMinWidth},
		{"min_height", spec.MinHeight, s.SetMinHeight},
		{"max_width", spec.MaxWidth, s.SetMaxWidth},
		{"max_height", spec.MaxHeight, s.SetMaxHeight},
	}
	for _, d := range dims {
		if d.raw == "" {
			continue
		}
		v, err := parseValue(d.raw)
		if err != nil {
			return fail(d.field, err.Error())
		}
		d.set(h, v)
	}

	edges := []struct {
		field string
		raw   map[string]string
		set   func(bridge.Handle, flexbridge.Edge, flexbridge.Value)
	}{
		{"margin", spec.Margin, s.SetMargin},
		{"padding", spec.Padding, s.SetPadding},
		{"border", spec.Border, s.SetBorder},
		{"inset", spec.Inset, s.SetPosition},
	}
	for _, e := range edges {
		for name, raw := range e.raw {
			edge, ok := edgeNames[name]
			if !ok {
				return fail(e.field, "unknown edge "+strconv.Quote(name))
			}
			v, err := parseValue(raw)
			if err != nil {
				return fail(e.field+"."+name, err.Error())
			}
			e.set(h, edge, v)
		}
	}

	return nil
}

// parseValue reads "120", "50%", or "auto".
func parseValue(raw string) (flexbridge.Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "auto" {
		return flexbridge.Auto(), nil
	}
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 32)
		if err != nil {
			return flexbridge.Value{}, flexerrors.InvalidData(flexerrors.PhaseBuild, nil,
				"bad percent value "+strconv.Quote(raw))
		}
		return flexbridge.Percent(float32(f)), nil
	}
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return flexbridge.Value{}, flexerrors.InvalidData(flexerrors.PhaseBuild, nil,
			"bad dimension value "+strconv.Quote(raw))
	}
	return flexbridge.Points(float32(f)), nil
}

var flexDirections = map[string]flexbridge.FlexDirection{
	"column":         flexbridge.FlexDirectionColumn,
	"column-reverse": flexbridge.FlexDirectionColumnReverse,
	"row":            flexbridge.FlexDirectionRow,
	"row-reverse":    flexbridge.FlexDirectionRowReverse,
}

var justifies = map[string]flexbridge.Justify{
	"flex-start":    flexbridge.JustifyFlexStart,
	"center":        flexbridge.JustifyCenter,
	"flex-end":      flexbridge.JustifyFlexEnd,
	"space-between": flexbridge.JustifySpaceBetween,
	"space-around":  flexbridge.JustifySpaceAround,
	"space-evenly":  flexbridge.JustifySpaceEvenly,
}

var aligns = map[string]flexbridge.Align{
	"auto":          flexbridge.AlignAuto,
	"flex-start":    flexbridge.AlignFlexStart,
	"center":        flexbridge.AlignCenter,
	"flex-end":      flexbridge.AlignFlexEnd,
	"stretch":       flexbridge.AlignStretch,
	"baseline":      flexbridge.AlignBaseline,
	"space-between": flexbridge.AlignSpaceBetween,
	"space-around":  flexbridge.AlignSpaceAround,
	"space-evenly":  flexbridge.AlignSpaceEvenly,
}

var wraps = map[string]flexbridge.Wrap{
	"no-wrap":      flexbridge.WrapNoWrap,
	"wrap":         flexbridge.WrapWrap,
	"wrap-reverse": flexbridge.WrapWrapReverse,
}

var positionTypes = map[string]flexbridge.PositionType{
	"static":   flexbridge.PositionStatic,
	"relative": flexbridge.PositionRelative,
	"absolute": flexbridge.PositionAbsolute,
}

var displays = map[string]flexbridge.Display{
	"flex": flexbridge.DisplayFlex,
	"none": flexbridge.DisplayNone,
}

var edgeNames = map[string]flexbridge.Edge{
	"left":       flexbridge.EdgeLeft,
	"top":        flexbridge.EdgeTop,
	"right":      flexbridge.EdgeRight,
	"bottom":     flexbridge.EdgeBottom,
	"start":      flexbridge.EdgeStart,
	"end":        flexbridge.EdgeEnd,
	"horizontal": flexbridge.EdgeHorizontal,
	"vertical":   flexbridge.EdgeVertical,
	"all":        flexbridge.EdgeAll,
}
