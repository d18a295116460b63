package flex

import (
	"math"

	flexbridge "github.com/onebit/flexbridge"
)

// The layout pass is a deliberately small flexbox: single line (no
// wrapping), no baseline alignment, no auto margins. Margins, padding,
// borders, percent units, grow/shrink distribution, justify/align and
// absolute positioning behave the way the full algorithm does for the
// tree shapes a terminal UI produces.

func undef(v float32) bool { return math.IsNaN(float64(v)) }

func nan() float32 { return float32(math.NaN()) }

// resolve turns a style Value into points against a basis. Auto and
// undefined both come back as NaN; callers decide what auto means.
func resolve(v flexbridge.Value, basis float32) float32 {
	switch v.Unit {
	case flexbridge.UnitPoint:
		return v.Value
	case flexbridge.UnitPercent:
		if undef(basis) {
			return nan()
		}
		return basis * v.Value / 100
	default:
		return nan()
	}
}

func clamp(v, lo, hi float32) float32 {
	if !undef(hi) && v > hi {
		v = hi
	}
	if !undef(lo) && v < lo {
		v = lo
	}
	return v
}

// edgeVal resolves a per-edge property for one concrete side, falling
// back through start/end, horizontal/vertical and all. Unset edges are 0.
func edgeVal(vals *[9]flexbridge.Value, e flexbridge.Edge, dir flexbridge.Direction, basis float32) float32 {
	set := func(v flexbridge.Value) bool { return v.Unit != flexbridge.UnitUndefined }

	if set(vals[e]) {
		if r := resolve(vals[e], basis); !undef(r) {
			return r
		}
	}
	if e == flexbridge.EdgeLeft || e == flexbridge.EdgeRight {
		start := flexbridge.EdgeLeft
		if dir == flexbridge.DirectionRTL {
			start = flexbridge.EdgeRight
		}
		logical := flexbridge.EdgeStart
		if e != start {
			logical = flexbridge.EdgeEnd
		}
		if set(vals[logical]) {
			if r := resolve(vals[logical], basis); !undef(r) {
				return r
			}
		}
		if set(vals[flexbridge.EdgeHorizontal]) {
			if r := resolve(vals[flexbridge.EdgeHorizontal], basis); !undef(r) {
				return r
			}
		}
	}
	if e == flexbridge.EdgeTop || e == flexbridge.EdgeBottom {
		if set(vals[flexbridge.EdgeVertical]) {
			if r := resolve(vals[flexbridge.EdgeVertical], basis); !undef(r) {
				return r
			}
		}
	}
	if set(vals[flexbridge.EdgeAll]) {
		if r := resolve(vals[flexbridge.EdgeAll], basis); !undef(r) {
			return r
		}
	}
	return 0
}

// calculate lays out the subtree rooted at root inside the available
// space. An undefined available dimension leaves the corresponding root
// dimension to its style, defaulting to 0.
func calculate(root *node, availW, availH float32, dir flexbridge.Direction) {
	w := resolve(root.style.width, availW)
	if undef(w) {
		w = availW
	}
	if undef(w) {
		w = 0
	}
	w = clamp(w, resolve(root.style.minWidth, availW), resolve(root.style.maxWidth, availW))

	h := resolve(root.style.height, availH)
	if undef(h) {
		h = availH
	}
	if undef(h) {
		h = 0
	}
	h = clamp(h, resolve(root.style.minHeight, availH), resolve(root.style.maxHeight, availH))

	root.layout = flexbridge.Rect{Width: w, Height: h}
	layoutChildren(root, dir)
}

type lineItem struct {
	n           *node
	main        float32 // flexed main-axis size
	basis       float32
	rel         float32 // offset from the main start, margins included
	leadMargin  float32
	trailMargin float32
}

func layoutChildren(n *node, dir flexbridge.Direction) {
	w, h := n.layout.Width, n.layout.Height

	inset := func(e flexbridge.Edge, basis float32) float32 {
		return edgeVal(&n.style.padding, e, dir, basis) + edgeVal(&n.style.border, e, dir, basis)
	}
	padL := inset(flexbridge.EdgeLeft, w)
	padR := inset(flexbridge.EdgeRight, w)
	padT := inset(flexbridge.EdgeTop, h)
	padB := inset(flexbridge.EdgeBottom, h)

	innerW := w - padL - padR
	innerH := h - padT - padB

	row := n.style.flexDirection == flexbridge.FlexDirectionRow ||
		n.style.flexDirection == flexbridge.FlexDirectionRowReverse
	reverse := n.style.flexDirection == flexbridge.FlexDirectionRowReverse ||
		n.style.flexDirection == flexbridge.FlexDirectionColumnReverse

	innerMain, innerCross := innerW, innerH
	if !row {
		innerMain, innerCross = innerH, innerW
	}

	var flow []*node
	var absolute []*node
	for _, c := range n.children {
		switch {
		case c.style.display == flexbridge.DisplayNone:
			c.layout = flexbridge.Rect{}
		case c.style.positionType == flexbridge.PositionAbsolute:
			absolute = append(absolute, c)
		default:
			flow = append(flow, c)
		}
	}

	mainLead := func(c *node) float32 {
		if row {
			return edgeVal(&c.style.margin, flexbridge.EdgeLeft, dir, innerW)
		}
		return edgeVal(&c.style.margin, flexbridge.EdgeTop, dir, innerH)
	}
	mainTrail := func(c *node) float32 {
		if row {
			return edgeVal(&c.style.margin, flexbridge.EdgeRight, dir, innerW)
		}
		return edgeVal(&c.style.margin, flexbridge.EdgeBottom, dir, innerH)
	}

	// Pass 1: flex basis per child.
	items := make([]lineItem, 0, len(flow))
	var totalOuter, totalGrow, totalShrinkScaled float32
	for _, c := range flow {
		mainDim := c.style.height
		minMain, maxMain := c.style.minHeight, c.style.maxHeight
		if row {
			mainDim = c.style.width
			minMain, maxMain = c.style.minWidth, c.style.maxWidth
		}
		basis := resolve(c.style.flexBasis, innerMain)
		if undef(basis) {
			basis = resolve(mainDim, innerMain)
		}
		if undef(basis) {
			basis = 0
		}
		basis = clamp(basis, resolve(minMain, innerMain), resolve(maxMain, innerMain))

		it := lineItem{
			n:           c,
			main:        basis,
			basis:       basis,
			leadMargin:  mainLead(c),
			trailMargin: mainTrail(c),
		}
		items = append(items, it)
		totalOuter += basis + it.leadMargin + it.trailMargin
		totalGrow += c.style.flexGrow
		totalShrinkScaled += c.style.flexShrink * basis
	}

	// Pass 2: distribute free space.
	remaining := innerMain - totalOuter
	switch {
	case remaining > 0 && totalGrow > 0:
		for i := range items {
			items[i].main += remaining * items[i].n.style.flexGrow / totalGrow
		}
		remaining = 0
	case remaining < 0 && totalShrinkScaled > 0:
		for i := range items {
			c := items[i].n
			items[i].main += remaining * c.style.flexShrink * items[i].basis / totalShrinkScaled
			if items[i].main < 0 {
				items[i].main = 0
			}
		}
		remaining = 0
	}
	if remaining < 0 {
		remaining = 0
	}

	// Pass 3: main-axis placement.
	lead, between := justifySpacing(n.style.justify, remaining, len(items))
	cursor := lead
	for i := range items {
		cursor += items[i].leadMargin
		items[i].rel = cursor
		cursor += items[i].main + items[i].trailMargin + between
	}

	// Pass 4: cross sizing, cross placement, recursion.
	for i := range items {
		c := items[i].n

		crossDim := c.style.width
		minCross, maxCross := c.style.minWidth, c.style.maxWidth
		crossLeadEdge, crossTrailEdge := flexbridge.EdgeLeft, flexbridge.EdgeRight
		if row {
			crossDim = c.style.height
			minCross, maxCross = c.style.minHeight, c.style.maxHeight
			crossLeadEdge, crossTrailEdge = flexbridge.EdgeTop, flexbridge.EdgeBottom
		}
		crossLead := edgeVal(&c.style.margin, crossLeadEdge, dir, innerCross)
		crossTrail := edgeVal(&c.style.margin, crossTrailEdge, dir, innerCross)

		align := c.style.alignSelf
		if align == flexbridge.AlignAuto {
			align = n.style.alignItems
		}

		cross := resolve(crossDim, innerCross)
		if undef(cross) {
			if align == flexbridge.AlignStretch {
				cross = innerCross - crossLead - crossTrail
			} else {
				cross = 0
			}
		}
		cross = clamp(cross, resolve(minCross, innerCross), resolve(maxCross, innerCross))
		if cross < 0 {
			cross = 0
		}

		var crossPos float32
		switch align {
		case flexbridge.AlignCenter:
			crossPos = (innerCross - cross - crossLead - crossTrail) / 2
		case flexbridge.AlignFlexEnd:
			crossPos = innerCross - cross - crossTrail - crossLead
		default:
			crossPos = 0
		}
		crossPos += crossLead

		mainPos := items[i].rel
		if reverse {
			mainPos = innerMain - items[i].rel - items[i].main
		}

		if row {
			c.layout = flexbridge.Rect{
				Left:   padL + mainPos,
				Top:    padT + crossPos,
				Width:  items[i].main,
				Height: cross,
			}
		} else {
			c.layout = flexbridge.Rect{
				Left:   padL + crossPos,
				Top:    padT + mainPos,
				Width:  cross,
				Height: items[i].main,
			}
		}
		applyRelativeOffsets(c, dir, innerW, innerH)
		layoutChildren(c, dir)
	}

	// Pass 5: absolutely positioned children, against the border box.
	for _, c := range absolute {
		layoutAbsolute(n, c, dir)
		layoutChildren(c, dir)
	}
}

func justifySpacing(j flexbridge.Justify, free float32, count int) (lead, between float32) {
	if count == 0 || free <= 0 {
		return 0, 0
	}
	switch j {
	case flexbridge.JustifyCenter:
		return free / 2, 0
	case flexbridge.JustifyFlexEnd:
		return free, 0
	case flexbridge.JustifySpaceBetween:
		if count > 1 {
			return 0, free / float32(count-1)
		}
		return 0, 0
	case flexbridge.JustifySpaceAround:
		unit := free / float32(count)
		return unit / 2, unit
	case flexbridge.JustifySpaceEvenly:
		unit := free / float32(count+1)
		return unit, unit
	default:
		return 0, 0
	}
}

func applyRelativeOffsets(c *node, dir flexbridge.Direction, basisW, basisH float32) {
	if c.style.positionType != flexbridge.PositionRelative {
		return
	}
	set := func(e flexbridge.Edge) bool { return c.style.position[e].Unit != flexbridge.UnitUndefined }
	if set(flexbridge.EdgeLeft) {
		c.layout.Left += edgeVal(&c.style.position, flexbridge.EdgeLeft, dir, basisW)
	} else if set(flexbridge.EdgeRight) {
		c.layout.Left -= edgeVal(&c.style.position, flexbridge.EdgeRight, dir, basisW)
	}
	if set(flexbridge.EdgeTop) {
		c.layout.Top += edgeVal(&c.style.position, flexbridge.EdgeTop, dir, basisH)
	} else if set(flexbridge.EdgeBottom) {
		c.layout.Top -= edgeVal(&c.style.position, flexbridge.EdgeBottom, dir, basisH)
	}
}

func layoutAbsolute(parent, c *node, dir flexbridge.Direction) {
	pw, ph := parent.layout.Width, parent.layout.Height
	set := func(e flexbridge.Edge) bool { return c.style.position[e].Unit != flexbridge.UnitUndefined }

	left := edgeVal(&c.style.position, flexbridge.EdgeLeft, dir, pw)
	right := edgeVal(&c.style.position, flexbridge.EdgeRight, dir, pw)
	top := edgeVal(&c.style.position, flexbridge.EdgeTop, dir, ph)
	bottom := edgeVal(&c.style.position, flexbridge.EdgeBottom, dir, ph)

	cw := resolve(c.style.width, pw)
	if undef(cw) {
		if set(flexbridge.EdgeLeft) && set(flexbridge.EdgeRight) {
			cw = pw - left - right
		} else {
			cw = 0
		}
	}
	cw = clamp(cw, resolve(c.style.minWidth, pw), resolve(c.style.maxWidth, pw))

	ch := resolve(c.style.height, ph)
	if undef(ch) {
		if set(flexbridge.EdgeTop) && set(flexbridge.EdgeBottom) {
			ch = ph - top - bottom
		} else {
			ch = 0
		}
	}
	ch = clamp(ch, resolve(c.style.minHeight, ph), resolve(c.style.maxHeight, ph))

	var x, y float32
	switch {
	case set(flexbridge.EdgeLeft):
		x = left
	case set(flexbridge.EdgeRight):
		x = pw - right - cw
	}
	switch {
	case set(flexbridge.EdgeTop):
		y = top
	case set(flexbridge.EdgeBottom):
		y = ph - bottom - ch
	}

	c.layout = flexbridge.Rect{Left: x, Top: y, Width: cw, Height: ch}
}
