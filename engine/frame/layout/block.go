package layout

import (
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// contentResult is what a formatting engine reports about the content of a
// box.
type contentResult struct {
	height dimen.Dimen           // auto height of the content box
	carry  frame.MarginCollector // margins adjoining the bottom content edge
	empty  bool                  // no in-flow content which would separate margins
}

// layoutBlock lays out a box which acts as a block container for its
// parent: block-level boxes in flow, and items, cells and inline-blocks
// which have been sized by their container.
func (e *engine) layoutBlock(id boxtree.BoxID, at placement) blockResult {
	b := e.tree.Box(id)
	s := b.Style
	cb := at.cb
	d := &b.Dim
	d.Padding, d.Border = e.paddingAndBorder(b, cb.Width)
	d.Margin = e.edges(s.Margin, cb.Width)
	pb := d.Padding.Horizontal() + d.Border.Horizontal()
	x := at.x
	if at.inFlow() {
		var w dimen.Dimen
		w, d.Margin.Left, d.Margin.Right = e.widthEquation(b, cb.Width, pb)
		d.Content.W = w
		x = cb.X + d.Margin.Left
	} else {
		d.Content.W = dimen.NonNeg(at.width - pb)
	}
	d.Content.X = x + d.Border.Left + d.Padding.Left
	d.Content.Y = at.y + d.Border.Top + d.Padding.Top
	pbv := d.Padding.Vertical() + d.Border.Vertical()
	h, fixed := e.specifiedHeight(b, cb, pbv)
	if at.contents {
		h, fixed = 0, false
	}
	if at.height >= 0 {
		h, fixed = dimen.NonNeg(at.height-pbv), true
	}
	inner := frame.ContainingBlock{
		X:      d.Content.X,
		Y:      d.Content.Y,
		Width:  d.Content.W,
		Height: dimen.Infinity,
	}
	if fixed {
		inner.Height = h
	}
	bfc := e.establishesBFC(id)
	if bfc {
		outer := e.floats
		e.floats = &FloatList{}
		defer func() { e.floats = outer }()
	}
	c := e.layoutContents(id, inner, at)
	if bfc { // floats are contained by their block formatting context
		c.height = dimen.Max(c.height, e.floats.Bottom(inner.Y)-inner.Y)
	}
	if at.contents {
		h = c.height
	} else if !fixed {
		h = e.clampHeight(b, c.height, cb, pbv)
	}
	d.Content.H = dimen.NonNeg(h)
	e.trace.Debugf("%s: %s", e.tree.Name(id), d.BorderBox())
	//
	var res blockResult
	res.bottom.Adjoin(d.Margin.Bottom)
	if b.Formatting() == boxtree.BlockFormatting && !e.establishesBFC(id) {
		res.through = c.empty && pbv == 0 && d.Content.H == 0
		if res.through || e.collapsesBottom(id) {
			res.bottom.Merge(c.carry)
		}
	}
	return res
}

// layoutContents lays out the children of a box according to its inner
// display type.
func (e *engine) layoutContents(id boxtree.BoxID, inner frame.ContainingBlock, at placement) contentResult {
	b := e.tree.Box(id)
	switch f := b.Formatting(); f {
	case boxtree.BlockFormatting:
		return e.layoutBlockChildren(id, inner)
	case boxtree.FlexFormatting:
		return contentResult{height: e.layoutFlex(id, inner)}
	case boxtree.GridFormatting:
		return contentResult{height: e.layoutGrid(id, inner)}
	case boxtree.TableFormatting:
		return contentResult{height: e.layoutTable(id, inner, at)}
	case boxtree.NoFormatting:
		if b.Natural.X > 0 {
			return contentResult{height: dimen.MulDiv(b.Natural.Y, int64(inner.Width), int64(b.Natural.X))}
		}
		return contentResult{height: b.Natural.Y}
	default:
		core.Panic(core.EINTERNAL, "%s cannot host %s formatting", e.tree.Name(id), f)
	}
	return contentResult{}
}

// --- Widths ----------------------------------------------------------------

// widthEquation solves
//
//	margin-left + border + padding + width + padding + border + margin-right
//	    = width of containing block
//
// for block-level boxes in normal flow. It returns the used content width
// and horizontal margins.
func (e *engine) widthEquation(b *boxtree.LayoutBox, cbWidth, pb dimen.Dimen) (w, ml, mr dimen.Dimen) {
	s := b.Style
	mlAuto, mrAuto := s.Margin.Left.IsAuto(), s.Margin.Right.IsAuto()
	ml, mr = e.resolve(s.Margin.Left, cbWidth), e.resolve(s.Margin.Right, cbWidth)
	w, ok := e.specifiedWidth(b, cbWidth, pb)
	if !ok && b.Replaced {
		w, ok = e.clampWidth(b, e.naturalWidth(b), cbWidth, pb), true
	}
	if !ok {
		// auto margins are zero, width takes up the slack
		w = cbWidth - ml - pb - mr
		cw := e.clampWidth(b, w, cbWidth, pb)
		if cw == w && w >= 0 {
			return w, ml, mr
		}
		w = dimen.NonNeg(cw)
	}
	if ml+pb+w+mr > cbWidth { // over-constrained
		if mlAuto {
			ml, mlAuto = 0, false
		}
		if mrAuto {
			mr, mrAuto = 0, false
		}
	}
	rem := cbWidth - ml - pb - w - mr
	switch {
	case mlAuto && mrAuto:
		ml = rem / 2
		mr = rem - ml
	case mlAuto:
		ml = rem
	default:
		mr += rem
	}
	return w, ml, mr
}

// specifiedWidth returns the content width of a box from its style, if the
// width is definite.
func (e *engine) specifiedWidth(b *boxtree.LayoutBox, cbWidth, pb dimen.Dimen) (dimen.Dimen, bool) {
	w, ok := e.definite(b.Style.Width, cbWidth)
	if !ok {
		return 0, false
	}
	if b.Style.BoxSizing == css.BorderBox {
		w -= pb
	}
	return e.clampWidth(b, dimen.NonNeg(w), cbWidth, pb), true
}

// clampWidth applies max-width and min-width to a content width. Min-width
// wins over max-width.
func (e *engine) clampWidth(b *boxtree.LayoutBox, w, cbWidth, pb dimen.Dimen) dimen.Dimen {
	s := b.Style
	if mx, ok := e.definite(s.MaxWidth, cbWidth); ok {
		if s.BoxSizing == css.BorderBox {
			mx -= pb
		}
		w = dimen.Min(w, dimen.NonNeg(mx))
	}
	if mn, ok := e.definite(s.MinWidth, cbWidth); ok {
		if s.BoxSizing == css.BorderBox {
			mn -= pb
		}
		w = dimen.Max(w, dimen.NonNeg(mn))
	}
	return w
}

// naturalWidth is the width of a replaced element, keeping its aspect ratio
// if a height is given.
func (e *engine) naturalWidth(b *boxtree.LayoutBox) dimen.Dimen {
	if h, ok := e.definite(b.Style.Height, dimen.Infinity); ok && b.Natural.Y > 0 {
		return dimen.MulDiv(b.Natural.X, int64(h), int64(b.Natural.Y))
	}
	return b.Natural.X
}

// contentWidth is the content width a block-level box in flow will get.
func (e *engine) contentWidth(id boxtree.BoxID, cbWidth dimen.Dimen) dimen.Dimen {
	b := e.tree.Box(id)
	pad, border := e.paddingAndBorder(b, cbWidth)
	w, _, _ := e.widthEquation(b, cbWidth, pad.Horizontal()+border.Horizontal())
	return w
}

// --- Heights ---------------------------------------------------------------

// specifiedHeight returns the content height of a box from its style, if
// the height is definite. Percentages of an indefinite height behave as auto.
func (e *engine) specifiedHeight(b *boxtree.LayoutBox, cb frame.ContainingBlock, pbv dimen.Dimen) (dimen.Dimen, bool) {
	h, ok := e.definite(b.Style.Height, cb.Height)
	if !ok {
		return 0, false
	}
	if b.Style.BoxSizing == css.BorderBox {
		h -= pbv
	}
	return e.clampHeight(b, dimen.NonNeg(h), cb, pbv), true
}

func (e *engine) clampHeight(b *boxtree.LayoutBox, h dimen.Dimen, cb frame.ContainingBlock, pbv dimen.Dimen) dimen.Dimen {
	s := b.Style
	if mx, ok := e.definite(s.MaxHeight, cb.Height); ok {
		if s.BoxSizing == css.BorderBox {
			mx -= pbv
		}
		h = dimen.Min(h, dimen.NonNeg(mx))
	}
	if mn, ok := e.definite(s.MinHeight, cb.Height); ok {
		if s.BoxSizing == css.BorderBox {
			mn -= pbv
		}
		h = dimen.Max(h, dimen.NonNeg(mn))
	}
	return h
}

// --- Block formatting context ----------------------------------------------

// layoutBlockChildren stacks the children of a block container vertically,
// collapsing adjoining vertical margins.
//
// “In a block formatting context, boxes are laid out one after the other,
// vertically, beginning at the top of a containing block. The vertical
// distance between two sibling boxes is determined by the 'margin'
// properties. Vertical margins between adjacent block-level boxes in a block
// formatting context collapse.”
func (e *engine) layoutBlockChildren(id boxtree.BoxID, cb frame.ContainingBlock) contentResult {
	b := e.tree.Box(id)
	cursor := cb.Y
	var pending frame.MarginCollector
	atTop := e.collapsesTop(id) // leading margins are already part of ours
	empty := true
	for _, ch := range b.Children {
		c := e.tree.Box(ch)
		if c.OutOfFlow {
			e.static[ch] = dimen.Point{X: cb.X, Y: cursor + pending.Resolve()}
			continue
		}
		if c.Floating {
			e.placeFloat(ch, cb, cursor+pending.Resolve())
			continue
		}
		if c.IsInlineFormattingRoot() {
			y := cursor + pending.Resolve()
			pending.Reset()
			e.layout(ch, flow(cb, y))
			cursor = y + c.Dim.Content.H
			if len(c.Lines) > 0 {
				empty = false
			}
			atTop = false
			continue
		}
		if atTop {
			res := e.layout(ch, flow(cb, e.floats.Clear(c.Style.Clear, cursor)))
			if e.collapsesThrough(ch, cb.Width) {
				continue
			}
			atTop = false
			if res.through {
				pending.Merge(res.bottom)
				continue
			}
			empty = false
			cursor = c.Dim.BorderBox().Bottom()
			pending = res.bottom
			continue
		}
		pending.Merge(e.topMargins(ch, cb.Width))
		y := e.floats.Clear(c.Style.Clear, cursor+pending.Resolve())
		res := e.layout(ch, flow(cb, y))
		if res.through {
			pending.Merge(res.bottom)
			continue
		}
		empty = false
		cursor = c.Dim.BorderBox().Bottom()
		pending = res.bottom
	}
	r := contentResult{empty: empty}
	if e.collapsesBottom(id) {
		r.carry = pending
		r.height = cursor - cb.Y
	} else {
		r.height = cursor + pending.Resolve() - cb.Y
	}
	r.height = dimen.NonNeg(r.height)
	return r
}

// topMargins collects the top margin of a block-level box together with
// the margins of descendants it adjoins: all margins of leading children
// which collapse through, and the top margins of the first child which
// does not.
func (e *engine) topMargins(id boxtree.BoxID, cbWidth dimen.Dimen) frame.MarginCollector {
	b := e.tree.Box(id)
	var mc frame.MarginCollector
	mc.Adjoin(e.resolve(b.Style.Margin.Top, cbWidth))
	if b.Formatting() != boxtree.BlockFormatting || e.establishesBFC(id) {
		return mc
	}
	pad, border := e.paddingAndBorder(b, cbWidth)
	if pad.Top+border.Top > 0 {
		return mc
	}
	w := e.contentWidth(id, cbWidth)
	for _, k := range e.inFlowChildren(id) {
		if !e.tree.Box(k).IsBlockLevel() {
			break
		}
		if e.collapsesThrough(k, w) {
			mc.Merge(e.throughMargins(k, w))
			continue
		}
		mc.Merge(e.topMargins(k, w))
		break
	}
	return mc
}

// collapsesThrough is true if the top and bottom margins of a block-level
// box in flow will adjoin: it has no height, no vertical padding or border,
// and all of its in-flow children collapse through as well. An inline
// formatting context always counts as content.
func (e *engine) collapsesThrough(id boxtree.BoxID, cbWidth dimen.Dimen) bool {
	b := e.tree.Box(id)
	if !b.IsBlockLevel() || b.Formatting() != boxtree.BlockFormatting || e.establishesBFC(id) {
		return false
	}
	s := b.Style
	if pad, border := e.paddingAndBorder(b, cbWidth); pad.Vertical()+border.Vertical() > 0 {
		return false
	}
	if !s.Height.IsAuto() {
		if h, ok := e.definite(s.Height, dimen.Infinity); !ok || h > 0 {
			return false
		}
	}
	if mn, ok := e.definite(s.MinHeight, dimen.Infinity); ok && mn > 0 {
		return false
	}
	w := e.contentWidth(id, cbWidth)
	for _, k := range e.inFlowChildren(id) {
		if !e.collapsesThrough(k, w) {
			return false
		}
	}
	return true
}

// throughMargins collects all margins of a box which collapses through,
// including those of its children.
func (e *engine) throughMargins(id boxtree.BoxID, cbWidth dimen.Dimen) frame.MarginCollector {
	b := e.tree.Box(id)
	var mc frame.MarginCollector
	mc.Adjoin(e.resolve(b.Style.Margin.Top, cbWidth))
	mc.Adjoin(e.resolve(b.Style.Margin.Bottom, cbWidth))
	w := e.contentWidth(id, cbWidth)
	for _, k := range e.inFlowChildren(id) {
		mc.Merge(e.throughMargins(k, w))
	}
	return mc
}

// collapsesTop is true if the top margin of a laid out box adjoins the top
// margin of its first in-flow child.
func (e *engine) collapsesTop(id boxtree.BoxID) bool {
	b := e.tree.Box(id)
	if b.Formatting() != boxtree.BlockFormatting || e.establishesBFC(id) {
		return false
	}
	if b.Dim.Padding.Top+b.Dim.Border.Top > 0 {
		return false
	}
	kids := e.inFlowChildren(id)
	return len(kids) > 0 && e.tree.Box(kids[0]).IsBlockLevel()
}

// collapsesBottom is true if the bottom margin of a box adjoins the bottom
// margin of its last in-flow child.
func (e *engine) collapsesBottom(id boxtree.BoxID) bool {
	b := e.tree.Box(id)
	if b.Formatting() != boxtree.BlockFormatting || e.establishesBFC(id) {
		return false
	}
	if b.Dim.Padding.Bottom+b.Dim.Border.Bottom > 0 || !b.Style.Height.IsAuto() {
		return false
	}
	kids := e.inFlowChildren(id)
	return len(kids) > 0 && e.tree.Box(kids[len(kids)-1]).IsBlockLevel()
}
