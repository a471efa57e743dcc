package layout

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// positionOutOfFlow lays out absolutely and fixed positioned boxes, after
// normal flow is done. Boxes are visited in tree order, so the containing
// block of a box is final before the box is laid out.
//
// The containing block of an absolutely positioned box is the padding box of
// its nearest positioned ancestor; for fixed positioned boxes it is the
// viewport.
func (e *engine) positionOutOfFlow(root boxtree.BoxID, icb frame.ContainingBlock) {
	abs := icb
	if r := e.tree.Box(root); r.Style.Position != css.PositionStatic {
		abs = paddingBox(r)
	}
	e.positionWithin(root, abs, icb)
}

func (e *engine) positionWithin(id boxtree.BoxID, abs, icb frame.ContainingBlock) {
	b := e.tree.Box(id)
	for _, ch := range b.Children {
		c := e.tree.Box(ch)
		if c.OutOfFlow {
			if _, ok := e.static[ch]; !ok {
				e.static[ch] = dimen.Point{X: b.Dim.Content.X, Y: b.Dim.Content.Y}
			}
			if c.Style.Position == css.PositionFixed {
				e.layoutAbsolute(ch, icb)
			} else {
				e.layoutAbsolute(ch, abs)
			}
		}
		next := abs
		if c.Style.Position != css.PositionStatic {
			next = paddingBox(c)
		}
		e.positionWithin(ch, next, icb)
	}
}

func paddingBox(b *boxtree.LayoutBox) frame.ContainingBlock {
	r := b.Dim.PaddingBox()
	return frame.ContainingBlock{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// layoutAbsolute sizes and positions an out-of-flow box within its
// containing block. Insets which are auto leave the box at its static
// position; a box with auto width and insets on both sides fills the space
// between them, otherwise it shrinks to fit its content.
func (e *engine) layoutAbsolute(id boxtree.BoxID, cb frame.ContainingBlock) {
	b := e.tree.Box(id)
	s := b.Style
	pad, border := e.paddingAndBorder(b, cb.Width)
	pb := pad.Horizontal() + border.Horizontal()
	m := e.edges(s.Margin, cb.Width)
	left, lok := e.definite(s.Inset.Left, cb.Width)
	right, rok := e.definite(s.Inset.Right, cb.Width)
	top, tok := e.definite(s.Inset.Top, cb.Height)
	bottom, bok := e.definite(s.Inset.Bottom, cb.Height)
	static := e.static[id]
	//
	var bw dimen.Dimen
	if w, ok := e.specifiedWidth(b, cb.Width, pb); ok {
		bw = w + pb
	} else if b.Replaced {
		bw = e.clampWidth(b, e.naturalWidth(b), cb.Width, pb) + pb
	} else if lok && rok {
		w := dimen.NonNeg(cb.Width - left - right - m.Left - m.Right - pb)
		bw = e.clampWidth(b, w, cb.Width, pb) + pb
	} else {
		avail := cb.Width - m.Left - m.Right
		if lok {
			avail -= left
		}
		if rok {
			avail -= right
		}
		bw = e.shrinkToFit(id, avail)
	}
	var x dimen.Dimen
	switch {
	case lok:
		x = cb.X + left + m.Left
	case rok:
		x = cb.X + cb.Width - right - m.Right - bw
	default:
		x = static.X + m.Left
	}
	h := dimen.Dimen(-1)
	if _, ok := e.definite(s.Height, cb.Height); !ok && tok && bok {
		h = dimen.NonNeg(cb.Height - top - bottom - m.Top - m.Bottom)
	}
	y := static.Y + m.Top
	if tok {
		y = cb.Y + top + m.Top
	}
	e.layout(id, sized(cb, x, y, bw, h))
	if !tok && bok {
		bb := b.Dim.BorderBox()
		e.moveTo(id, bb.X, cb.Y+cb.Height-bottom-m.Bottom-bb.H)
	}
	e.trace.Debugf("positioned %s at %s", e.tree.Name(id), b.Dim.BorderBox())
}

// shiftRelative offsets relatively positioned boxes, together with their
// descendants, from their position in flow.
func (e *engine) shiftRelative(id boxtree.BoxID) {
	b := e.tree.Box(id)
	for _, ch := range b.Children {
		c := e.tree.Box(ch)
		if c.Style.Position == css.PositionRelative {
			dx, dy := e.relativeOffset(c.Style, b.Dim.Content)
			e.translate(ch, dx, dy, true)
		}
		e.shiftRelative(ch)
	}
}

func (e *engine) relativeOffset(s *css.ComputedStyle, cb frame.Rect) (dx, dy dimen.Dimen) {
	if l, ok := e.definite(s.Inset.Left, cb.W); ok {
		dx = l
	} else if r, ok := e.definite(s.Inset.Right, cb.W); ok {
		dx = -r
	}
	if t, ok := e.definite(s.Inset.Top, cb.H); ok {
		dy = t
	} else if b, ok := e.definite(s.Inset.Bottom, cb.H); ok {
		dy = -b
	}
	return dx, dy
}
