package layout

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// FloatList holds the floats of a block formatting context as absolute
// margin box rectangles, per side.
//
// “A float is a box that is shifted to the left or right on the current line.
// Content may flow along the side of a float.”
type FloatList struct {
	left, right []frame.Rect
	top         dimen.Dimen // a float is never placed above an earlier one
}

// Band returns the horizontal space between the floats overlapping the
// vertical range [y, y+h) inside a containing block.
func (l *FloatList) Band(y, h dimen.Dimen, cb frame.ContainingBlock) (x, w dimen.Dimen) {
	x, right := cb.X, cb.X+cb.Width
	if l == nil {
		return x, cb.Width
	}
	for _, r := range l.left {
		if overlaps(r, y, h) {
			x = dimen.Max(x, r.Right())
		}
	}
	for _, r := range l.right {
		if overlaps(r, y, h) {
			right = dimen.Min(right, r.X)
		}
	}
	return x, dimen.NonNeg(right - x)
}

func overlaps(r frame.Rect, y, h dimen.Dimen) bool {
	if h <= 0 {
		return r.Y <= y && y < r.Bottom()
	}
	return r.Y < y+h && y < r.Bottom()
}

// Place finds a position for a float with margin box size w×h, not above y.
// The float is moved down past other floats until it fits beside them, or
// until no float is left to move past. It returns the margin box origin.
func (l *FloatList) Place(side css.Float, w, h, y dimen.Dimen, cb frame.ContainingBlock) (dimen.Dimen, dimen.Dimen) {
	y = dimen.Max(y, l.top)
	for {
		x, avail := l.Band(y, h, cb)
		next, ok := l.nextBottom(y, h)
		if w <= avail || !ok {
			if side == css.FloatRight {
				x += avail - w
			}
			r := frame.Rect{X: x, Y: y, W: w, H: h}
			if side == css.FloatRight {
				l.right = append(l.right, r)
			} else {
				l.left = append(l.left, r)
			}
			l.top = y
			return x, y
		}
		y = next
	}
}

// nextBottom is the nearest bottom edge below y of a float overlapping [y, y+h).
func (l *FloatList) nextBottom(y, h dimen.Dimen) (dimen.Dimen, bool) {
	next, ok := dimen.Infinity, false
	for _, side := range [][]frame.Rect{l.left, l.right} {
		for _, r := range side {
			if overlaps(r, y, h) && r.Bottom() > y && r.Bottom() < next {
				next, ok = r.Bottom(), true
			}
		}
	}
	return next, ok
}

// Clear returns the lowest position at or below y which is clear of the
// floats named by c.
func (l *FloatList) Clear(c css.Clear, y dimen.Dimen) dimen.Dimen {
	if l == nil {
		return y
	}
	if c.Clears(css.FloatLeft) {
		for _, r := range l.left {
			y = dimen.Max(y, r.Bottom())
		}
	}
	if c.Clears(css.FloatRight) {
		for _, r := range l.right {
			y = dimen.Max(y, r.Bottom())
		}
	}
	return y
}

// Bottom is the lowest margin box edge of all floats, or y if there are none
// below it.
func (l *FloatList) Bottom(y dimen.Dimen) dimen.Dimen {
	return l.Clear(css.ClearBoth, y)
}

// placeFloat lays out a floating box and positions it within the current
// block formatting context, not above y. Floats are sized shrink-to-fit.
func (e *engine) placeFloat(id boxtree.BoxID, cb frame.ContainingBlock, y dimen.Dimen) {
	if e.floats == nil {
		e.floats = &FloatList{}
	}
	b := e.tree.Box(id)
	w := e.shrinkToFit(id, cb.Width-e.horizontalMargins(b, cb.Width))
	e.layout(id, sized(cb, cb.X, y, w, -1))
	mb := b.Dim.MarginBox()
	y = e.floats.Clear(b.Style.Clear, y)
	x, top := e.floats.Place(b.Style.Float, mb.W, mb.H, y, cb)
	e.moveTo(id, x+b.Dim.Margin.Left, top+b.Dim.Margin.Top)
	e.trace.Debugf("float %s placed at %s", e.tree.Name(id), b.Dim.BorderBox())
}
