package layout

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/grid"
)

// gridItem holds the placement and margins of an item during grid layout.
type gridItem struct {
	id      boxtree.BoxID
	box     *boxtree.LayoutBox
	area    grid.Area
	margin  frame.EdgeSizes
	justify css.Alignment
	align   css.Alignment
}

// layoutGrid places the items of a grid container, sizes the tracks and
// lays out every item within its grid area. It returns the auto height of
// the container's content box.
//
// Track sizing is a single pass: fixed and percentage tracks take their
// size, auto tracks the max-content size of their items, and fr tracks share
// the space left over.
func (e *engine) layoutGrid(id boxtree.BoxID, cb frame.ContainingBlock) dimen.Dimen {
	s := e.tree.Box(id).Style
	var items []gridItem
	var requests []grid.Item
	for _, ch := range e.tree.Box(id).Children {
		c := e.tree.Box(ch)
		if c.OutOfFlow {
			e.static[ch] = dimen.Point{X: cb.X, Y: cb.Y}
			continue
		}
		it := gridItem{
			id:      ch,
			box:     c,
			margin:  e.edges(c.Style.Margin, cb.Width),
			justify: c.Style.JustifySelf,
			align:   c.Style.AlignSelf,
		}
		if it.justify == css.AlignAuto {
			it.justify = s.JustifyItems
		}
		if it.align == css.AlignAuto {
			it.align = s.AlignItems
		}
		items = append(items, it)
		requests = append(requests, grid.ItemFromStyle(c.Style))
	}
	p := grid.Place(requests, grid.TemplateFromStyle(s))
	for i := range items {
		items[i].area = p.Areas[i]
	}
	colGap := e.resolve(s.ColumnGap, cb.Width)
	rowGap := e.resolve(s.RowGap, cb.Height)
	//
	colContent := make([]dimen.Dimen, p.Cols)
	for _, it := range items {
		w := e.measure.Measure(it.id, frame.MarginBox).MaxContent
		spreadEvenly(colContent, it.area.Col, it.area.ColSpan, w)
	}
	cols := e.sizeTracks(tracks(s.GridTemplateColumns, s.GridAutoColumns, p.Cols), cb.Width, colGap, colContent)
	colPos := trackPositions(cols, colGap)
	//
	rowContent := make([]dimen.Dimen, p.Rows)
	for i := range items {
		it := &items[i]
		areaW := spanSize(cols, colGap, it.area.Col, it.area.ColSpan)
		e.layout(it.id, sized(cb, cb.X, cb.Y, e.gridItemWidth(it, cb, areaW), -1))
		h := it.box.Dim.MarginBox().H
		spreadEvenly(rowContent, it.area.Row, it.area.RowSpan, h)
	}
	rows := e.sizeTracks(tracks(s.GridTemplateRows, s.GridAutoRows, p.Rows), cb.Height, rowGap, rowContent)
	rowPos := trackPositions(rows, rowGap)
	//
	for i := range items {
		it := &items[i]
		a := it.area
		areaW := spanSize(cols, colGap, a.Col, a.ColSpan)
		areaH := spanSize(rows, rowGap, a.Row, a.RowSpan)
		vm := it.margin.Top + it.margin.Bottom
		if it.align == css.AlignStretch && it.box.Style.Height.IsAuto() {
			bw := it.box.Dim.BorderBox().W
			e.layout(it.id, sized(cb, cb.X, cb.Y, bw, dimen.NonNeg(areaH-vm)))
		}
		mb := it.box.Dim.MarginBox()
		x := cb.X + colPos[a.Col] + alignOffset(it.justify, areaW, mb.W)
		y := cb.Y + rowPos[a.Row] + alignOffset(it.align, areaH, mb.H)
		e.moveTo(it.id, x+it.margin.Left, y+it.margin.Top)
	}
	e.trace.Debugf("grid %s: columns %v, rows %v", e.tree.Name(id), cols, rows)
	if len(rows) == 0 {
		return 0
	}
	return rowPos[len(rows)-1] + rows[len(rows)-1]
}

// gridItemWidth is the border box width of an item in a grid area of a
// given width.
func (e *engine) gridItemWidth(it *gridItem, cb frame.ContainingBlock, areaW dimen.Dimen) dimen.Dimen {
	pad, border := e.paddingAndBorder(it.box, cb.Width)
	pb := pad.Horizontal() + border.Horizontal()
	hm := it.margin.Left + it.margin.Right
	if w, ok := e.specifiedWidth(it.box, cb.Width, pb); ok {
		return w + pb
	}
	if it.justify == css.AlignStretch {
		return dimen.NonNeg(areaW - hm)
	}
	return e.shrinkToFit(it.id, areaW-hm)
}

// tracks returns the sizing functions of n tracks, taking implicit tracks
// from the auto track size.
func tracks(explicit []css.TrackSize, auto css.TrackSize, n int) []css.TrackSize {
	defs := make([]css.TrackSize, n)
	for i := range defs {
		if i < len(explicit) {
			defs[i] = explicit[i]
		} else {
			defs[i] = auto
		}
	}
	return defs
}

// sizeTracks computes the sizes of a list of tracks for an available space.
// If the space is indefinite, percentage and fr tracks are sized like auto
// tracks.
func (e *engine) sizeTracks(defs []css.TrackSize, avail, gap dimen.Dimen, content []dimen.Dimen) []dimen.Dimen {
	sizes := make([]dimen.Dimen, len(defs))
	definite := avail != dimen.Infinity
	free := avail - dimen.Dimen(max(len(defs)-1, 0))*gap
	var frSum float64
	for i, t := range defs {
		switch {
		case t.Kind == css.TrackFixed:
			sizes[i] = dimen.NonNeg(e.resolve(t.Size, avail))
		case t.Kind == css.TrackPercent && definite:
			sizes[i] = dimen.NonNeg(e.resolve(t.Size, avail))
		case t.Kind == css.TrackFr && definite:
			frSum += t.Fr
			continue
		default:
			sizes[i] = content[i]
		}
		free -= sizes[i]
	}
	if frSum == 0 {
		return sizes
	}
	free = dimen.NonNeg(free)
	var given dimen.Dimen
	last := -1
	for i, t := range defs {
		if t.Kind == css.TrackFr {
			last = i
		}
	}
	for i, t := range defs {
		if t.Kind != css.TrackFr {
			continue
		}
		share := dimen.Dimen(float64(free) * t.Fr / frSum)
		if frSum < 1 {
			share = dimen.Dimen(float64(free) * t.Fr)
		} else if i == last {
			share = free - given
		}
		sizes[i] = share
		given += share
	}
	return sizes
}

func trackPositions(sizes []dimen.Dimen, gap dimen.Dimen) []dimen.Dimen {
	pos := make([]dimen.Dimen, len(sizes))
	var x dimen.Dimen
	for i, sz := range sizes {
		pos[i] = x
		x += sz + gap
	}
	return pos
}

// spanSize is the size of span tracks starting at start, including the gaps
// between them.
func spanSize(sizes []dimen.Dimen, gap dimen.Dimen, start, span int) dimen.Dimen {
	var s dimen.Dimen
	for i := start; i < start+span && i < len(sizes); i++ {
		s += sizes[i]
	}
	return s + dimen.Dimen(max(span-1, 0))*gap
}

// spreadEvenly lets a size contribute to span tracks, an even share each.
func spreadEvenly(content []dimen.Dimen, start, span int, size dimen.Dimen) {
	for i := start; i < start+span && i < len(content); i++ {
		content[i] = dimen.Max(content[i], frame.SpanShare(size, span, i-start))
	}
}
