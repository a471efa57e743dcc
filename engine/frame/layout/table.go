package layout

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// layoutTable lays out a table in the separated borders model and returns
// the auto height of its content box.
//
// Columns get their max-content width. If they do not fit, they are shrunk
// in proportion to their max-content width. If a table with an explicit width
// has space left, the space is spread evenly across the columns. A table
// with auto width in normal flow shrinks to the width of its columns.
func (e *engine) layoutTable(id boxtree.BoxID, cb frame.ContainingBlock, at placement) dimen.Dimen {
	b := e.tree.Box(id)
	s := b.Style
	tm := e.tree.Table(id)
	n := tm.NumCols
	spacing := s.BorderSpacing
	var spacings dimen.Dimen
	if n > 0 {
		spacings = dimen.Dimen(n+1) * spacing
	}
	avail := dimen.NonNeg(cb.Width - spacings)
	cols := make([]dimen.Dimen, n)
	var sum dimen.Dimen
	for i, c := range e.measure.Columns(tm) {
		cols[i] = c.MaxContent
		sum += c.MaxContent
	}
	autoWidth := at.inFlow() && s.Width.IsAuto()
	switch {
	case sum > avail:
		distribute(cols, avail, func(i int) dimen.Dimen {
			return dimen.MulDiv(avail, int64(cols[i]), int64(sum))
		})
	case sum < avail && !autoWidth && n > 0:
		extra := avail - sum
		distribute(cols, avail, func(i int) dimen.Dimen {
			return cols[i] + extra/dimen.Dimen(n)
		})
	}
	if autoWidth && n > 0 {
		e.shrinkTable(id, sum+spacings, at)
		cb.X, cb.Width = b.Dim.Content.X, b.Dim.Content.W
	}
	e.trace.Debugf("table %s: columns %v", e.tree.Name(id), cols)
	//
	y := cb.Y
	for _, c := range tm.Captions {
		mt := e.resolve(e.tree.Box(c).Style.Margin.Top, cb.Width)
		e.layout(c, flow(cb, y+mt))
		y = e.tree.Box(c).Dim.MarginBox().Bottom()
	}
	if len(tm.Rows) == 0 {
		return y - cb.Y
	}
	y += spacing
	cellCB := frame.ContainingBlock{X: cb.X, Y: cb.Y, Width: cb.Width, Height: dimen.Infinity}
	colX := make([]dimen.Dimen, n)
	x := cb.X + spacing
	for i, w := range cols {
		colX[i] = x
		x += w + spacing
	}
	rowH := make([]dimen.Dimen, len(tm.Rows))
	for _, slot := range tm.Cells {
		w := spanSize(cols, spacing, slot.Col, slot.ColSpan)
		e.layout(slot.Box, sized(cellCB, colX[slot.Col], y, w, -1))
		if slot.RowSpan == 1 {
			rowH[slot.Row] = dimen.Max(rowH[slot.Row], e.tree.Box(slot.Box).Dim.BorderBox().H)
		}
	}
	for _, slot := range tm.Cells {
		if slot.RowSpan == 1 {
			continue
		}
		h := e.tree.Box(slot.Box).Dim.BorderBox().H
		if have := spanSize(rowH, spacing, slot.Row, slot.RowSpan); h > have {
			spanned := rowH[slot.Row : slot.Row+slot.RowSpan]
			deficit, k := h-have, dimen.Dimen(len(spanned))
			for i := range spanned {
				spanned[i] += deficit / k
			}
			spanned[len(spanned)-1] += deficit % k
		}
	}
	rowY := trackPositions(rowH, spacing)
	for i := range rowY {
		rowY[i] += y
	}
	for _, slot := range tm.Cells {
		w := spanSize(cols, spacing, slot.Col, slot.ColSpan)
		h := spanSize(rowH, spacing, slot.Row, slot.RowSpan)
		e.layout(slot.Box, sized(cellCB, colX[slot.Col], rowY[slot.Row], w, h))
	}
	rowW := dimen.NonNeg(cb.Width - 2*spacing)
	for r, rid := range tm.Rows {
		e.layout(rid, sized(cb, cb.X+spacing, rowY[r], rowW, rowH[r]))
	}
	for _, ch := range b.Children {
		if g := e.tree.Box(ch); g.Kind == frame.TableRowGroup {
			e.placeRowGroup(ch, cb)
		}
	}
	last := len(tm.Rows) - 1
	return rowY[last] + rowH[last] + spacing - cb.Y
}

// shrinkTable reduces the content width of a table to width, keeping it
// centered if both horizontal margins are auto.
func (e *engine) shrinkTable(id boxtree.BoxID, width dimen.Dimen, at placement) {
	d := &e.tree.Box(id).Dim
	if width >= d.Content.W {
		return
	}
	s := e.tree.Box(id).Style
	d.Content.W = width
	free := at.cb.Width - d.BorderBox().W
	if s.Margin.Left.IsAuto() && s.Margin.Right.IsAuto() {
		d.Margin.Left = free / 2
	}
	d.Margin.Right = free - d.Margin.Left
	d.Content.X = at.cb.X + d.Margin.Left + d.Border.Left + d.Padding.Left
}

// placeRowGroup sizes a row group to the union of its rows.
func (e *engine) placeRowGroup(id boxtree.BoxID, cb frame.ContainingBlock) {
	var r frame.Rect
	found := false
	for _, ch := range e.tree.Box(id).Children {
		if row := e.tree.Box(ch); row.Kind == frame.TableRow {
			if found {
				r = union(r, row.Dim.BorderBox())
			} else {
				r, found = row.Dim.BorderBox(), true
			}
		}
	}
	e.layout(id, sized(cb, r.X, r.Y, r.W, r.H))
}

// placeTablePart sets the geometry of a row or row group. Rows and row groups
// have neither padding nor borders in the separated borders model.
func (e *engine) placeTablePart(id boxtree.BoxID, at placement) {
	b := e.tree.Box(id)
	b.Dim = frame.Dimensions{
		Content: frame.Rect{X: at.x, Y: at.y, W: dimen.NonNeg(at.width), H: dimen.NonNeg(at.height)},
	}
}

// distribute sets sizes[i] = share(i) for all but the last entry, which gets
// what is left of total.
func distribute(sizes []dimen.Dimen, total dimen.Dimen, share func(int) dimen.Dimen) {
	var given dimen.Dimen
	for i := range sizes {
		if i == len(sizes)-1 {
			sizes[i] = total - given
			break
		}
		sizes[i] = share(i)
		given += sizes[i]
	}
}
