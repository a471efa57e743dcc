package intrinsic

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/grid"
)

// flexSizes: min-content is the widest min-content of all items. Max-content
// is the sum of the items' max-content for row containers, the widest for
// column containers.
func (m *Measurer) flexSizes(b *boxtree.LayoutBox) frame.IntrinsicSizes {
	row := !b.Style.FlexDirection.IsColumn()
	var is frame.IntrinsicSizes
	n := 0
	for _, ch := range b.Children {
		if m.tree.Box(ch).OutOfFlow {
			continue
		}
		c := m.contribution(ch)
		is.MinContent = dimen.Max(is.MinContent, c.MinContent)
		if row {
			is.MaxContent += c.MaxContent
		} else {
			is.MaxContent = dimen.Max(is.MaxContent, c.MaxContent)
		}
		n++
	}
	if row && n > 1 {
		is.MaxContent += dimen.Dimen(n-1) * m.fixedOr0(b.Style.ColumnGap)
	}
	return is
}

// gridSizes sums the column tracks. Fixed tracks count with their size,
// percentage tracks with zero, auto and fr tracks with the content of the
// items placed into them. Items spanning several tracks are split evenly.
func (m *Measurer) gridSizes(b *boxtree.LayoutBox) frame.IntrinsicSizes {
	var items []grid.Item
	var ids []boxtree.BoxID
	for _, ch := range b.Children {
		if cb := m.tree.Box(ch); !cb.OutOfFlow {
			items = append(items, grid.ItemFromStyle(cb.Style))
			ids = append(ids, ch)
		}
	}
	placement := grid.Place(items, grid.TemplateFromStyle(b.Style))
	content := make([]frame.IntrinsicSizes, placement.Cols)
	for i, a := range placement.Areas {
		c := m.contribution(ids[i])
		for col := a.Col; col < a.ColEnd(); col++ {
			content[col] = content[col].Union(c.Share(a.ColSpan, col-a.Col))
		}
	}
	var is frame.IntrinsicSizes
	for col := 0; col < placement.Cols; col++ {
		track := b.Style.GridAutoColumns
		if col < len(b.Style.GridTemplateColumns) {
			track = b.Style.GridTemplateColumns[col]
		}
		switch track.Kind {
		case css.TrackFixed:
			w := m.fixedOr0(track.Size)
			is = is.Add(w)
		case css.TrackPercent:
		default:
			is.MinContent += content[col].MinContent
			is.MaxContent += content[col].MaxContent
		}
	}
	if placement.Cols > 1 {
		is = is.Add(dimen.Dimen(placement.Cols-1) * m.fixedOr0(b.Style.ColumnGap))
	}
	return is
}

// tableSizes sums the column widths of a table, where each column is as wide
// as its widest cell. Spanning cells contribute an even share to each column.
func (m *Measurer) tableSizes(id boxtree.BoxID, b *boxtree.LayoutBox) frame.IntrinsicSizes {
	tm := m.tree.Table(id)
	cols := m.Columns(tm)
	var is frame.IntrinsicSizes
	for _, c := range cols {
		is.MinContent += c.MinContent
		is.MaxContent += c.MaxContent
	}
	if tm.NumCols > 0 {
		is = is.Add(dimen.Dimen(tm.NumCols+1) * b.Style.BorderSpacing)
	}
	for _, c := range tm.Captions {
		is = is.Union(m.contribution(c))
	}
	return is
}

// Columns returns the intrinsic sizes of the columns of a table.
func (m *Measurer) Columns(tm boxtree.TableModel) []frame.IntrinsicSizes {
	cols := make([]frame.IntrinsicSizes, tm.NumCols)
	for _, slot := range tm.Cells {
		c := m.Measure(slot.Box, frame.MarginBox)
		for col := slot.Col; col < slot.Col+slot.ColSpan; col++ {
			cols[col] = cols[col].Union(c.Share(slot.ColSpan, col-slot.Col))
		}
	}
	return cols
}
