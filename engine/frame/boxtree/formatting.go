package boxtree

import (
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
)

// Formatting is the kind of layout a box imposes on its children.
type Formatting uint8

// Formattings, derived from box kind and inner display type.
const (
	NoFormatting Formatting = iota
	BlockFormatting
	InlineFormatting
	FlexFormatting
	GridFormatting
	TableFormatting
	RowGroupFormatting
	RowFormatting
)

func (f Formatting) String() string {
	return [...]string{"none", "block", "inline", "flex", "grid", "table", "row-group", "row"}[f]
}

// Formatting returns the formatting a box imposes on its children.
// Flex items, grid items, table cells and inline-blocks lay out their
// contents according to their inner display type.
func (b *LayoutBox) Formatting() Formatting {
	switch b.Kind {
	case frame.TextRun:
		return NoFormatting
	case frame.TableRowGroup:
		return RowGroupFormatting
	case frame.TableRow:
		return RowFormatting
	case frame.InlineContainer, frame.AnonymousInline:
		return InlineFormatting
	}
	if b.Replaced {
		return NoFormatting
	}
	switch b.Style.Display.Inner() {
	case css.FlexMode:
		return FlexFormatting
	case css.GridMode:
		return GridFormatting
	case css.TableMode:
		return TableFormatting
	}
	return BlockFormatting
}

// --- Table model -----------------------------------------------------------

// TableSlot is the position of a cell in the grid of a table.
type TableSlot struct {
	Box     BoxID
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// TableModel is the row/column structure of a table box.
type TableModel struct {
	Captions []BoxID // captions, in document order
	Rows     []BoxID // rows of all row groups, in document order
	Cells    []TableSlot
	NumCols  int
}

// Table computes the cell slots of a table box. Cells are placed row by row
// into the first column not occupied by a row-spanning cell from above.
func (t *Tree) Table(id BoxID) TableModel {
	var tm TableModel
	for _, ch := range t.Box(id).Children {
		b := t.Box(ch)
		switch {
		case b.OutOfFlow:
		case b.Kind == frame.TableRowGroup:
			for _, r := range b.Children {
				if t.Box(r).Kind == frame.TableRow {
					tm.Rows = append(tm.Rows, r)
				}
			}
		case b.Kind == frame.TableRow:
			tm.Rows = append(tm.Rows, ch)
		default:
			tm.Captions = append(tm.Captions, ch)
		}
	}
	occupied := make(map[[2]int]bool)
	for r, row := range tm.Rows {
		c := 0
		for _, cell := range t.Box(row).Children {
			cb := t.Box(cell)
			if cb.Kind != frame.TableCell || cb.OutOfFlow {
				continue
			}
			for occupied[[2]int{r, c}] {
				c++
			}
			slot := TableSlot{
				Box:     cell,
				Row:     r,
				Col:     c,
				RowSpan: min(max(cb.RowSpan, 1), len(tm.Rows)-r),
				ColSpan: max(cb.ColSpan, 1),
			}
			for i := r; i < r+slot.RowSpan; i++ {
				for j := c; j < c+slot.ColSpan; j++ {
					occupied[[2]int{i, j}] = true
				}
			}
			tm.Cells = append(tm.Cells, slot)
			c += slot.ColSpan
			tm.NumCols = max(tm.NumCols, c)
		}
	}
	return tm
}
