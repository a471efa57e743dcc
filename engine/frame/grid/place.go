package grid

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/webframe/engine/dom/style/css"
)

// Item is the placement request of a grid item, as taken from its style.
type Item struct {
	RowStart, RowEnd css.GridLine
	ColStart, ColEnd css.GridLine
}

// ItemFromStyle extracts the placement properties of a grid item.
func ItemFromStyle(s *css.ComputedStyle) Item {
	return Item{
		RowStart: s.GridRowStart,
		RowEnd:   s.GridRowEnd,
		ColStart: s.GridColumnStart,
		ColEnd:   s.GridColumnEnd,
	}
}

// Area is the placement of an item: 0-based start tracks and spans.
type Area struct {
	Row, Col         int
	RowSpan, ColSpan int
}

// RowEnd returns the track index after the area.
func (a Area) RowEnd() int { return a.Row + a.RowSpan }

// ColEnd returns the track index after the area.
func (a Area) ColEnd() int { return a.Col + a.ColSpan }

// Template describes the explicit grid of a container.
type Template struct {
	Rows, Cols int // number of explicit tracks
	Areas      css.TemplateAreas
	Flow       css.GridAutoFlow
}

// TemplateFromStyle extracts the explicit grid of a container.
func TemplateFromStyle(s *css.ComputedStyle) Template {
	tmpl := Template{
		Rows:  len(s.GridTemplateRows),
		Cols:  len(s.GridTemplateColumns),
		Areas: s.GridTemplateAreas,
		Flow:  s.GridAutoFlow,
	}
	tmpl.Rows = max(tmpl.Rows, s.GridTemplateAreas.Rows)
	tmpl.Cols = max(tmpl.Cols, s.GridTemplateAreas.Cols)
	return tmpl
}

// Placement is the result of placing a list of items.
type Placement struct {
	Rows, Cols int    // number of tracks, explicit and implicit
	Areas      []Area // one per item, in input order
}

// span is a resolved range on one axis. Definite is false for auto-placed items.
type span struct {
	start, size int
	definite    bool
}

// Place places items into a grid.
func Place(items []Item, tmpl Template) Placement {
	// placement is done in flow-major order; column flow swaps the axes
	colFlow := tmpl.Flow == css.GridFlowColumn
	major, minor := make([]span, len(items)), make([]span, len(items))
	fixedTracks := max(tmpl.Cols, 1)
	for i, it := range items {
		rows := resolveAxis(it.RowStart, it.RowEnd, tmpl.Rows, tmpl.Areas, true)
		cols := resolveAxis(it.ColStart, it.ColEnd, tmpl.Cols, tmpl.Areas, false)
		if colFlow {
			major[i], minor[i] = cols, rows
		} else {
			major[i], minor[i] = rows, cols
		}
	}
	if colFlow {
		fixedTracks = max(tmpl.Rows, 1)
	}
	for i := range items {
		if minor[i].definite {
			fixedTracks = max(fixedTracks, minor[i].start+minor[i].size)
		} else {
			fixedTracks = max(fixedTracks, minor[i].size)
		}
	}
	occ := &occupancy{set: hashset.New()}
	areas := make([]Area, len(items))
	placed := make([]bool, len(items))
	for i := range items { // definite in both axes
		if major[i].definite && minor[i].definite {
			occ.mark(major[i], minor[i])
			placed[i] = true
		}
	}
	for i := range items { // locked to a minor track
		if !placed[i] && minor[i].definite {
			for m := 0; ; m++ {
				major[i].start = m
				if occ.free(major[i], minor[i]) {
					break
				}
			}
			occ.mark(major[i], minor[i])
			placed[i] = true
		}
	}
	cursorMajor, cursorMinor := 0, 0
	for i := range items {
		if placed[i] {
			continue
		}
		if major[i].definite { // locked to a major track
			cursorMajor, cursorMinor = major[i].start, 0
		}
		for {
			if cursorMinor+minor[i].size <= fixedTracks {
				ma := span{start: cursorMajor, size: major[i].size}
				mi := span{start: cursorMinor, size: minor[i].size}
				if occ.free(ma, mi) {
					major[i], minor[i] = ma, mi
					occ.mark(ma, mi)
					cursorMinor += mi.size
					break
				}
			}
			cursorMinor++
			if cursorMinor+minor[i].size > fixedTracks {
				if major[i].definite {
					// cannot move to another track; overlap in the first cell
					minor[i] = span{start: 0, size: minor[i].size}
					occ.mark(major[i], minor[i])
					cursorMinor = minor[i].size
					break
				}
				cursorMinor = 0
				cursorMajor++
			}
		}
	}
	p := Placement{Rows: tmpl.Rows, Cols: tmpl.Cols}
	for i := range items {
		if colFlow {
			areas[i] = Area{Row: minor[i].start, RowSpan: minor[i].size, Col: major[i].start, ColSpan: major[i].size}
		} else {
			areas[i] = Area{Row: major[i].start, RowSpan: major[i].size, Col: minor[i].start, ColSpan: minor[i].size}
		}
		p.Rows = max(p.Rows, areas[i].RowEnd())
		p.Cols = max(p.Cols, areas[i].ColEnd())
	}
	p.Areas = areas
	tracer().Debugf("placed %d grid items into %d×%d tracks", len(items), p.Rows, p.Cols)
	return p
}

// resolveAxis resolves the start and end lines of an item on one axis,
// given the number of explicit tracks on this axis.
func resolveAxis(start, end css.GridLine, explicit int, areas css.TemplateAreas, rows bool) span {
	s, sok := resolveLine(start, explicit, areas, rows, true)
	e, eok := resolveLine(end, explicit, areas, rows, false)
	switch {
	case sok && eok:
		if e <= s {
			return span{start: s, size: 1, definite: true}
		}
		return span{start: s, size: e - s, definite: true}
	case sok:
		return span{start: s, size: max(end.Span, 1), definite: true}
	case eok:
		n := max(start.Span, 1)
		return span{start: max(e-n, 0), size: n, definite: true}
	}
	return span{size: max(start.Span, end.Span, 1)}
}

// resolveLine resolves a grid line to a 0-based line index. Line numbers count
// from 1, negative numbers count backwards from the end of the explicit grid.
// Names refer to the edges of template areas.
func resolveLine(l css.GridLine, explicit int, areas css.TemplateAreas, rows, isStart bool) (int, bool) {
	switch {
	case l.Name != "":
		a, ok := areas.Areas[l.Name]
		if !ok {
			return 0, false
		}
		switch {
		case rows && isStart:
			return a.RowStart, true
		case rows:
			return a.RowEnd, true
		case isStart:
			return a.ColStart, true
		}
		return a.ColEnd, true
	case l.Line > 0:
		return l.Line - 1, true
	case l.Line < 0:
		return max(explicit+1+l.Line, 0), true
	}
	return 0, false
}

// occupancy tracks occupied cells in flow-major coordinates.
type occupancy struct {
	set *hashset.Set
}

type cell struct{ major, minor int }

func (o *occupancy) free(ma, mi span) bool {
	for i := ma.start; i < ma.start+ma.size; i++ {
		for j := mi.start; j < mi.start+mi.size; j++ {
			if o.set.Contains(cell{i, j}) {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) mark(ma, mi span) {
	for i := ma.start; i < ma.start+ma.size; i++ {
		for j := mi.start; j < mi.start+mi.size; j++ {
			o.set.Add(cell{i, j})
		}
	}
}
