package layout

import (
	"slices"

	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// flexItem holds the sizing state of an item during flex layout. Main sizes
// are content box sizes.
type flexItem struct {
	id           boxtree.BoxID
	box          *boxtree.LayoutBox
	margin       frame.EdgeSizes
	mainPB       dimen.Dimen // padding and border along the main axis
	mainM        dimen.Dimen // margins along the main axis
	crossM       dimen.Dimen // margins along the cross axis
	grow, shrink float64
	basis        dimen.Dimen // flex base size
	min, max     dimen.Dimen
	hypo         dimen.Dimen // hypothetical main size
	target       dimen.Dimen // used main size
	frozen       bool
	cross        dimen.Dimen // outer cross size
	align        css.Alignment
}

func (it *flexItem) outer(size dimen.Dimen) dimen.Dimen {
	return size + it.mainPB + it.mainM
}

func (it *flexItem) clamp(size dimen.Dimen) dimen.Dimen {
	return dimen.Clamp(size, it.min, it.max)
}

type flexLine struct {
	items []*flexItem
	cross dimen.Dimen
	pos   dimen.Dimen // cross offset of the line
}

// layoutFlex lays out the items of a flex container and returns the auto
// height of its content box.
func (e *engine) layoutFlex(id boxtree.BoxID, cb frame.ContainingBlock) dimen.Dimen {
	s := e.tree.Box(id).Style
	row := !s.FlexDirection.IsColumn()
	for _, ch := range e.tree.Box(id).Children {
		if e.tree.Box(ch).OutOfFlow {
			e.static[ch] = dimen.Point{X: cb.X, Y: cb.Y}
		}
	}
	items := e.flexItems(id, cb, row)
	if len(items) == 0 {
		return 0
	}
	mainAvail, crossAvail := cb.Width, cb.Height
	mainGap := e.resolve(s.ColumnGap, cb.Width)
	crossGap := e.resolve(s.RowGap, cb.Height)
	if !row {
		mainAvail, crossAvail = cb.Height, cb.Width
		mainGap, crossGap = crossGap, mainGap
	}
	lines := flexLines(items, mainAvail, mainGap, s.FlexWrap != css.NoWrap)
	for _, l := range lines {
		resolveFlexibleLengths(l.items, mainAvail, mainGap)
		for _, it := range l.items {
			e.sizeFlexItem(it, cb, row, -1)
			l.cross = dimen.Max(l.cross, it.cross)
		}
	}
	if len(lines) == 1 && s.FlexWrap == css.NoWrap && crossAvail != dimen.Infinity {
		lines[0].cross = crossAvail
	}
	crossExtent := e.alignContent(lines, s.AlignContent, crossAvail, crossGap)
	//
	for _, l := range lines {
		for _, it := range l.items {
			if it.align == css.AlignStretch && e.autoCross(it, row) && it.cross != l.cross {
				e.sizeFlexItem(it, cb, row, l.cross)
			}
		}
	}
	var mainExtent dimen.Dimen
	for _, l := range lines {
		used := dimen.Dimen(len(l.items)-1) * mainGap
		for _, it := range l.items {
			used += it.outer(it.target)
		}
		mainExtent = dimen.Max(mainExtent, used)
	}
	if mainAvail != dimen.Infinity {
		mainExtent = mainAvail
	}
	for _, l := range lines {
		e.positionFlexLine(l, s, cb, row, mainExtent, mainGap, crossExtent)
	}
	if row {
		return crossExtent
	}
	return mainExtent
}

// flexItems collects the in-flow children of a flex container, in
// order-modified document order, and determines their flex base sizes.
func (e *engine) flexItems(id boxtree.BoxID, cb frame.ContainingBlock, row bool) []*flexItem {
	s := e.tree.Box(id).Style
	var items []*flexItem
	for _, ch := range e.inFlowChildren(id) {
		c := e.tree.Box(ch)
		pad, border := e.paddingAndBorder(c, cb.Width)
		m := e.edges(c.Style.Margin, cb.Width)
		it := &flexItem{
			id:     ch,
			box:    c,
			margin: m,
			grow:   c.Style.FlexGrow,
			shrink: c.Style.FlexShrink,
			align:  c.Style.AlignSelf,
		}
		if it.align == css.AlignAuto {
			it.align = s.AlignItems
		}
		if row {
			it.mainPB = pad.Horizontal() + border.Horizontal()
			it.mainM, it.crossM = m.Left+m.Right, m.Top+m.Bottom
		} else {
			it.mainPB = pad.Vertical() + border.Vertical()
			it.mainM, it.crossM = m.Top+m.Bottom, m.Left+m.Right
		}
		it.basis = e.flexBasis(it, cb, row)
		it.min, it.max = e.flexClamps(it, cb, row)
		it.hypo = it.clamp(it.basis)
		items = append(items, it)
	}
	slices.SortStableFunc(items, func(a, b *flexItem) int {
		return a.box.Style.Order - b.box.Style.Order
	})
	return items
}

// flexBasis determines the flex base size of an item: flex-basis if
// definite, else the main size property, else the size of the content.
func (e *engine) flexBasis(it *flexItem, cb frame.ContainingBlock, row bool) dimen.Dimen {
	s := it.box.Style
	avail, size := cb.Width, s.Width
	if !row {
		avail, size = cb.Height, s.Height
	}
	for _, d := range []css.DimenT{s.FlexBasis, size} {
		if v, ok := e.definite(d, avail); ok {
			if s.BoxSizing == css.BorderBox {
				v -= it.mainPB
			}
			return dimen.NonNeg(v)
		}
	}
	if row {
		return e.measure.Measure(it.id, frame.ContentBox).MaxContent
	}
	e.layout(it.id, sized(cb, cb.X, cb.Y, e.flexCrossWidth(it, cb), -1))
	return it.box.Dim.Content.H
}

// flexClamps returns the minimum and maximum main size of an item. The
// automatic minimum size of an item is the min-content size of its contents
// along the main axis, or its specified size if that is smaller. In a column
// this is the height of the contents at the item's cross size.
func (e *engine) flexClamps(it *flexItem, cb frame.ContainingBlock, row bool) (lo, hi dimen.Dimen) {
	s := it.box.Style
	avail, minS, maxS := cb.Width, s.MinWidth, s.MaxWidth
	if !row {
		avail, minS, maxS = cb.Height, s.MinHeight, s.MaxHeight
	}
	content := func(v dimen.Dimen) dimen.Dimen {
		if s.BoxSizing == css.BorderBox {
			v -= it.mainPB
		}
		return dimen.NonNeg(v)
	}
	hi = dimen.Infinity
	if v, ok := e.definite(maxS, avail); ok {
		hi = content(v)
	}
	if v, ok := e.definite(minS, avail); ok {
		lo = content(v)
	} else if minS.IsAuto() && s.Overflow == css.OverflowVisible {
		size := s.Width
		if row {
			lo = e.measure.Measure(it.id, frame.Contents).MinContent
		} else {
			size = s.Height
			at := sized(cb, cb.X, cb.Y, e.flexCrossWidth(it, cb), -1)
			at.contents = true
			e.layout(it.id, at)
			lo = it.box.Dim.Content.H
		}
		if v, ok := e.definite(size, avail); ok {
			lo = dimen.Min(lo, content(v))
		}
		lo = dimen.Min(lo, hi)
	}
	return lo, dimen.Max(lo, hi)
}

// flexLines breaks items into lines. Without wrapping, all items go into a
// single line.
func flexLines(items []*flexItem, avail, gap dimen.Dimen, wrap bool) []*flexLine {
	if !wrap || avail == dimen.Infinity {
		return []*flexLine{{items: items}}
	}
	var lines []*flexLine
	cur := &flexLine{}
	var used dimen.Dimen
	for _, it := range items {
		o := it.outer(it.hypo)
		if len(cur.items) > 0 && used+gap+o > avail {
			lines = append(lines, cur)
			cur, used = &flexLine{}, 0
		}
		if len(cur.items) > 0 {
			used += gap
		}
		used += o
		cur.items = append(cur.items, it)
	}
	return append(lines, cur)
}

// resolveFlexibleLengths distributes the free space of a line to its items.
//
// Items grow in proportion to their flex-grow factor, and shrink in
// proportion to flex-shrink times their base size. Items violating their
// min or max size are frozen at the clamped size and the remaining free
// space is distributed anew. Space is distributed in whole units; the
// remainder goes to the last flexible item.
func resolveFlexibleLengths(items []*flexItem, avail, gap dimen.Dimen) {
	if avail == dimen.Infinity {
		for _, it := range items {
			it.target = it.hypo
		}
		return
	}
	used := dimen.Dimen(len(items)-1) * gap
	sum := used
	for _, it := range items {
		sum += it.outer(it.hypo)
	}
	growing := sum < avail
	for _, it := range items {
		it.target = it.hypo
		factor := it.shrink
		if growing {
			factor = it.grow
		}
		it.frozen = factor == 0 || (growing && it.basis > it.hypo) || (!growing && it.basis < it.hypo)
	}
	for round := 0; round <= len(items); round++ {
		free := avail - used
		var active []*flexItem
		var total float64
		for _, it := range items {
			if it.frozen {
				free -= it.outer(it.target)
				continue
			}
			free -= it.outer(it.basis)
			active = append(active, it)
			total += flexWeight(it, growing)
		}
		if len(active) == 0 {
			return
		}
		if (growing && free < 0) || (!growing && free > 0) || total == 0 {
			free = 0
		}
		var distributed, violation dimen.Dimen
		viols := make([]dimen.Dimen, len(active))
		for i, it := range active {
			share := free - distributed
			if i < len(active)-1 {
				share = dimen.Dimen(float64(free) * flexWeight(it, growing) / total)
			}
			distributed += share
			want := it.basis + share
			it.target = it.clamp(want)
			viols[i] = it.target - want
			violation += viols[i]
		}
		for i, it := range active {
			if violation == 0 || (violation > 0 && viols[i] > 0) || (violation < 0 && viols[i] < 0) {
				it.frozen = true
			}
		}
	}
}

func flexWeight(it *flexItem, growing bool) float64 {
	if growing {
		return it.grow
	}
	return it.shrink * float64(it.basis)
}

// sizeFlexItem lays out an item with its resolved main size. If cross is not
// negative, the item is stretched to this outer cross size.
func (e *engine) sizeFlexItem(it *flexItem, cb frame.ContainingBlock, row bool, cross dimen.Dimen) {
	mainBorder := it.target + it.mainPB
	if row {
		h := dimen.Dimen(-1)
		if cross >= 0 {
			h = dimen.NonNeg(cross - it.crossM)
		}
		e.layout(it.id, sized(cb, cb.X, cb.Y, mainBorder, h))
		it.cross = it.box.Dim.BorderBox().H + it.crossM
		return
	}
	w := e.flexCrossWidth(it, cb)
	if cross >= 0 {
		w = dimen.NonNeg(cross - it.crossM)
	}
	e.layout(it.id, sized(cb, cb.X, cb.Y, w, mainBorder))
	it.cross = it.box.Dim.BorderBox().W + it.crossM
}

// flexCrossWidth is the border box width of an item in a column container.
func (e *engine) flexCrossWidth(it *flexItem, cb frame.ContainingBlock) dimen.Dimen {
	pad, border := e.paddingAndBorder(it.box, cb.Width)
	pb := pad.Horizontal() + border.Horizontal()
	if w, ok := e.specifiedWidth(it.box, cb.Width, pb); ok {
		return w + pb
	}
	if it.align == css.AlignStretch {
		return dimen.NonNeg(cb.Width - it.crossM)
	}
	return e.shrinkToFit(it.id, cb.Width-it.crossM)
}

// autoCross is true if an item's cross size is auto, i.e. it may be stretched.
func (e *engine) autoCross(it *flexItem, row bool) bool {
	s := it.box.Style
	if row {
		return s.Height.IsAuto() && !s.Margin.Top.IsAuto() && !s.Margin.Bottom.IsAuto()
	}
	return s.Width.IsAuto() && !s.Margin.Left.IsAuto() && !s.Margin.Right.IsAuto()
}

// alignContent distributes free cross space among the lines of a
// container and returns the total cross extent.
func (e *engine) alignContent(lines []*flexLine, align css.Alignment, avail, gap dimen.Dimen) dimen.Dimen {
	sum := dimen.Dimen(len(lines)-1) * gap
	for _, l := range lines {
		sum += l.cross
	}
	var start, between dimen.Dimen
	if avail != dimen.Infinity && avail > sum {
		free := avail - sum
		n := dimen.Dimen(len(lines))
		switch align {
		case css.AlignStretch:
			var given dimen.Dimen
			for i, l := range lines {
				share := free / n
				if i == len(lines)-1 {
					share = free - given
				}
				given += share
				l.cross += share
			}
		case css.AlignEnd:
			start = free
		case css.AlignCenter:
			start = free / 2
		case css.AlignSpaceBetween:
			if n > 1 {
				between = free / (n - 1)
			}
		case css.AlignSpaceAround:
			between = free / n
			start = between / 2
		case css.AlignSpaceEvenly:
			between = free / (n + 1)
			start = between
		}
		sum = avail
	}
	pos := start
	for _, l := range lines {
		l.pos = pos
		pos += l.cross + gap + between
	}
	return sum
}

// positionFlexLine moves the items of a line to their final positions,
// distributing free main space according to justify-content.
func (e *engine) positionFlexLine(l *flexLine, s *css.ComputedStyle, cb frame.ContainingBlock,
	row bool, extent, gap, crossExtent dimen.Dimen) {
	//
	n := dimen.Dimen(len(l.items))
	free := extent - (n-1)*gap
	for _, it := range l.items {
		free -= it.outer(it.target)
	}
	var start, between dimen.Dimen
	switch s.JustifyContent {
	case css.JustifyEnd:
		start = free
	case css.JustifyCenter:
		start = free / 2
	case css.JustifySpaceBetween:
		if free > 0 && n > 1 {
			between = free / (n - 1)
		}
	case css.JustifySpaceAround:
		if free > 0 {
			between = free / n
			start = between / 2
		}
	case css.JustifySpaceEvenly:
		if free > 0 {
			between = free / (n + 1)
			start = between
		}
	}
	linePos := l.pos
	if s.FlexWrap == css.WrapReverse {
		linePos = crossExtent - l.pos - l.cross
	}
	main := start
	for _, it := range l.items {
		size := it.outer(it.target)
		m := main
		if s.FlexDirection.IsReverse() {
			m = extent - main - size
		}
		c := linePos + alignOffset(it.align, l.cross, it.cross)
		if row {
			e.moveTo(it.id, cb.X+m+it.margin.Left, cb.Y+c+it.margin.Top)
		} else {
			e.moveTo(it.id, cb.X+c+it.margin.Left, cb.Y+m+it.margin.Top)
		}
		main += size + gap + between
	}
}

// alignOffset is the offset of a box of a given size within a slot.
func alignOffset(a css.Alignment, slot, size dimen.Dimen) dimen.Dimen {
	switch a {
	case css.AlignEnd:
		return slot - size
	case css.AlignCenter:
		return (slot - size) / 2
	}
	return 0
}
