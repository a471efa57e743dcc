package layout

import (
	"strings"

	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/intrinsic"
)

type itemKind uint8

const (
	textItem   itemKind = iota // unbreakable piece of text, or a hard break
	spaceItem                  // white space only
	openItem                   // start edge of an inline box
	closeItem                  // end edge of an inline box
	atomicItem                 // inline-block or replaced element
	oofItem                    // placeholder for an out-of-flow box
	floatItem                  // floating box, placed when the breaker reaches it
)

// inlineItem is the unit of line breaking.
type inlineItem struct {
	kind        itemKind
	box         boxtree.BoxID
	text        string
	width       dimen.Dimen // advance, margin box width for atomics
	space       dimen.Dimen // advance of trailing white space
	margin      dimen.Dimen // margin part of an edge item
	brk         bool        // forced break after this item
	breakBefore bool        // soft wrap opportunity before this item
	collapsible bool
	ascent      dimen.Dimen // including half-leading; margin box height for atomics
	descent     dimen.Dimen
	fontAscent  dimen.Dimen
	fontDescent dimen.Dimen
	valign      css.VerticalAlign
}

// layoutInlineRoot lays out the content of an inline formatting context into
// line boxes. The line boxes are stored with the root box.
//
// “In an inline formatting context, boxes are laid out horizontally, one
// after the other, beginning at the top of a containing block.”
func (e *engine) layoutInlineRoot(id boxtree.BoxID, at placement) blockResult {
	b := e.tree.Box(id)
	cb := at.cb
	col := collector{engine: e, cb: cb, prev: -1}
	col.collect(id)
	b.Lines = nil
	b.Baseline = 0
	frags := make(map[boxtree.BoxID]frame.Rect)
	y := at.y
	a, d := e.strut(b.Style)
	x0, width := e.floats.Band(y, a+d, cb)
	lb := lineBreaker{width: width}
	lb.emit = func(l line) dimen.Dimen {
		box := e.placeLine(l, x0, y, width, b.Style, frags)
		b.Lines = append(b.Lines, box)
		y += box.Rect.H
		x0, width = e.floats.Band(y, a+d, cb)
		return width
	}
	lb.float = func(it *inlineItem) dimen.Dimen {
		e.placeFloat(it.box, cb, y)
		x0, width = e.floats.Band(y, a+d, cb)
		return width
	}
	lb.run(col.items)
	b.Dim = frame.Dimensions{
		Content: frame.Rect{X: cb.X, Y: at.y, W: cb.Width, H: y - at.y},
	}
	if len(b.Lines) > 0 {
		b.Baseline = b.Lines[0].Baseline
	}
	origin := frame.Rect{X: cb.X, Y: at.y}
	for _, ch := range b.Children {
		e.placeInlineBoxes(ch, cb, origin, frags)
	}
	e.trace.Debugf("%s: %d lines, height %s", e.tree.Name(id), len(b.Lines), y-at.y)
	return blockResult{}
}

// placeInlineBoxes sets the geometry of the (non-atomic) inline boxes of an
// inline formatting context to the union of their fragments.
func (e *engine) placeInlineBoxes(id boxtree.BoxID, cb frame.ContainingBlock, origin frame.Rect,
	frags map[boxtree.BoxID]frame.Rect) (frame.Rect, bool) {
	//
	b := e.tree.Box(id)
	switch b.Kind {
	case frame.TextRun, frame.AnonymousInline, frame.InlineContainer:
	default:
		return frame.Rect{}, false
	}
	r, ok := frags[id]
	for _, ch := range b.Children {
		if cr, cok := e.placeInlineBoxes(ch, cb, origin, frags); cok {
			if ok {
				r = union(r, cr)
			} else {
				r, ok = cr, true
			}
		}
	}
	at := r
	if !ok {
		at = origin
	}
	e.layout(id, sized(cb, at.X, at.Y, at.W, at.H))
	return r, ok
}

// placeFragmented sets the geometry of an inline box which may have been
// broken into fragments. Its border box is the bounding box of its fragments.
func (e *engine) placeFragmented(id boxtree.BoxID, at placement) {
	b := e.tree.Box(id)
	d := &b.Dim
	d.Padding, d.Border = e.paddingAndBorder(b, at.cb.Width)
	if b.Kind == frame.InlineContainer {
		d.Margin = e.edges(b.Style.Margin, at.cb.Width)
		d.Margin.Top, d.Margin.Bottom = 0, 0
	}
	h := dimen.NonNeg(at.height)
	d.Content = frame.Rect{
		X: at.x + d.Border.Left + d.Padding.Left,
		Y: at.y + d.Border.Top + d.Padding.Top,
		W: dimen.NonNeg(at.width - d.Padding.Horizontal() - d.Border.Horizontal()),
		H: dimen.NonNeg(h - d.Padding.Vertical() - d.Border.Vertical()),
	}
}

// strut returns the ascent and descent of a line-height box for a style,
// including half-leading.
func (e *engine) strut(s *css.ComputedStyle) (dimen.Dimen, dimen.Dimen) {
	a, d := e.text.Extents(intrinsic.TextFont(s))
	if s.LineHeight > 0 {
		lead := s.LineHeight - (a + d)
		a += lead / 2
		d += lead - lead/2
	}
	return a, d
}

// --- Collecting items ------------------------------------------------------

type collector struct {
	*engine
	cb    frame.ContainingBlock
	items []inlineItem
	prev  int // index of the last text or atomic item, or -1
}

func (col *collector) collect(id boxtree.BoxID) {
	wraps := col.tree.Box(id).Style.WhiteSpace.Wraps()
	for _, ch := range col.tree.Box(id).Children {
		c := col.tree.Box(ch)
		switch {
		case c.OutOfFlow:
			col.items = append(col.items, inlineItem{kind: oofItem, box: ch})
		case c.Floating:
			col.items = append(col.items, inlineItem{kind: floatItem, box: ch})
		case c.Kind == frame.TextRun:
			col.textRun(ch, c)
		case c.Kind == frame.InlineContainer || c.Kind == frame.AnonymousInline:
			m := col.edges(c.Style.Margin, col.cb.Width)
			pad, border := col.paddingAndBorder(c, col.cb.Width)
			if c.Kind == frame.AnonymousInline {
				m = frame.EdgeSizes{}
			}
			col.items = append(col.items, inlineItem{
				kind:   openItem,
				box:    ch,
				width:  m.Left + border.Left + pad.Left,
				margin: m.Left,
			})
			col.collect(ch)
			col.items = append(col.items, inlineItem{
				kind:   closeItem,
				box:    ch,
				width:  m.Right + border.Right + pad.Right,
				margin: m.Right,
			})
		default:
			w := col.shrinkToFit(ch, col.cb.Width-col.horizontalMargins(c, col.cb.Width))
			col.layout(ch, sized(col.cb, 0, 0, w, -1))
			mb := c.Dim.MarginBox()
			col.push(inlineItem{
				kind:        atomicItem,
				box:         ch,
				width:       mb.W,
				ascent:      mb.H,
				valign:      c.Style.VerticalAlign,
				breakBefore: wraps && col.prev >= 0,
			})
		}
	}
}

func (col *collector) textRun(id boxtree.BoxID, c *boxtree.LayoutBox) {
	a, d := col.strut(c.Style)
	fa, fd := col.text.Extents(intrinsic.TextFont(c.Style))
	item := inlineItem{
		kind:        textItem,
		box:         id,
		collapsible: c.Style.WhiteSpace.Collapses(),
		ascent:      a,
		descent:     d,
		fontAscent:  fa,
		fontDescent: fd,
	}
	if c.HardBreak {
		item.brk = true
		col.push(item)
		return
	}
	ws := intrinsic.TextWhiteSpace(c.Style)
	for _, seg := range col.text.Segments(c.Text, intrinsic.TextFont(c.Style), ws) {
		it := item
		it.text, it.width, it.space, it.brk = seg.Text, seg.Width, seg.Space, seg.HardBreak
		if it.text == "" && it.width == 0 && !it.brk {
			it.kind = spaceItem
			col.items = append(col.items, it)
			if col.prev >= 0 && it.collapsible {
				p := &col.items[col.prev]
				p.space = dimen.Max(p.space, it.space)
			}
			continue
		}
		if col.prev >= 0 && ws.Wraps() {
			p := col.items[col.prev]
			it.breakBefore = p.box == id || p.space > 0 || p.kind == atomicItem
		}
		col.push(it)
	}
}

func (col *collector) push(it inlineItem) {
	col.items = append(col.items, it)
	col.prev = len(col.items) - 1
}

// --- Line breaking ---------------------------------------------------------

type lineItem struct {
	item *inlineItem
	x    dimen.Dimen // offset from the start of the line
}

type line struct {
	items []lineItem
	width dimen.Dimen // extent of the content, without trailing space
}

// lineBreaker fills lines greedily: an item goes to the next line if it
// does not fit and there is a wrap opportunity before it.
//
// Every finished line is handed to emit, which returns the width available
// to the next one. Float items are handed to float, which returns the width
// left for the current line; a float met after content waits for the end of
// the line.
type lineBreaker struct {
	width    dimen.Dimen
	cur      line
	x        dimen.Dimen
	space    dimen.Dimen
	content  bool
	emit     func(line) dimen.Dimen
	float    func(*inlineItem) dimen.Dimen
	deferred []*inlineItem
}

func (lb *lineBreaker) run(items []inlineItem) {
	for i := range items {
		lb.add(&items[i])
	}
	if len(lb.cur.items) > 0 {
		lb.finish()
	}
	lb.placeFloats()
}

func (lb *lineBreaker) finish() {
	lb.width = lb.emit(lb.cur)
	lb.cur = line{}
}

func (lb *lineBreaker) placeFloats() {
	for _, it := range lb.deferred {
		lb.width = lb.float(it)
	}
	lb.deferred = lb.deferred[:0]
}

func (lb *lineBreaker) place(it *inlineItem, x dimen.Dimen) {
	lb.cur.items = append(lb.cur.items, lineItem{item: it, x: x})
}

func (lb *lineBreaker) add(it *inlineItem) {
	switch it.kind {
	case openItem:
		lb.x += lb.space
		lb.space = 0
		lb.place(it, lb.x)
		lb.x += it.width
	case closeItem:
		lb.place(it, lb.x)
		lb.x += it.width
		lb.cur.width = lb.x
	case oofItem:
		lb.place(it, lb.x+lb.space)
	case floatItem:
		lb.deferred = append(lb.deferred, it)
		if !lb.content {
			lb.placeFloats()
		}
	case spaceItem:
		if !it.collapsible {
			lb.space += it.space
		} else if lb.content {
			lb.space = dimen.Max(lb.space, it.space)
		}
	default:
		if lb.content && it.breakBefore && lb.x+lb.space+it.width > lb.width {
			lb.breakLine()
		}
		lb.x += lb.space
		lb.place(it, lb.x)
		lb.x += it.width
		lb.space = it.space
		lb.content = true
		lb.cur.width = lb.x
		if it.brk {
			lb.breakLine()
		}
	}
}

// breakLine ends the current line. Start edges of inline boxes at the end of
// the line move to the next line, together with the content they precede.
func (lb *lineBreaker) breakLine() {
	k := len(lb.cur.items)
	for k > 0 && lb.cur.items[k-1].item.kind == openItem {
		k--
	}
	carried := append([]lineItem(nil), lb.cur.items[k:]...)
	lb.cur.items = lb.cur.items[:k]
	lb.finish()
	lb.x, lb.space, lb.content = 0, 0, false
	lb.placeFloats()
	for _, c := range carried {
		lb.place(c.item, lb.x)
		lb.x += c.item.width
	}
}

// --- Placing lines ---------------------------------------------------------

type openBox struct {
	box   boxtree.BoxID
	start dimen.Dimen
}

// placeLine computes the height and baseline of a line, aligns it
// horizontally and creates fragments for its items.
func (e *engine) placeLine(l line, x0, y, width dimen.Dimen, s *css.ComputedStyle,
	frags map[boxtree.BoxID]frame.Rect) boxtree.LineBox {
	//
	ascent, descent := e.strut(s)
	var tall dimen.Dimen
	for _, li := range l.items {
		switch it := li.item; it.kind {
		case textItem:
			ascent = dimen.Max(ascent, it.ascent)
			descent = dimen.Max(descent, it.descent)
		case atomicItem:
			if it.valign == css.VAlignTop || it.valign == css.VAlignBottom {
				tall = dimen.Max(tall, it.ascent)
			} else {
				ascent = dimen.Max(ascent, it.ascent)
			}
		}
	}
	h := dimen.Max(ascent+descent, tall)
	baseline := y + ascent
	var offset dimen.Dimen
	if free := width - l.width; free > 0 {
		switch s.TextAlign {
		case css.TextAlignRight:
			offset = free
		case css.TextAlignCenter:
			offset = free / 2
		}
	}
	lb := boxtree.LineBox{
		Rect:     frame.Rect{X: x0, Y: y, W: width, H: h},
		Baseline: baseline,
	}
	add := func(box boxtree.BoxID, text string, r frame.Rect) {
		lb.Fragments = append(lb.Fragments, boxtree.Fragment{Box: box, Text: text, Rect: r})
		if u, ok := frags[box]; ok {
			frags[box] = union(u, r)
		} else {
			frags[box] = r
		}
	}
	var open []openBox
	closeBox := func(ob openBox, end dimen.Dimen) {
		c := e.tree.Box(ob.box)
		fa, fd := e.text.Extents(intrinsic.TextFont(c.Style))
		pad, border := e.paddingAndBorder(c, width)
		top := baseline - fa - pad.Top - border.Top
		add(ob.box, "", frame.Rect{
			X: ob.start, Y: top,
			W: dimen.NonNeg(end - ob.start), H: fa + fd + pad.Vertical() + border.Vertical(),
		})
	}
	var prev *inlineItem
	for _, li := range l.items {
		it := li.item
		x := x0 + offset + li.x
		switch it.kind {
		case textItem:
			r := frame.Rect{X: x, Y: baseline - it.fontAscent, W: it.width, H: it.fontAscent + it.fontDescent}
			n := len(lb.Fragments)
			if prev != nil && prev.kind == textItem && prev.box == it.box && n > 0 && lb.Fragments[n-1].Box == it.box {
				f := &lb.Fragments[n-1]
				f.Text = joinText(f.Text, it.text, prev.space)
				f.Rect = union(f.Rect, r)
				frags[it.box] = union(frags[it.box], r)
			} else {
				add(it.box, it.text, r)
			}
		case atomicItem:
			c := e.tree.Box(it.box)
			top := baseline - it.ascent
			switch it.valign {
			case css.VAlignTop:
				top = y
			case css.VAlignBottom:
				top = y + h - it.ascent
			}
			e.moveTo(it.box, x+c.Dim.Margin.Left, top+c.Dim.Margin.Top)
			add(it.box, "", c.Dim.BorderBox())
		case openItem:
			open = append(open, openBox{box: it.box, start: x + it.margin})
		case closeItem:
			start := x0 + offset
			for i := len(open) - 1; i >= 0; i-- {
				if open[i].box == it.box {
					start = open[i].start
					open = append(open[:i], open[i+1:]...)
					break
				}
			}
			closeBox(openBox{box: it.box, start: start}, x+it.width-it.margin)
		case oofItem:
			e.static[it.box] = dimen.Point{X: x, Y: y}
		}
		if it.kind == textItem || it.kind == atomicItem {
			prev = it
		}
	}
	for _, ob := range open { // continued on the next line
		closeBox(ob, x0+offset+l.width)
	}
	return lb
}

func joinText(a, b string, space dimen.Dimen) string {
	if space > 0 {
		return strings.Join([]string{a, b}, " ")
	}
	return a + b
}

func union(a, b frame.Rect) frame.Rect {
	x := dimen.Min(a.X, b.X)
	y := dimen.Min(a.Y, b.Y)
	return frame.Rect{
		X: x,
		Y: y,
		W: dimen.Max(a.Right(), b.Right()) - x,
		H: dimen.Max(a.Bottom(), b.Bottom()) - y,
	}
}
