package intrinsic

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
)

// lineAccumulator collects the widths of inline content, as if it were set
// on lines which are broken only at forced breaks.
type lineAccumulator struct {
	line     dimen.Dimen // current line, without hanging white space
	trailing dimen.Dimen // white space pending after the last item
	longest  dimen.Dimen // widest line so far
	widest   dimen.Dimen // widest unbreakable item so far
}

func (acc *lineAccumulator) item(minw, maxw, space dimen.Dimen) {
	acc.line += acc.trailing + maxw
	acc.trailing = space
	acc.widest = dimen.Max(acc.widest, minw)
	acc.longest = dimen.Max(acc.longest, acc.line)
}

func (acc *lineAccumulator) edge(d dimen.Dimen) {
	if d != 0 {
		acc.item(0, d, 0)
	}
}

func (acc *lineAccumulator) breakLine() {
	acc.line, acc.trailing = 0, 0
}

func (acc *lineAccumulator) sizes() frame.IntrinsicSizes {
	return frame.IntrinsicSizes{MinContent: acc.widest, MaxContent: acc.longest}
}

// inlineSizes measures inline content: min-content is the widest unbreakable
// run or atomic inline, max-content the widest line without soft wraps.
func (m *Measurer) inlineSizes(id boxtree.BoxID) frame.IntrinsicSizes {
	var acc lineAccumulator
	m.walkInline(id, &acc)
	return acc.sizes()
}

func (m *Measurer) walkInline(id boxtree.BoxID, acc *lineAccumulator) {
	b := m.tree.Box(id)
	if b.OutOfFlow {
		return
	}
	switch b.Kind {
	case frame.TextRun:
		if b.HardBreak {
			acc.breakLine()
			return
		}
		for _, seg := range m.text.Segments(b.Text, TextFont(b.Style), TextWhiteSpace(b.Style)) {
			acc.item(seg.Width, seg.Width, seg.Space)
			if seg.HardBreak {
				acc.breakLine()
			}
		}
	case frame.InlineContainer, frame.AnonymousInline:
		s := b.Style
		acc.edge(m.fixedOr0(s.Margin.Left) + m.fixedOr0(s.Border.Left) + m.fixedOr0(s.Padding.Left))
		for _, ch := range b.Children {
			m.walkInline(ch, acc)
		}
		acc.edge(m.fixedOr0(s.Padding.Right) + m.fixedOr0(s.Border.Right) + m.fixedOr0(s.Margin.Right))
	default: // atomic inline
		is := m.Measure(id, frame.MarginBox)
		acc.item(is.MinContent, is.MaxContent, 0)
	}
}
