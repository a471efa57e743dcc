package intrinsic

import (
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/text"
)

// Measurer computes intrinsic sizes for the boxes of a box tree.
// It is not safe for concurrent use.
type Measurer struct {
	tree *boxtree.Tree
	text text.Measurer
	vp   css.Viewport
	memo map[memoKey]frame.IntrinsicSizes
}

type memoKey struct {
	id   boxtree.BoxID
	mode frame.MeasureMode
}

// New creates a measurer for a box tree. Text is measured with tm, viewport
// units are resolved against vp.
func New(tree *boxtree.Tree, tm text.Measurer, vp css.Viewport) *Measurer {
	return &Measurer{
		tree: tree,
		text: tm,
		vp:   vp,
		memo: make(map[memoKey]frame.IntrinsicSizes),
	}
}

// Measure returns the intrinsic sizes of a box. With mode frame.MarginBox,
// horizontal padding, border and margins are included, as far as they do not
// depend on the containing block.
//
// With mode frame.Contents, width, min-width and max-width of the box itself
// are ignored, which yields the content size suggestion for automatic
// minimum sizes of flex items.
//
// The result always satisfies MinContent ≤ MaxContent.
func (m *Measurer) Measure(id boxtree.BoxID, mode frame.MeasureMode) frame.IntrinsicSizes {
	k := memoKey{id, mode}
	if is, ok := m.memo[k]; ok {
		return is
	}
	b := m.tree.Box(id)
	var is frame.IntrinsicSizes
	switch mode {
	case frame.MarginBox:
		is = m.Measure(id, frame.ContentBox)
		if !isInline(b.Kind) {
			is = is.Add(m.Decoration(b.Style, true))
		}
	case frame.Contents:
		is = m.contentSizes(id, b, false)
	default:
		is = m.contentSizes(id, b, true)
	}
	is = is.Normalize()
	m.memo[k] = is
	return is
}

func isInline(k frame.BoxKind) bool {
	return k == frame.TextRun || k == frame.InlineContainer || k == frame.AnonymousInline
}

func (m *Measurer) contentSizes(id boxtree.BoxID, b *boxtree.LayoutBox, own bool) frame.IntrinsicSizes {
	if own && !isInline(b.Kind) {
		if w, ok := m.Fixed(b.Style.Width); ok {
			w = m.contentWidth(b.Style, w)
			return m.clamp(b.Style, frame.IntrinsicSizes{MinContent: w, MaxContent: w})
		}
	}
	var is frame.IntrinsicSizes
	switch b.Kind {
	case frame.TextRun, frame.InlineContainer, frame.AnonymousInline:
		is = m.inlineSizes(id)
	case frame.TableRow:
		for _, ch := range b.Children {
			c := m.contribution(ch)
			is.MinContent += c.MinContent
			is.MaxContent += c.MaxContent
		}
	case frame.TableRowGroup:
		for _, ch := range b.Children {
			is = is.Union(m.Measure(ch, frame.ContentBox))
		}
	case frame.BlockContainer, frame.AnonymousBlock, frame.InlineBlock,
		frame.FlexContainer, frame.FlexItem, frame.GridContainer, frame.GridItem,
		frame.TableWrapper, frame.TableCell:
		if b.Replaced {
			w := m.naturalWidth(b)
			return frame.IntrinsicSizes{MinContent: w, MaxContent: w}
		}
		switch b.Formatting() {
		case boxtree.FlexFormatting:
			is = m.flexSizes(b)
		case boxtree.GridFormatting:
			is = m.gridSizes(b)
		case boxtree.TableFormatting:
			is = m.tableSizes(id, b)
		default:
			is = m.blockSizes(b)
		}
	}
	if !own {
		return is
	}
	return m.clamp(b.Style, is)
}

// contribution is the margin-box size a child contributes to its parent.
func (m *Measurer) contribution(id boxtree.BoxID) frame.IntrinsicSizes {
	b := m.tree.Box(id)
	if b.OutOfFlow {
		return frame.IntrinsicSizes{}
	}
	if !isInline(b.Kind) && b.Style.Width.IsPercent() {
		return frame.IntrinsicSizes{}
	}
	return m.Measure(id, frame.MarginBox)
}

func (m *Measurer) blockSizes(b *boxtree.LayoutBox) frame.IntrinsicSizes {
	var is frame.IntrinsicSizes
	for _, ch := range b.Children {
		is = is.Union(m.contribution(ch))
	}
	return is
}

func (m *Measurer) naturalWidth(b *boxtree.LayoutBox) dimen.Dimen {
	if h, ok := m.Fixed(b.Style.Height); ok && b.Natural.Y > 0 {
		return dimen.MulDiv(b.Natural.X, int64(h), int64(b.Natural.Y))
	}
	return b.Natural.X
}

// --- Style helpers ---------------------------------------------------------

// Fixed resolves a dimension which does not depend on the containing block.
// Percentages and auto do not resolve.
func (m *Measurer) Fixed(d css.DimenT) (dimen.Dimen, bool) {
	if d.IsPercent() {
		return 0, false
	}
	return d.Resolve(0, m.vp)
}

func (m *Measurer) fixedOr0(d css.DimenT) dimen.Dimen {
	x, _ := m.Fixed(d)
	return x
}

// Decoration returns the horizontal padding and border of a box, and
// optionally its margins. Percentages and auto count as zero.
func (m *Measurer) Decoration(s *css.ComputedStyle, margins bool) dimen.Dimen {
	d := m.fixedOr0(s.Padding.Left) + m.fixedOr0(s.Padding.Right) +
		m.fixedOr0(s.Border.Left) + m.fixedOr0(s.Border.Right)
	if margins {
		d += m.fixedOr0(s.Margin.Left) + m.fixedOr0(s.Margin.Right)
	}
	return d
}

// contentWidth converts a specified width to a content-box width.
func (m *Measurer) contentWidth(s *css.ComputedStyle, w dimen.Dimen) dimen.Dimen {
	if s.BoxSizing == css.BorderBox {
		w -= m.Decoration(s, false)
	}
	return dimen.NonNeg(w)
}

// clamp applies min-width and max-width to content-box sizes.
func (m *Measurer) clamp(s *css.ComputedStyle, is frame.IntrinsicSizes) frame.IntrinsicSizes {
	if mx, ok := m.Fixed(s.MaxWidth); ok {
		mx = m.contentWidth(s, mx)
		is.MinContent = dimen.Min(is.MinContent, mx)
		is.MaxContent = dimen.Min(is.MaxContent, mx)
	}
	if mn, ok := m.Fixed(s.MinWidth); ok {
		mn = m.contentWidth(s, mn)
		is.MinContent = dimen.Max(is.MinContent, mn)
		is.MaxContent = dimen.Max(is.MaxContent, mn)
	}
	return is
}

// TextFont returns the font for text of a given style.
func TextFont(s *css.ComputedStyle) text.Font {
	return text.Font{Family: s.FontFamily, Size: s.FontSize}
}

// TextWhiteSpace maps white space handling of a style to the text package.
func TextWhiteSpace(s *css.ComputedStyle) text.WhiteSpace {
	switch s.WhiteSpace {
	case css.WhiteSpaceNoWrap:
		return text.NoWrap
	case css.WhiteSpacePre:
		return text.Pre
	case css.WhiteSpacePreWrap:
		return text.PreWrap
	case css.WhiteSpacePreLine:
		return text.PreLine
	}
	return text.Normal
}
