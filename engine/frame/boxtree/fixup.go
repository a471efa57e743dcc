package boxtree

import (
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
)

// normalize fixes up the children of a box according to its formatting,
// then descends. Parents are fixed before their children, as fixing a parent
// may change the kind of a child.
func (b *builder) normalize(p *proto) {
	switch p.box.Formatting() {
	case BlockFormatting:
		p.children = b.fixBlockContent(p)
	case InlineFormatting:
		p.children = b.fixInlineContent(p)
	case FlexFormatting:
		p.children = b.fixItems(p, frame.FlexItem)
	case GridFormatting:
		p.children = b.fixItems(p, frame.GridItem)
	case TableFormatting:
		p.children = b.fixTable(p)
	case RowGroupFormatting:
		p.children = b.fixRowGroup(p)
	case RowFormatting:
		p.children = b.fixRow(p)
	}
	for _, ch := range p.children {
		b.normalize(ch)
	}
}

func anonymous(kind frame.BoxKind, parent *css.ComputedStyle, display css.DisplayMode) *proto {
	s := css.AnonymousStyle(parent)
	s.Display = display
	return &proto{box: LayoutBox{Kind: kind, Node: dom.None, Style: s, ColSpan: 1, RowSpan: 1}}
}

// inlineRoot wraps inline-level content into an anonymous InlineContainer,
// establishing an inline formatting context.
func inlineRoot(parent *proto, content []*proto) *proto {
	root := anonymous(frame.InlineContainer, parent.box.Style, css.InlineMode|css.FlowMode)
	root.children = content
	return root
}

// fixBlockContent makes the children of a block container either all
// block-level, or a single inline formatting root.
func (b *builder) fixBlockContent(p *proto) []*proto {
	kids := b.wrapStrayTableParts(p, p.children, false)
	hasBlock := false
	for _, k := range kids {
		hasBlock = hasBlock || k.isBlockLevel()
	}
	if !hasBlock {
		if len(kids) == 1 && kids[0].box.IsInlineFormattingRoot() {
			return kids
		}
		if whitespaceOnly(kids) {
			return displaced(kids)
		}
		return []*proto{inlineRoot(p, kids)}
	}
	var out, run []*proto
	flush := func() {
		if whitespaceOnly(run) {
			out = append(out, displaced(run)...)
		} else {
			anon := anonymous(frame.AnonymousBlock, p.box.Style, css.BlockMode|css.FlowMode)
			anon.children = []*proto{inlineRoot(anon, run)}
			tracer().Debugf("wrapping %d inline boxes into anonymous block", len(run))
			out = append(out, anon)
		}
		run = nil
	}
	for _, k := range kids {
		if k.isBlockLevel() {
			flush()
			out = append(out, k)
		} else {
			run = append(run, k)
		}
	}
	flush()
	return out
}

// fixInlineContent turns block-level children of inline boxes into atomic
// inlines. Text directly inside an inline formatting root is wrapped into
// anonymous inline boxes.
func (b *builder) fixInlineContent(p *proto) []*proto {
	kids := b.wrapStrayTableParts(p, p.children, true)
	for _, k := range kids {
		if k.isBlockLevel() {
			tracer().Debugf("block-in-inline: %s laid out as atomic inline", k.box.Kind)
			k.box.Kind = frame.InlineBlock
		}
	}
	if !p.box.IsInlineFormattingRoot() {
		return kids
	}
	var out []*proto
	var text *proto
	for _, k := range kids {
		if k.box.Kind != frame.TextRun {
			text = nil
			out = append(out, k)
			continue
		}
		if text == nil {
			text = anonymous(frame.AnonymousInline, p.box.Style, css.InlineMode|css.FlowMode)
			out = append(out, text)
		}
		text.children = append(text.children, k)
	}
	return out
}

// fixItems blockifies the children of flex and grid containers. Runs of text
// are wrapped into anonymous items; runs of white space are dropped.
func (b *builder) fixItems(p *proto, kind frame.BoxKind) []*proto {
	var out, run []*proto
	flush := func() {
		if !whitespaceOnly(run) {
			item := anonymous(kind, p.box.Style, css.BlockMode|css.FlowMode)
			item.children = run
			out = append(out, item)
		}
		run = nil
	}
	for _, k := range p.children {
		switch {
		case k.box.OutOfFlow:
			flush()
			out = append(out, k)
		case k.box.Kind == frame.TextRun:
			run = append(run, k)
		default:
			flush()
			k.box.Kind = kind
			k.box.Floating = false // float does not apply to items
			out = append(out, k)
		}
	}
	flush()
	return out
}

// --- Table fixup -----------------------------------------------------------

// wrapStrayTableParts wraps runs of table-internal boxes outside of a table
// into an anonymous table.
func (b *builder) wrapStrayTableParts(p *proto, kids []*proto, inline bool) []*proto {
	var out []*proto
	var table *proto
	for i, k := range kids {
		switch {
		case k.isTableInternal():
			if table == nil {
				if inline {
					table = anonymous(frame.InlineBlock, p.box.Style, css.InlineMode|css.TableMode)
				} else {
					table = anonymous(frame.TableWrapper, p.box.Style, css.BlockMode|css.TableMode)
				}
				tracer().Debugf("table fixup: anonymous table for stray %s", k.box.Kind)
				out = append(out, table)
			}
			table.children = append(table.children, k)
		case table != nil && k.isCollapsibleSpace() && nextIsTableInternal(kids[i+1:]):
			table.children = append(table.children, k)
		default:
			table = nil
			out = append(out, k)
		}
	}
	return out
}

func nextIsTableInternal(kids []*proto) bool {
	for _, k := range kids {
		if !k.isCollapsibleSpace() {
			return k.isTableInternal()
		}
	}
	return false
}

// fixTable wraps rows, cells and other content of a table into anonymous row
// groups. Captions and row groups are kept in document order.
func (b *builder) fixTable(p *proto) []*proto {
	var out, run []*proto
	flush := func() {
		if len(run) > 0 {
			group := anonymous(frame.TableRowGroup, p.box.Style, css.TableRowGroupMode)
			group.children = run
			out = append(out, group)
		}
		run = nil
	}
	for _, k := range p.children {
		switch {
		case k.box.OutOfFlow, k.box.Kind == frame.TableRowGroup,
			k.box.Style.Display.Contains(css.TableCaptionMode):
			flush()
			out = append(out, k)
		case k.isCollapsibleSpace():
		default:
			run = append(run, k)
		}
	}
	flush()
	return out
}

// fixRowGroup wraps non-row content of a row group into anonymous rows.
func (b *builder) fixRowGroup(p *proto) []*proto {
	return wrapRuns(p, frame.TableRow, func(s *css.ComputedStyle) *proto {
		return anonymous(frame.TableRow, s, css.TableRowMode)
	})
}

// fixRow wraps non-cell content of a row into anonymous cells.
func (b *builder) fixRow(p *proto) []*proto {
	return wrapRuns(p, frame.TableCell, func(s *css.ComputedStyle) *proto {
		return anonymous(frame.TableCell, s, css.TableCellMode|css.FlowRoot)
	})
}

func wrapRuns(p *proto, keep frame.BoxKind, wrapper func(*css.ComputedStyle) *proto) []*proto {
	var out []*proto
	var wrap *proto
	for _, k := range p.children {
		switch {
		case k.box.Kind == keep && !k.box.OutOfFlow:
			wrap = nil
			out = append(out, k)
		case k.isCollapsibleSpace():
			if wrap != nil {
				wrap.children = append(wrap.children, k)
			}
		default:
			if wrap == nil {
				wrap = wrapper(p.box.Style)
				out = append(out, wrap)
			}
			wrap.children = append(wrap.children, k)
		}
	}
	return out
}
