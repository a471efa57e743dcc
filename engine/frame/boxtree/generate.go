package boxtree

// This module has knowledge about:
// - which kind of box to create for each DOM node
// - which content model a box imposes on its children

import (
	"strconv"
	"strings"

	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
)

// StyleLookup is a total mapping from DOM nodes to computed styles.
// *cssom.Styles implements it.
type StyleLookup interface {
	StyleFor(dom.NodeID) *css.ComputedStyle
}

// Errors returned by Build.
var (
	ErrDOMIsNull         = core.Error(core.EMISSING, "DOM is null")
	ErrNoDocumentElement = core.Error(core.EMISSING, "DOM has no document element")
	ErrNoBoxTreeCreated  = core.Error(core.EINVALID, "no box tree created")
)

// Build creates a box tree from a DOM and the computed styles of its nodes.
//
// A DOM node without a computed style is a contract violation and results
// in an error with code core.EINVALID.
func Build(doc *dom.Tree, styles StyleLookup) (tree *Tree, err error) {
	if doc == nil || styles == nil {
		return nil, ErrDOMIsNull
	}
	de, ok := doc.DocumentElement()
	if !ok {
		return nil, ErrNoDocumentElement
	}
	defer core.Recover(&err)
	tracer().Debugf("Creating box tree")
	b := &builder{doc: doc, styles: styles}
	protos := b.generate(de)
	if len(protos) != 1 || protos[0].box.Kind == frame.TextRun {
		tracer().Errorf("No box created for document element")
		return nil, ErrNoBoxTreeCreated
	}
	root := protos[0]
	root.box.OutOfFlow, root.box.Floating = false, false
	if !root.box.IsBlockLevel() {
		root.box.Kind = frame.BlockContainer // root is always blockified
	}
	b.normalize(root)
	tree = &Tree{dom: doc}
	tree.root = tree.emit(root)
	tracer().Infof("box tree has %d boxes", tree.Len())
	return tree, nil
}

// proto is a box under construction. Fixing up the box structure is much
// simpler with pointer-linked nodes; the finished tree is copied into an arena.
type proto struct {
	box      LayoutBox
	children []*proto
}

// isDisplaced is true for boxes taken out of the flow of their siblings:
// absolutely positioned boxes and floats.
func (p *proto) isDisplaced() bool {
	return p.box.OutOfFlow || p.box.Floating
}

func (p *proto) isBlockLevel() bool {
	return !p.isDisplaced() && p.box.IsBlockLevel()
}

func (p *proto) isTableInternal() bool {
	if p.isDisplaced() {
		return false
	}
	k := p.box.Kind
	return k == frame.TableRowGroup || k == frame.TableRow || k == frame.TableCell
}

func (p *proto) isText() bool {
	return p.box.Kind == frame.TextRun && !p.box.HardBreak
}

// isCollapsibleSpace is true for text consisting of collapsible white space only.
func (p *proto) isCollapsibleSpace() bool {
	if !p.isText() || !p.box.Style.WhiteSpace.Collapses() {
		return false
	}
	return strings.TrimLeft(p.box.Text, " \t\n\r\f") == ""
}

// whitespaceOnly is true if a run of boxes has no in-flow content besides
// collapsible white space.
func whitespaceOnly(run []*proto) bool {
	for _, p := range run {
		if !p.isDisplaced() && !p.isCollapsibleSpace() {
			return false
		}
	}
	return true
}

func displaced(run []*proto) []*proto {
	var oof []*proto
	for _, p := range run {
		if p.isDisplaced() {
			oof = append(oof, p)
		}
	}
	return oof
}

func (t *Tree) emit(p *proto) BoxID {
	id := t.add(p.box)
	children := make([]BoxID, 0, len(p.children))
	for _, ch := range p.children {
		children = append(children, t.emit(ch))
	}
	t.boxes[id].Children = children
	return id
}

// --- Generating boxes ------------------------------------------------------

type builder struct {
	doc    *dom.Tree
	styles StyleLookup
}

func (b *builder) style(id dom.NodeID) *css.ComputedStyle {
	s := b.styles.StyleFor(id)
	if s == nil {
		core.Panic(core.EINVALID, "no computed style for node %d <%s>", id, b.doc.Name(id))
	}
	return s
}

// replaced lists elements with replaced content and their default natural size.
var replaced = map[string]dimen.Point{
	"img":    {},
	"video":  {X: 300 * dimen.PX, Y: 150 * dimen.PX},
	"canvas": {X: 300 * dimen.PX, Y: 150 * dimen.PX},
	"iframe": {X: 300 * dimen.PX, Y: 150 * dimen.PX},
	"embed":  {X: 300 * dimen.PX, Y: 150 * dimen.PX},
	"object": {X: 300 * dimen.PX, Y: 150 * dimen.PX},
}

// generate creates the boxes for a DOM node and its descendants. A node may
// generate no box (display: none), one box or, for display: contents, the
// boxes of its children.
func (b *builder) generate(id dom.NodeID) []*proto {
	n := b.doc.Node(id)
	switch n.Kind {
	case dom.TextNode:
		if n.Text == "" {
			return nil
		}
		return []*proto{{box: LayoutBox{Kind: frame.TextRun, Node: id, Style: b.style(id), Text: n.Text}}}
	case dom.ElementNode:
	default:
		return nil // comments and doctype nodes never generate boxes
	}
	s := b.style(id)
	switch {
	case s.Display.Contains(css.DisplayNone):
		tracer().Debugf("removing node for <%s> with display=none", n.Tag)
		return nil
	case s.Display.Contains(css.TableColumnMode):
		return nil
	case s.Display.Contains(css.ContentsMode):
		return b.generateChildren(id)
	case n.Tag == "br":
		return []*proto{{box: LayoutBox{Kind: frame.TextRun, Node: id, Style: s, HardBreak: true}}}
	}
	p := &proto{box: LayoutBox{
		Kind:      kindFor(s),
		Node:      id,
		Style:     s,
		OutOfFlow: s.Position.IsOutOfFlow(),
		Floating:  s.Float != css.FloatNone && !s.Position.IsOutOfFlow(),
		ColSpan:   1,
		RowSpan:   1,
	}}
	if p.box.Kind == frame.TableCell {
		p.box.ColSpan = b.intAttr(id, "colspan", 1, 1000)
		p.box.RowSpan = b.intAttr(id, "rowspan", 1, 65534)
	}
	if natural, ok := replaced[n.Tag]; ok {
		p.box.Replaced = true
		p.box.Natural = dimen.Point{
			X: b.pxAttr(id, "width", natural.X),
			Y: b.pxAttr(id, "height", natural.Y),
		}
		return []*proto{p} // replaced content has no boxes inside
	}
	p.children = b.generateChildren(id)
	return []*proto{p}
}

func (b *builder) generateChildren(id dom.NodeID) []*proto {
	var children []*proto
	for _, ch := range b.doc.Node(id).Children {
		children = append(children, b.generate(ch)...)
	}
	return children
}

// kindFor selects the kind of the principal box for an element.
func kindFor(s *css.ComputedStyle) frame.BoxKind {
	d := s.Display
	switch {
	case d.Contains(css.TableCellMode):
		return frame.TableCell
	case d.Contains(css.TableRowMode):
		return frame.TableRow
	case d.Contains(css.TableRowGroupMode):
		return frame.TableRowGroup
	case d.Contains(css.TableCaptionMode):
		return frame.BlockContainer
	}
	blockified := s.Position.IsOutOfFlow() || s.Float != css.FloatNone
	inner := d.Inner()
	if d.IsInlineLevel() && !blockified {
		if inner == css.FlowMode {
			return frame.InlineContainer
		}
		return frame.InlineBlock
	}
	switch inner {
	case css.FlexMode:
		return frame.FlexContainer
	case css.GridMode:
		return frame.GridContainer
	case css.TableMode:
		return frame.TableWrapper
	}
	return frame.BlockContainer
}

func (b *builder) intAttr(id dom.NodeID, key string, lo, hi int) int {
	v, ok := b.doc.Attr(id, key)
	if !ok {
		return lo
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < lo {
		return lo
	}
	return min(n, hi)
}

func (b *builder) pxAttr(id dom.NodeID, key string, deflt dimen.Dimen) dimen.Dimen {
	v, ok := b.doc.Attr(id, key)
	if !ok {
		return deflt
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil || f < 0 {
		return deflt
	}
	return dimen.Px(f)
}
