package boxtree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/stretchr/testify/assert"
)

func TestDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div><p style="display:none">x<b>y</b></p><p>z</p></div></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.BlockContainer}, childKinds(boxes, div))
	for _, b := range []string{"b", "head"} {
		assert.Empty(t, boxes.BoxesFor(element(doc, b)), "<%s> must not generate a box", b)
	}
	t.Logf("\n%s", boxes)
}

func TestAnonymousBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div>Hello <b>World</b><p>para</p>tail</div></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.AnonymousBlock, frame.BlockContainer, frame.AnonymousBlock},
		childKinds(boxes, div))
	anon := boxes.Box(boxes.Box(div).Children[0])
	assert.Equal(t, dom.None, anon.Node)
	assert.NotNil(t, anon.Style)
	assert.Len(t, anon.Children, 1)
	ifc := boxes.Box(anon.Children[0])
	assert.True(t, ifc.IsInlineFormattingRoot())
	assert.Equal(t, []frame.BoxKind{frame.AnonymousInline, frame.InlineContainer},
		childKinds(boxes, anon.Children[0]))
	p := principal(t, boxes, doc, "p")
	assert.Equal(t, []frame.BoxKind{frame.InlineContainer}, childKinds(boxes, p),
		"block with inline content only holds a single inline root")
}

func TestWhitespaceBetweenBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, "<html><body><div>\n  <p>a</p>\n  <p>b</p>\n</div></body></html>")
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.BlockContainer, frame.BlockContainer}, childKinds(boxes, div))
}

func TestFlexBlockification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div style="display:flex"> <span>a</span> text <p>b</p> </div></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, frame.FlexContainer, boxes.Box(div).Kind)
	assert.Equal(t, []frame.BoxKind{frame.FlexItem, frame.FlexItem, frame.FlexItem}, childKinds(boxes, div))
	span := principal(t, boxes, doc, "span")
	assert.Equal(t, frame.FlexItem, boxes.Box(span).Kind, "inline child is blockified")
	anon := boxes.Box(boxes.Box(div).Children[1])
	assert.Equal(t, dom.None, anon.Node)
	//
	boxes, doc = buildBoxes(t, `<html><body><div style="display:grid"><em>a</em><em>b</em></div></body></html>`)
	div = principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.GridItem, frame.GridItem}, childKinds(boxes, div))
}

func TestTableFixup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div><span style="display:table-cell">c1</span> <span style="display:table-cell">c2</span></div></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.TableWrapper}, childKinds(boxes, div))
	table := boxes.Box(div).Children[0]
	assert.Equal(t, []frame.BoxKind{frame.TableRowGroup}, childKinds(boxes, table))
	group := boxes.Box(table).Children[0]
	assert.Equal(t, []frame.BoxKind{frame.TableRow}, childKinds(boxes, group))
	row := boxes.Box(group).Children[0]
	assert.Equal(t, []frame.BoxKind{frame.TableCell, frame.TableCell}, childKinds(boxes, row))
	//
	boxes, doc = buildBoxes(t, `<html><body><table><tr><td>a</td><td colspan="2">b</td></tr></table></body></html>`)
	tbl := principal(t, boxes, doc, "table")
	assert.Equal(t, frame.TableWrapper, boxes.Box(tbl).Kind)
	rows := boxes.BoxesFor(element(doc, "tr"))
	assert.Len(t, rows, 1)
	cells := boxes.Box(rows[0]).Children
	assert.Len(t, cells, 2)
	assert.Equal(t, 2, boxes.Box(cells[1]).ColSpan)
	assert.Equal(t, 1, boxes.Box(cells[0]).RowSpan)
}

func TestContentsAndBreaks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div><section style="display:contents"><p>x</p></section></div></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.BlockContainer}, childKinds(boxes, div))
	assert.Empty(t, boxes.BoxesFor(element(doc, "section")))
	//
	boxes, doc = buildBoxes(t, `<html><body><p>a<br>b</p></body></html>`)
	br := boxes.BoxesFor(element(doc, "br"))
	assert.Len(t, br, 1)
	assert.Equal(t, frame.TextRun, boxes.Box(br[0]).Kind)
	assert.True(t, boxes.Box(br[0]).HardBreak)
}

func TestBlockInInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div><span>a<div id="inner">b</div></span></div></body></html>`)
	span := principal(t, boxes, doc, "span")
	assert.Equal(t, []frame.BoxKind{frame.TextRun, frame.InlineBlock}, childKinds(boxes, span))
}

func TestReplacedAndPositioned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><p><img width="120" height="40"><span style="position:absolute">x</span></p></body></html>`)
	img := boxes.Box(principal(t, boxes, doc, "img"))
	assert.Equal(t, frame.InlineBlock, img.Kind)
	assert.True(t, img.Replaced)
	assert.Equal(t, 120*dimen.PX, img.Natural.X)
	span := boxes.Box(principal(t, boxes, doc, "span"))
	assert.True(t, span.OutOfFlow)
	assert.Equal(t, frame.BlockContainer, span.Kind, "absolute positioning blockifies")
}

func TestFloats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><div><i style="float:left">a</i> <p>b</p></div><section style="display:flex"><b style="float:right">c</b></section></body></html>`)
	div := principal(t, boxes, doc, "div")
	assert.Equal(t, []frame.BoxKind{frame.BlockContainer, frame.BlockContainer}, childKinds(boxes, div),
		"float does not open an anonymous block")
	i := boxes.Box(principal(t, boxes, doc, "i"))
	assert.True(t, i.Floating)
	assert.False(t, i.OutOfFlow)
	b := boxes.Box(principal(t, boxes, doc, "b"))
	assert.False(t, b.Floating, "float does not apply to flex items")
	assert.Equal(t, frame.FlexItem, b.Kind)
}

func TestMissingStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body><p>x</p></body></html>`))
	assert.NoError(t, err)
	_, err = boxtree.Build(doc, noStyles{})
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = boxtree.Build(nil, noStyles{})
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------

type noStyles struct{}

func (noStyles) StyleFor(dom.NodeID) *css.ComputedStyle { return nil }

func buildBoxes(t *testing.T, src string) (*boxtree.Tree, *dom.Tree) {
	doc, err := dom.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	c := cssom.NewCSSOM(douceuradapter.ParseStyleAttribute)
	ua, err := douceuradapter.Parse(cssom.UserAgentCSS)
	if err != nil {
		t.Fatal(err)
	}
	if err = c.AddStylesheet(ua, cssom.UserAgent); err != nil {
		t.Fatal(err)
	}
	styles, err := c.Style(doc)
	if err != nil {
		t.Fatal(err)
	}
	boxes, err := boxtree.Build(doc, styles)
	if err != nil {
		t.Fatalf("cannot build box tree: %v", err)
	}
	return boxes, doc
}

func element(doc *dom.Tree, tag string) dom.NodeID {
	found := dom.None
	doc.Walk(doc.Root(), func(id dom.NodeID, n *dom.Node) bool {
		if found == dom.None && n.Kind == dom.ElementNode && n.Tag == tag {
			found = id
		}
		return found == dom.None
	})
	return found
}

func principal(t *testing.T, boxes *boxtree.Tree, doc *dom.Tree, tag string) boxtree.BoxID {
	ids := boxes.BoxesFor(element(doc, tag))
	if len(ids) == 0 {
		t.Fatalf("no box for <%s>", tag)
	}
	return ids[0]
}

func childKinds(boxes *boxtree.Tree, id boxtree.BoxID) []frame.BoxKind {
	var kinds []frame.BoxKind
	for _, ch := range boxes.Box(id).Children {
		kinds = append(kinds, boxes.Box(ch).Kind)
	}
	return kinds
}

func TestTableModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.box")
	defer teardown()
	//
	boxes, doc := buildBoxes(t, `<html><body><table><caption>c</caption>
<tr><td rowspan="2">a</td><td colspan="2">b</td></tr>
<tr><td>c</td><td>d</td></tr></table></body></html>`)
	tm := boxes.Table(principal(t, boxes, doc, "table"))
	assert.Len(t, tm.Captions, 1)
	assert.Len(t, tm.Rows, 2)
	assert.Equal(t, 3, tm.NumCols)
	assert.Len(t, tm.Cells, 4)
	assert.Equal(t, 1, tm.Cells[2].Col, "cell skips column occupied by row span")
	assert.Equal(t, 2, tm.Cells[3].Col)
	assert.Equal(t, boxtree.BlockFormatting, boxes.Box(tm.Cells[0].Box).Formatting())
}
