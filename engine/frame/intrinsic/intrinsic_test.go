package intrinsic_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/intrinsic"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/npillmayer/webframe/engine/text/monospace"
	"github.com/stretchr/testify/assert"
)

// Monospace text at 16px font size is 8px per character.
const char = 8 * dimen.PX

func TestTextSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<p>Hello wonderful world</p>`)
	is := m.Measure(box(t, boxes, doc, "p"), frame.ContentBox)
	assert.Equal(t, 9*char, is.MinContent, "longest word")
	assert.Equal(t, 21*char, is.MaxContent, "single line")
	//
	m, boxes, doc = measurer(t, `<p style="white-space:nowrap">a b c</p>`)
	is = m.Measure(box(t, boxes, doc, "p"), frame.ContentBox)
	assert.Equal(t, 5*char, is.MinContent)
	assert.Equal(t, 5*char, is.MaxContent)
	//
	m, boxes, doc = measurer(t, `<p>abc<br>abcdef gh</p>`)
	is = m.Measure(box(t, boxes, doc, "p"), frame.ContentBox)
	assert.Equal(t, 9*char, is.MaxContent, "widest line after forced break")
}

func TestExplicitWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<div style="width:100px; padding:0 10px; margin-left:5px">long text here</div>`)
	id := box(t, boxes, doc, "div")
	is := m.Measure(id, frame.ContentBox)
	assert.Equal(t, frame.IntrinsicSizes{MinContent: 100 * dimen.PX, MaxContent: 100 * dimen.PX}, is)
	is = m.Measure(id, frame.MarginBox)
	assert.Equal(t, 125*dimen.PX, is.MaxContent)
	//
	m, boxes, doc = measurer(t, `<div style="box-sizing:border-box; width:100px; padding:0 10px">x</div>`)
	is = m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 80*dimen.PX, is.MaxContent)
	//
	m, boxes, doc = measurer(t, `<div style="max-width:50px">a very long line of text</div>`)
	is = m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 50*dimen.PX, is.MaxContent)
}

func TestContentsIgnoreOwnWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<div style="width:100px; min-width:120px">ab cd</div>`)
	id := box(t, boxes, doc, "div")
	assert.Equal(t, 120*dimen.PX, m.Measure(id, frame.ContentBox).MinContent)
	is := m.Measure(id, frame.Contents)
	assert.Equal(t, 2*char, is.MinContent)
	assert.Equal(t, 5*char, is.MaxContent)
}

func TestPercentContributesZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<div id="outer"><div style="width:50%">abc defghi</div><p>xy</p></div>`)
	is := m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 2*char, is.MinContent)
	assert.Equal(t, 2*char, is.MaxContent)
}

func TestFlexSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<div style="display:flex"><p style="width:30px"></p><p style="width:50px"></p></div>`)
	is := m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 50*dimen.PX, is.MinContent)
	assert.Equal(t, 80*dimen.PX, is.MaxContent, "row: sum of items")
	//
	m, boxes, doc = measurer(t, `<div style="display:flex; flex-direction:column"><p style="width:30px"></p><p style="width:50px"></p></div>`)
	is = m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 50*dimen.PX, is.MaxContent, "column: widest item")
}

func TestGridAndTableSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, doc := measurer(t, `<div style="display:grid; grid-template-columns:100px 1fr"><p>xxxx</p><p>xx</p></div>`)
	is := m.Measure(box(t, boxes, doc, "div"), frame.ContentBox)
	assert.Equal(t, 100*dimen.PX+2*char, is.MaxContent)
	//
	m, boxes, doc = measurer(t, `<table style="border-spacing:0"><tr>
<td style="padding:0">xxxxxxxxxx</td><td style="padding:0">xxxxx</td></tr></table>`)
	is = m.Measure(box(t, boxes, doc, "table"), frame.ContentBox)
	assert.Equal(t, 15*char, is.MaxContent)
	cols := m.Columns(boxes.Table(box(t, boxes, doc, "table")))
	assert.Equal(t, 80*dimen.PX, cols[0].MaxContent)
	assert.Equal(t, 40*dimen.PX, cols[1].MaxContent)
}

func TestMinNeverExceedsMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	m, boxes, _ := measurer(t, `<div style="display:flex"><span>one two</span><img width="40">
<div style="max-width:10px">wide content</div></div>
<ul><li>item <b>bold</b> text</li></ul>
<table><tr><td colspan="2">spanning cell</td></tr><tr><td>a</td><td>b</td></tr></table>`)
	boxes.Walk(boxes.Root(), func(id boxtree.BoxID, b *boxtree.LayoutBox, _ int) bool {
		for _, mode := range []frame.MeasureMode{frame.ContentBox, frame.MarginBox} {
			is := m.Measure(id, mode)
			assert.LessOrEqual(t, is.MinContent, is.MaxContent, boxes.Name(id))
			assert.GreaterOrEqual(t, is.MinContent, dimen.Dimen(0), boxes.Name(id))
		}
		return true
	})
}

// ---------------------------------------------------------------------------

func measurer(t *testing.T, body string) (*intrinsic.Measurer, *boxtree.Tree, *dom.Tree) {
	doc, err := dom.Parse(strings.NewReader("<html><body>" + body + "</body></html>"))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	c := cssom.NewCSSOM(douceuradapter.ParseStyleAttribute)
	ua, err := douceuradapter.Parse(cssom.UserAgentCSS)
	if err != nil {
		t.Fatal(err)
	}
	_ = c.AddStylesheet(ua, cssom.UserAgent)
	styles, err := c.Style(doc)
	if err != nil {
		t.Fatal(err)
	}
	boxes, err := boxtree.Build(doc, styles)
	if err != nil {
		t.Fatalf("cannot build box tree: %v", err)
	}
	tm := text.NewMeasurer(nil, monospace.New(0, nil))
	vp := css.Viewport{W: 800 * dimen.PX, H: 600 * dimen.PX}
	return intrinsic.New(boxes, tm, vp), boxes, doc
}

func box(t *testing.T, boxes *boxtree.Tree, doc *dom.Tree, tag string) boxtree.BoxID {
	found := dom.None
	doc.Walk(doc.Root(), func(id dom.NodeID, n *dom.Node) bool {
		if found == dom.None && n.Kind == dom.ElementNode && n.Tag == tag {
			found = id
		}
		return found == dom.None
	})
	ids := boxes.BoxesFor(found)
	if len(ids) == 0 {
		t.Fatalf("no box for <%s>", tag)
	}
	return ids[0]
}
