package framedebug_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/framedebug"
	"github.com/npillmayer/webframe/engine/frame/layout"
	"github.com/stretchr/testify/assert"
)

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	doc, err := dom.Parse(strings.NewReader(`<html><body><p>Hello <b>world</b></p><div style="display:flex"><span>x</span></div></body></html>`))
	if err != nil {
		t.Fatal(err)
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
		t.Fatal(err)
	}
	assert.NoError(t, layout.Layout(boxes, css.Viewport{W: 400 * dimen.PX, H: 300 * dimen.PX}))
	var buf bytes.Buffer
	assert.NoError(t, framedebug.ToGraphViz(boxes, &buf))
	dot := buf.String()
	t.Logf("\n%s", dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "<p>")
	assert.Contains(t, dot, "FlexItem")
	assert.Contains(t, dot, "“Hello")
	edges := 0
	boxes.Walk(boxes.Root(), func(_ boxtree.BoxID, b *boxtree.LayoutBox, _ int) bool {
		edges += len(b.Children)
		return true
	})
	assert.Equal(t, edges, strings.Count(dot, " -> "), "one edge per child")
}

func TestGraphVizEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	var buf bytes.Buffer
	assert.NoError(t, framedebug.ToGraphViz(nil, &buf))
	assert.Equal(t, "digraph g {\n}\n", buf.String())
}
