package cssom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/dom/xpathadapter"
	"github.com/stretchr/testify/assert"
)

var myhtml = `
<html><head><style>
  div { width: 100px; }
  div.wide { width: 200px; }
  #main { width: 300px; }
  p { margin-top: 3px !important; }
</style></head>
<body>
  <div id="main" class="wide">Hello <span>World</span></div>
  <div class="wide" style="width: 50%">x</div>
  <p style="margin-top: 7px">para</p>
  <div style="font-size: 2em"><div style="padding: inherit; margin: 1em">y</div></div>
</body></html>
`

func styled(t *testing.T, html string) (*dom.Tree, *cssom.Styles) {
	doc, err := dom.Parse(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	c := cssom.NewCSSOM(douceuradapter.ParseStyleAttribute)
	ua, err := douceuradapter.Parse(cssom.UserAgentCSS)
	assert.NoError(t, err)
	assert.NoError(t, c.AddStylesheet(ua, cssom.UserAgent))
	for _, text := range doc.StyleElements() {
		sheet, err := douceuradapter.Parse(text)
		assert.NoError(t, err)
		assert.NoError(t, c.AddStylesheet(sheet, cssom.Author))
	}
	styles, err := c.Style(doc)
	if err != nil {
		t.Fatal(err)
	}
	return doc, styles
}

func find(t *testing.T, doc *dom.Tree, xpath string) dom.NodeID {
	ids, err := xpathadapter.Select(doc, xpath)
	if err != nil || len(ids) == 0 {
		t.Fatalf("no node for %s", xpath)
	}
	return ids[0]
}

func TestSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	doc, styles := styled(t, myhtml)
	main := styles.StyleFor(find(t, doc, "//div[@id='main']"))
	assert.Equal(t, css.SomeDimen(300*dimen.PX), main.Width, "id selector wins")
	second := styles.StyleFor(find(t, doc, "//div[2]"))
	assert.True(t, second.Width.IsPercent(), "inline style wins")
}

func TestImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	doc, styles := styled(t, myhtml)
	p := styles.StyleFor(find(t, doc, "//p"))
	assert.Equal(t, css.SomeDimen(3*dimen.PX), p.Margin.Top, "important author rule beats inline")
	assert.Equal(t, css.SomeDimen(16*dimen.PX), p.Margin.Bottom, "UA margin of 1em")
}

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	doc, styles := styled(t, myhtml)
	assert.Equal(t, css.DisplayNone, styles.StyleFor(find(t, doc, "//head")).Display)
	assert.Equal(t, css.BlockMode|css.FlowMode, styles.StyleFor(find(t, doc, "//body")).Display)
	assert.Equal(t, css.InlineMode|css.FlowMode, styles.StyleFor(find(t, doc, "//span")).Display)
	body := styles.StyleFor(find(t, doc, "//body"))
	assert.Equal(t, css.SomeDimen(8*dimen.PX), body.Margin.Left)
}

func TestInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	doc, styles := styled(t, myhtml)
	outer := styles.StyleFor(find(t, doc, "//div[3]"))
	assert.Equal(t, 32*dimen.PX, outer.FontSize)
	inner := styles.StyleFor(find(t, doc, "//div[3]/div"))
	assert.Equal(t, 32*dimen.PX, inner.FontSize, "font size is inherited")
	assert.Equal(t, css.SomeDimen(32*dimen.PX), inner.Margin.Top, "em resolves against own font size")
	assert.Equal(t, css.SomeDimen(0), inner.Padding.Top, "inherit of unset property yields initial")
	//
	span := find(t, doc, "//span")
	text := doc.Node(span).Children[0]
	ts := styles.StyleFor(text)
	assert.Equal(t, css.InlineMode|css.FlowMode, ts.Display)
	assert.Equal(t, styles.StyleFor(span).FontSize, ts.FontSize)
}
