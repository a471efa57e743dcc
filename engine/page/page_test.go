package page

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/stretchr/testify/assert"
)

const testpage = `<html><head><style>
  body { margin: 0 }
  .box { width: 50%; height: 20px }
</style></head>
<body><div class="box" id="one"></div><p>Some text</p></body></html>`

func TestConfigFrom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.page")
	defer teardown()
	//
	cfg := ConfigFrom(testconfig.Conf{
		"viewport.width": "640",
		"text.metrics":   "opentype",
		"text.fontsize":  20,
		"text.fonts":     "DejaVu Sans, Liberation Serif",
		"layout.trace":   "Debug",
	})
	assert.Equal(t, 640*dimen.PX, cfg.Viewport.W)
	assert.Equal(t, 768*dimen.PX, cfg.Viewport.H, "default height")
	assert.Equal(t, OpenTypeMetrics, cfg.Metrics)
	assert.Equal(t, 20*dimen.PX, cfg.FontSize)
	assert.Equal(t, []string{"DejaVu Sans", "Liberation Serif"}, cfg.Fonts)
	assert.NotNil(t, cfg.LayoutTrace)
	//
	cfg = ConfigFrom(testconfig.Conf{"text.metrics": "bitmap"})
	assert.Equal(t, MonospaceMetrics, cfg.Metrics, "unknown metrics fall back")
	assert.Nil(t, cfg.LayoutTrace)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.page")
	defer teardown()
	//
	p, err := Load(strings.NewReader(testpage), ConfigFrom(testconfig.Conf{"viewport.width": "600"}))
	if err != nil {
		t.Fatal(err)
	}
	ids, err := p.Select("//div[@id='one']")
	assert.NoError(t, err)
	if assert.Len(t, ids, 1) {
		bb := p.Boxes.Box(ids[0]).Dim.BorderBox()
		assert.Equal(t, 300*dimen.PX, bb.W)
		assert.Equal(t, 20*dimen.PX, bb.H)
	}
	//
	ids, err = p.Select("//p")
	assert.NoError(t, err)
	assert.NotEmpty(t, ids)
	//
	_, err = p.Select("//p[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestExtraCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.page")
	defer teardown()
	//
	p, err := Load(strings.NewReader(testpage), DefaultConfig(), ".box { height: 40px }")
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := p.Select("//div")
	if assert.Len(t, ids, 1) {
		assert.Equal(t, 40*dimen.PX, p.Boxes.Box(ids[0]).Dim.Content.H, "extra sheets come last")
	}
}

func TestRelayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.page")
	defer teardown()
	//
	p, err := Load(strings.NewReader(testpage), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := p.Select("//div")
	assert.Equal(t, 512*dimen.PX, p.Boxes.Box(ids[0]).Dim.Content.W)
	//
	assert.NoError(t, p.Relayout(200*dimen.PX, 100*dimen.PX))
	ids, _ = p.Select("//div")
	assert.Equal(t, 100*dimen.PX, p.Boxes.Box(ids[0]).Dim.Content.W)
	assert.Equal(t, 200*dimen.PX, p.Viewport().W)
}

func TestOpenTypeMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.page")
	defer teardown()
	//
	cfg := DefaultConfig()
	cfg.Metrics = OpenTypeMetrics
	p, err := Load(strings.NewReader(`<p style="width:100px">the quick brown fox jumps over the lazy dog</p>`), cfg)
	if err != nil {
		t.Fatal(err)
	}
	ids, _ := p.Select("//p")
	if assert.NotEmpty(t, ids) {
		assert.Greater(t, p.Boxes.Box(ids[0]).Dim.Content.H, 16*dimen.PX, "wraps to several lines")
	}
}
