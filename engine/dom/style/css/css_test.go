package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	d, err := ParseDimen("15px")
	assert.NoError(t, err)
	assert.True(t, d.IsAbsolute())
	assert.Equal(t, 15*dimen.PX, d.Unwrap())
	d, err = ParseDimen("50%")
	assert.NoError(t, err)
	assert.True(t, d.IsPercent())
	assert.Equal(t, 50.0, d.Factor())
	d, err = ParseDimen("-1.5em")
	assert.NoError(t, err)
	assert.True(t, d.IsFontRelative())
	assert.Equal(t, SomeDimen(-24*dimen.PX), d.ResolveFont(16*dimen.PX, 0))
	_, err = ParseDimen("12")
	assert.Error(t, err)
	_, err = ParseDimen("0")
	assert.NoError(t, err)
	_, err = ParseDimen("3furlong")
	assert.Error(t, err)
	assert.True(t, DimenOption("auto").IsAuto())
	assert.True(t, DimenOption("garbage").IsNone())
}

func TestResolvePercent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	vp := Viewport{W: 1000 * dimen.PX, H: 500 * dimen.PX}
	w, ok := Percent(50).Resolve(300*dimen.PX, vp)
	assert.True(t, ok)
	assert.Equal(t, 150*dimen.PX, w)
	_, ok = Percent(50).Resolve(dimen.Infinity, vp)
	assert.False(t, ok, "percentage of an indefinite size must not resolve")
	d, _ := ParseDimen("10vw")
	w, ok = d.Resolve(0, vp)
	assert.True(t, ok)
	assert.Equal(t, 100*dimen.PX, w)
	d, _ = ParseDimen("10vmin")
	w, _ = d.Resolve(0, vp)
	assert.Equal(t, 50*dimen.PX, w)
	_, ok = Auto().Resolve(300*dimen.PX, vp)
	assert.False(t, ok)
}

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	cases := []struct {
		value string
		mode  DisplayMode
	}{
		{"block", BlockMode | FlowMode},
		{"inline-block", InlineMode | FlowRoot},
		{"inline-flex", InlineMode | FlexMode},
		{"grid", BlockMode | GridMode},
		{"table-cell", TableCellMode | FlowRoot},
		{"table-header-group", TableRowGroupMode},
		{"inline flex", InlineMode | FlexMode},
		{"none", DisplayNone},
	}
	for _, c := range cases {
		mode, err := ParseDisplay(c.value)
		assert.NoError(t, err, c.value)
		assert.Equal(t, c.mode, mode, c.value)
	}
	mode, err := ParseDisplay("ruby-text-container")
	assert.Error(t, err)
	assert.Equal(t, BlockMode|FlowMode, mode, "unknown display falls back to block")
	assert.Equal(t, FlowMode, (InlineMode | FlowMode).Inner())
	assert.True(t, (BlockMode | FlexMode).IsBlockLevel())
	assert.True(t, TableRowMode.IsTableInternal())
}

func TestTrackList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	tracks, err := ParseTrackList("100px 1fr 2fr")
	assert.NoError(t, err)
	assert.Len(t, tracks, 3)
	assert.Equal(t, TrackFixed, tracks[0].Kind)
	assert.Equal(t, 100*dimen.PX, tracks[0].Size.Unwrap())
	assert.Equal(t, TrackFr, tracks[2].Kind)
	assert.Equal(t, 2.0, tracks[2].Fr)
	//
	tracks, err = ParseTrackList("[a] repeat(3, 1fr 20%) [b] auto")
	assert.NoError(t, err)
	assert.Len(t, tracks, 7)
	assert.Equal(t, TrackPercent, tracks[1].Kind)
	assert.Equal(t, TrackAuto, tracks[6].Kind)
	//
	tracks, err = ParseTrackList("minmax(100px, 1fr) max-content")
	assert.NoError(t, err)
	assert.Equal(t, []TrackSize{AutoTrack, AutoTrack}, tracks)
	//
	tracks, err = ParseTrackList("10px bogus")
	assert.Error(t, err)
	assert.Len(t, tracks, 2, "illegal tracks degrade to auto")
}

func TestGridLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	assert.True(t, ParseGridLine("auto").IsAuto())
	assert.Equal(t, GridLine{Line: -1}, ParseGridLine("-1"))
	assert.Equal(t, GridLine{Span: 2}, ParseGridLine("span 2"))
	assert.Equal(t, GridLine{Name: "header"}, ParseGridLine("header"))
	//
	ta, err := ParseTemplateAreas(`"head head" "nav main" ". main"`)
	assert.NoError(t, err)
	assert.Equal(t, 3, ta.Rows)
	assert.Equal(t, 2, ta.Cols)
	assert.Equal(t, GridArea{RowStart: 0, RowEnd: 1, ColStart: 0, ColEnd: 2}, ta.Areas["head"])
	assert.Equal(t, GridArea{RowStart: 1, RowEnd: 3, ColStart: 1, ColEnd: 2}, ta.Areas["main"])
	_, err = ParseTemplateAreas(`"a b" "c"`)
	assert.Error(t, err)
	ta, err = ParseTemplateAreas(`"a b" "b a"`)
	assert.Error(t, err)
	assert.Len(t, ta.Areas, 0)
}

func TestComputeStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.cssom")
	defer teardown()
	//
	root := style.PropertyMap{}
	root.Set("display", "block")
	root.Set("font-size", "20px")
	root.Set("line-height", "1.5")
	root.Set("white-space", "nowrap")
	rs := ComputeStyle(root, nil, 0)
	assert.Equal(t, 20*dimen.PX, rs.FontSize)
	assert.Equal(t, 30*dimen.PX, rs.LineHeight)
	//
	child := style.PropertyMap{}
	child.Set("display", "flex")
	child.Set("font-size", "50%")
	child.Set("margin", "1em auto")
	child.Set("padding-left", "2rem")
	child.Set("border", "thin solid")
	child.Set("border-left-style", "none")
	child.Set("flex", "2")
	cs := ComputeStyle(child, rs, rs.FontSize)
	assert.Equal(t, BlockMode|FlexMode, cs.Display)
	assert.Equal(t, 10*dimen.PX, cs.FontSize)
	assert.Equal(t, 15*dimen.PX, cs.LineHeight, "unitless line-height inherits as a factor")
	assert.Equal(t, WhiteSpaceNoWrap, cs.WhiteSpace)
	assert.Equal(t, SomeDimen(10*dimen.PX), cs.Margin.Top)
	assert.True(t, cs.Margin.Left.IsAuto())
	assert.Equal(t, SomeDimen(40*dimen.PX), cs.Padding.Left)
	assert.Equal(t, SomeDimen(1*dimen.PX), cs.Border.Top)
	assert.Equal(t, SomeDimen(0), cs.Border.Left, "border style none has zero width")
	assert.Equal(t, 2.0, cs.FlexGrow)
	assert.Equal(t, 1.0, cs.FlexShrink)
	assert.True(t, cs.FlexBasis.IsPercent())
	assert.True(t, cs.EstablishesBFC())
	//
	fl := style.PropertyMap{}
	fl.Set("float", "right")
	fl.Set("clear", "both")
	fs := ComputeStyle(fl, rs, rs.FontSize)
	assert.Equal(t, FloatRight, fs.Float)
	assert.True(t, fs.Clear.Clears(FloatLeft))
	assert.True(t, fs.Clear.Clears(FloatRight))
	assert.False(t, ClearLeft.Clears(FloatRight))
	assert.False(t, cs.Clear.Clears(FloatLeft))
	//
	anon := AnonymousStyle(cs)
	assert.Equal(t, BlockMode|FlowMode, anon.Display)
	assert.Equal(t, cs.FontSize, anon.FontSize)
	assert.Equal(t, SomeDimen(0), anon.Margin.Top)
	assert.True(t, anon.Width.IsAuto())
}
