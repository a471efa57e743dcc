package grid

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/stretchr/testify/assert"
)

func TestAutoPlacement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	p := Place(make([]Item, 3), Template{Cols: 2})
	assert.Equal(t, []Area{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1},
		{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1},
		{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1},
	}, p.Areas)
	assert.Equal(t, 2, p.Rows, "implicit row created")
	assert.Equal(t, 2, p.Cols)
}

func TestExplicitFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	items := []Item{
		{},
		{RowStart: css.GridLine{Line: 1}, ColStart: css.GridLine{Line: 1}},
		{ColStart: css.GridLine{Span: 2}},
		{ColStart: css.GridLine{Line: -1}},
	}
	p := Place(items, Template{Cols: 3, Rows: 1})
	assert.Equal(t, Area{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}, p.Areas[1], "explicit item keeps its cell")
	assert.Equal(t, Area{Row: 0, Col: 3, RowSpan: 1, ColSpan: 1}, p.Areas[3], "-1 is the last line, starting an implicit column")
	assert.Equal(t, Area{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, p.Areas[0])
	assert.Equal(t, Area{Row: 1, Col: 0, RowSpan: 1, ColSpan: 2}, p.Areas[2], "span 2 does not fit behind the cursor")
	assert.Equal(t, 4, p.Cols)
}

func TestTemplateAreas(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	areas, err := css.ParseTemplateAreas(`"head head" "nav main"`)
	assert.NoError(t, err)
	main := css.GridLine{Name: "main"}
	head := css.GridLine{Name: "head"}
	items := []Item{
		{RowStart: main, RowEnd: main, ColStart: main, ColEnd: main},
		{RowStart: head, RowEnd: head, ColStart: head, ColEnd: head},
		{},
	}
	p := Place(items, Template{Rows: 2, Cols: 2, Areas: areas})
	assert.Equal(t, Area{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1}, p.Areas[0])
	assert.Equal(t, Area{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2}, p.Areas[1])
	assert.Equal(t, Area{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1}, p.Areas[2], "auto item fills the free cell")
}

func TestColumnFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame.layout")
	defer teardown()
	//
	p := Place(make([]Item, 3), Template{Rows: 2, Flow: css.GridFlowColumn})
	assert.Equal(t, Area{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1}, p.Areas[1])
	assert.Equal(t, Area{Row: 0, Col: 1, RowSpan: 1, ColSpan: 1}, p.Areas[2])
	assert.Equal(t, 2, p.Cols)
}
