package monospace

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	m := New(0, nil)
	font := text.Font{Size: 16 * dimen.PX}
	assert.Equal(t, 40*dimen.PX, m.Advance("Hello", font))
	assert.Equal(t, dimen.Dimen(0), m.Advance("", font))
	assert.Equal(t, 8*dimen.PX, m.Advance("é", font), "a grapheme cluster is one cell")
	asc, desc := m.Extents(font)
	assert.Equal(t, dimen.Px(12.8), asc)
	assert.Equal(t, dimen.Px(3.2), desc)
	assert.Equal(t, 16*dimen.PX, asc+desc)
}

func TestMeasurerSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	m := text.NewMeasurer(text.SpaceBreaker{}, New(0, nil))
	segs := m.Segments("ab  cde", text.Font{Size: 10 * dimen.PX}, text.Normal)
	assert.Len(t, segs, 2)
	assert.Equal(t, 10*dimen.PX, segs[0].Width)
	assert.Equal(t, 5*dimen.PX, segs[0].Space)
	assert.Equal(t, 15*dimen.PX, segs[1].Width)
}
