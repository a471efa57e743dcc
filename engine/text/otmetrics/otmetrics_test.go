package otmetrics

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/stretchr/testify/assert"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	f := FallbackFont()
	assert.NotNil(t, f.SFNT)
	assert.Equal(t, f, FallbackFont(), "fallback font is loaded once")
}

func TestProportionalAdvance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	m := New()
	small := text.Font{Family: "serif", Size: 10 * dimen.PX}
	large := text.Font{Family: "serif", Size: 20 * dimen.PX}
	wi, ww := m.Advance("iiii", small), m.Advance("WWWW", small)
	assert.True(t, wi > 0)
	assert.True(t, ww > wi, "Go Sans is proportional")
	assert.True(t, m.Advance("WWWW", large) > ww)
	asc, desc := m.Extents(small)
	assert.True(t, asc > 0)
	assert.True(t, desc > 0)
	assert.True(t, asc+desc < 20*dimen.PX)
	assert.Equal(t, m.Advance("abc", small), m.Advance("abc", small), "measuring is deterministic")
}

func TestMissingSystemFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.text")
	defer teardown()
	//
	_, err := LocateSystemFont("No Such Font Family 4711")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = LocateSystemFont(" ")
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	m := New()
	missing := m.RegisterSystemFonts("No Such Font Family 4711")
	assert.Equal(t, []string{"No Such Font Family 4711"}, missing)
	f := text.Font{Family: "No Such Font Family 4711", Size: 10 * dimen.PX}
	assert.True(t, m.Advance("abc", f) > 0, "measured with fallback font")
}
