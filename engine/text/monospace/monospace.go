package monospace

import (
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/text"
)

// DefaultRatio is the default width of a cell relative to the font size.
const DefaultRatio = 0.5

// Metrics measures text in cells of uniform width.
type Metrics struct {
	ratio   float64
	context *uax11.Context
}

// New creates monospace metrics. A cell is ratio × font size wide. If ratio
// is not positive, DefaultRatio is used.
func New(ratio float64, context *uax11.Context) Metrics {
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return Metrics{ratio: ratio, context: context}
}

var _ text.Metrics = Metrics{}

// Cells returns the number of cells a text occupies.
func (ms Metrics) Cells(s string) int {
	gstr := grapheme.StringFromString(s)
	cells := 0
	l := gstr.Len()
	for i := 0; i < l; i++ {
		cells += uax11.Width([]byte(gstr.Nth(i)), ms.context)
	}
	return cells
}

// Advance is part of interface text.Metrics.
func (ms Metrics) Advance(s string, font text.Font) dimen.Dimen {
	if s == "" {
		return 0
	}
	cells := ms.Cells(s)
	cell := dimen.Scale(font.Size, ms.ratio)
	tracer().Debugf("monospace: %q has %d cells of %s", s, cells, cell)
	return dimen.Dimen(cells) * cell
}

// Extents is part of interface text.Metrics.
func (ms Metrics) Extents(font text.Font) (dimen.Dimen, dimen.Dimen) {
	return dimen.Scale(font.Size, 0.8), dimen.Scale(font.Size, 0.2)
}
