package frame

import "github.com/npillmayer/webframe/core/dimen"

// MarginCollector collapses adjoining vertical margins.
//
// “When two or more margins collapse, the resulting margin width is the
// maximum of the collapsing margins' widths. In the case of negative margins,
// the maximum of the absolute values of the negative adjoining margins is
// deducted from the maximum of the positive adjoining margins. If there are
// no positive margins, the maximum of the absolute values of the adjoining
// margins is deducted from zero.”
//
// The zero value is an empty collector.
type MarginCollector struct {
	pos, neg dimen.Dimen
}

// Adjoin adds a margin to the set of adjoining margins.
func (mc *MarginCollector) Adjoin(m dimen.Dimen) {
	if m > 0 {
		mc.pos = dimen.Max(mc.pos, m)
	} else {
		mc.neg = dimen.Min(mc.neg, m)
	}
}

// Merge joins the margins of two collectors.
func (mc *MarginCollector) Merge(other MarginCollector) {
	mc.pos = dimen.Max(mc.pos, other.pos)
	mc.neg = dimen.Min(mc.neg, other.neg)
}

// Resolve returns the collapsed margin.
func (mc MarginCollector) Resolve() dimen.Dimen {
	return mc.pos + mc.neg
}

// Reset empties the collector.
func (mc *MarginCollector) Reset() {
	mc.pos, mc.neg = 0, 0
}

// CollapseMargins returns the collapsed value of a set of adjoining margins.
func CollapseMargins(margins ...dimen.Dimen) dimen.Dimen {
	var mc MarginCollector
	for _, m := range margins {
		mc.Adjoin(m)
	}
	return mc.Resolve()
}
