package frame

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/stretchr/testify/assert"
)

func TestBoxModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	d := Dimensions{
		Content: Rect{X: 20 * dimen.PX, Y: 20 * dimen.PX, W: 100 * dimen.PX, H: 50 * dimen.PX},
		Padding: EdgeSizes{5 * dimen.PX, 5 * dimen.PX, 5 * dimen.PX, 5 * dimen.PX},
		Border:  EdgeSizes{Left: 1 * dimen.PX, Right: 1 * dimen.PX},
		Margin:  EdgeSizes{Top: 10 * dimen.PX},
	}
	pb := d.PaddingBox()
	assert.Equal(t, 15*dimen.PX, pb.X)
	assert.Equal(t, 110*dimen.PX, pb.W)
	bb := d.BorderBox()
	assert.Equal(t, 112*dimen.PX, bb.W)
	assert.Equal(t, 60*dimen.PX, bb.H)
	mb := d.MarginBox()
	assert.Equal(t, 5*dimen.PX, mb.Y)
	assert.Equal(t, 70*dimen.PX, mb.H)
	assert.Equal(t, 12*dimen.PX, d.Decoration())
	t.Logf(d.DebugString())
}

func TestBoxKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	assert.Equal(t, "TableCell", TableCell.String())
	assert.True(t, TextRun.IsInlineLevel())
	assert.True(t, InlineBlock.IsInlineLevel())
	assert.False(t, FlexItem.IsInlineLevel())
	assert.True(t, AnonymousBlock.IsAnonymous())
	assert.False(t, BlockContainer.IsAnonymous())
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	assert.Equal(t, 20*dimen.PX, CollapseMargins(20*dimen.PX, 10*dimen.PX))
	assert.Equal(t, 10*dimen.PX, CollapseMargins(20*dimen.PX, -10*dimen.PX))
	assert.Equal(t, -15*dimen.PX, CollapseMargins(-5*dimen.PX, -15*dimen.PX))
	assert.Equal(t, dimen.Dimen(0), CollapseMargins())
	var mc MarginCollector
	mc.Adjoin(8 * dimen.PX)
	other := MarginCollector{}
	other.Adjoin(16 * dimen.PX)
	other.Adjoin(-4 * dimen.PX)
	mc.Merge(other)
	assert.Equal(t, 12*dimen.PX, mc.Resolve())
}

func TestIntrinsicSizes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	is := IntrinsicSizes{MinContent: 50 * dimen.PX, MaxContent: 30 * dimen.PX}.Normalize()
	assert.Equal(t, 50*dimen.PX, is.MaxContent, "min-content must not exceed max-content")
	is = IntrinsicSizes{MinContent: 40 * dimen.PX, MaxContent: 200 * dimen.PX}
	assert.Equal(t, 100*dimen.PX, is.FitContent(100*dimen.PX))
	assert.Equal(t, 40*dimen.PX, is.FitContent(10*dimen.PX))
	assert.Equal(t, 200*dimen.PX, is.FitContent(500*dimen.PX))
	cb := NewContainingBlock(300*dimen.PX, dimen.Infinity)
	assert.False(t, cb.HasDefiniteHeight())
}

func TestSpanShare(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.frame")
	defer teardown()
	//
	size := 40 * dimen.PX
	var sum dimen.Dimen
	for i := 0; i < 3; i++ {
		sum += SpanShare(size, 3, i)
	}
	assert.Equal(t, size, sum, "shares must add up to the spanned size")
	assert.Equal(t, size, SpanShare(size, 1, 0))
	is := IntrinsicSizes{MinContent: 10, MaxContent: 11}.Share(2, 1)
	assert.Equal(t, IntrinsicSizes{MinContent: 5, MaxContent: 6}, is)
}
