package frame

import (
	"fmt"

	"github.com/npillmayer/webframe/core/dimen"
)

// MeasureMode tells a measurement which box of a child it should report.
type MeasureMode uint8

// Measure modes.
const (
	ContentBox MeasureMode = iota // size of the content box only
	MarginBox                     // size including padding, border and margins
	Contents                      // size of the contents, ignoring the box's own size properties
)

// ContainingBlock is the rectangle a box is sized and positioned against.
//
// “The position and size of an element's box(es) are sometimes calculated
// relative to a certain rectangle, called the containing block of the element.”
//
// An indefinite height (for auto-height containers) is dimen.Infinity.
// Percentages of an indefinite size do not resolve.
type ContainingBlock struct {
	X, Y   dimen.Dimen
	Width  dimen.Dimen
	Height dimen.Dimen
}

// NewContainingBlock creates a containing block of definite width and an
// optionally definite height. Use dimen.Infinity for an auto height.
func NewContainingBlock(w, h dimen.Dimen) ContainingBlock {
	return ContainingBlock{Width: dimen.NonNeg(w), Height: h}
}

// HasDefiniteHeight is true if percentages of the height will resolve.
func (cb ContainingBlock) HasDefiniteHeight() bool {
	return cb.Height != dimen.Infinity
}

// At returns a copy of cb, moved to position (x, y).
func (cb ContainingBlock) At(x, y dimen.Dimen) ContainingBlock {
	cb.X, cb.Y = x, y
	return cb
}

func (cb ContainingBlock) String() string {
	h := "auto"
	if cb.HasDefiniteHeight() {
		h = cb.Height.String()
	}
	return fmt.Sprintf("CB(%s,%s)[%s×%s]", cb.X, cb.Y, cb.Width, h)
}

// IntrinsicSizes are the content-based sizes of a box in the inline
// dimension.
//
// MinContent is the narrowest a box can get without overflow, i.e. the
// width of its longest unbreakable piece of content. MaxContent is the
// width a box would take without any soft wrapping.
type IntrinsicSizes struct {
	MinContent dimen.Dimen
	MaxContent dimen.Dimen
}

// Normalize returns sizes with MinContent ≤ MaxContent, both non-negative.
func (is IntrinsicSizes) Normalize() IntrinsicSizes {
	is.MinContent = dimen.NonNeg(is.MinContent)
	is.MaxContent = dimen.Max(is.MinContent, is.MaxContent)
	return is
}

// Add adds a constant to both sizes.
func (is IntrinsicSizes) Add(d dimen.Dimen) IntrinsicSizes {
	return IntrinsicSizes{MinContent: is.MinContent + d, MaxContent: is.MaxContent + d}
}

// Union returns the element-wise maximum, as used for block stacking.
func (is IntrinsicSizes) Union(other IntrinsicSizes) IntrinsicSizes {
	return IntrinsicSizes{
		MinContent: dimen.Max(is.MinContent, other.MinContent),
		MaxContent: dimen.Max(is.MaxContent, other.MaxContent),
	}
}

// Share returns the part of the sizes which falls to track i of span tracks.
// The last track gets the remainder of the division.
func (is IntrinsicSizes) Share(span, i int) IntrinsicSizes {
	return IntrinsicSizes{
		MinContent: SpanShare(is.MinContent, span, i),
		MaxContent: SpanShare(is.MaxContent, span, i),
	}
}

// SpanShare splits a size evenly across span tracks and returns the share of
// track i. The shares of all tracks add up to size.
func SpanShare(size dimen.Dimen, span, i int) dimen.Dimen {
	if span <= 1 {
		return size
	}
	share := size / dimen.Dimen(span)
	if i == span-1 {
		return size - share*dimen.Dimen(span-1)
	}
	return share
}

// FitContent clamps an available size between min-content and max-content.
//
// “shrink-to-fit width is: min(max(preferred minimum width, available width),
// preferred width)”
func (is IntrinsicSizes) FitContent(available dimen.Dimen) dimen.Dimen {
	return dimen.Min(dimen.Max(is.MinContent, available), is.MaxContent)
}

func (is IntrinsicSizes) String() string {
	return fmt.Sprintf("[min=%s,max=%s]", is.MinContent, is.MaxContent)
}
