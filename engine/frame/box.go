package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/


import (
	"fmt"

	"github.com/npillmayer/webframe/core/dimen"
)

// BoxKind is the kind of a layout box. The set of kinds is closed: layout
// dispatches over it with a single exhaustive switch.
type BoxKind uint8

// Kinds of layout boxes.
const (
	BlockContainer  BoxKind = iota // block-level box of a flow element
	InlineContainer                // inline box, or the anonymous root of an inline formatting context
	InlineBlock                    // atomic inline-level box
	FlexContainer                  // box establishing a flex formatting context
	FlexItem                       // in-flow child of a flex container
	GridContainer                  // box establishing a grid formatting context
	GridItem                       // in-flow child of a grid container
	TableWrapper                   // box establishing a table formatting context
	TableRowGroup                  // thead, tbody, tfoot or anonymous row group
	TableRow                       // row of table cells
	TableCell                      // table cell, establishing a block formatting context
	AnonymousBlock                 // block box wrapping inline content among block siblings
	AnonymousInline                // inline box wrapping text directly inside a block
	TextRun                        // a run of text
)

var boxKindNames = [...]string{
	"BlockContainer", "InlineContainer", "InlineBlock", "FlexContainer", "FlexItem",
	"GridContainer", "GridItem", "TableWrapper", "TableRowGroup", "TableRow",
	"TableCell", "AnonymousBlock", "AnonymousInline", "TextRun",
}

func (k BoxKind) String() string {
	if int(k) < len(boxKindNames) {
		return boxKindNames[k]
	}
	return "?"
}

// IsInlineLevel is true for boxes which participate in an inline
// formatting context.
func (k BoxKind) IsInlineLevel() bool {
	return k == InlineContainer || k == InlineBlock || k == AnonymousInline || k == TextRun
}

// IsAnonymous is true for boxes without a generating element.
func (k BoxKind) IsAnonymous() bool {
	return k == AnonymousBlock || k == AnonymousInline || k == TextRun
}

// Rect is a rectangle, given by its top left corner and its size.
type Rect struct {
	X, Y dimen.Dimen
	W, H dimen.Dimen
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() dimen.Dimen {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() dimen.Dimen {
	return r.Y + r.H
}

// Expand returns a rectangle grown by four-sided edges.
func (r Rect) Expand(e EdgeSizes) Rect {
	return Rect{
		X: r.X - e.Left,
		Y: r.Y - e.Top,
		W: r.W + e.Left + e.Right,
		H: r.H + e.Top + e.Bottom,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%s,%s)[%s×%s]", r.X, r.Y, r.W, r.H)
}

// EdgeSizes are four-sided values of padding, border or margin.
// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
type EdgeSizes struct {
	Top, Right, Bottom, Left dimen.Dimen
}

// Horizontal returns the sum of left and right edges.
func (e EdgeSizes) Horizontal() dimen.Dimen {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom edges.
func (e EdgeSizes) Vertical() dimen.Dimen {
	return e.Top + e.Bottom
}

// Dimensions are the used geometry of a box, following the CSS box model:
// a content rectangle, surrounded by padding, border and margin.
// All coordinates are absolute, relative to the initial containing block.
type Dimensions struct {
	Content Rect
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// PaddingBox returns the rectangle of content plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.Expand(d.Padding)
}

// BorderBox returns the rectangle of content, padding and border.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().Expand(d.Border)
}

// MarginBox returns the rectangle of content, padding, border and margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().Expand(d.Margin)
}

// Decoration returns the sum of horizontal padding, border and margin.
func (d Dimensions) Decoration() dimen.Dimen {
	return d.Padding.Horizontal() + d.Border.Horizontal() + d.Margin.Horizontal()
}

// Shift moves the box by a vector.
func (d *Dimensions) Shift(dx, dy dimen.Dimen) {
	d.Content.X += dx
	d.Content.Y += dy
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (d Dimensions) DebugString() string {
	s := fmt.Sprintf("box{\n   content=%v\n", d.Content)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		d.Padding.Top, d.Padding.Right, d.Padding.Bottom, d.Padding.Left)
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		d.Border.Top, d.Border.Right, d.Border.Bottom, d.Border.Left)
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		d.Margin.Top, d.Margin.Right, d.Margin.Bottom, d.Margin.Left)
	s += "}"
	return s
}
