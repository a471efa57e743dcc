package boxtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
)

// BoxID addresses a box within a Tree.
type BoxID int32

// NoBox is the invalid box ID.
const NoBox BoxID = -1

// LayoutBox is a node in the box tree.
//
// Style is never nil; anonymous boxes carry a style inherited from the box
// they have been generated for. Dim and Lines are written by layout, all
// other fields are set by the builder and read-only thereafter.
type LayoutBox struct {
	Kind      frame.BoxKind
	Node      dom.NodeID         // generating DOM node, dom.None for anonymous boxes
	Style     *css.ComputedStyle // computed style, read-only during layout
	Text      string             // text of a TextRun
	HardBreak bool               // TextRun generated by <br>
	OutOfFlow bool               // absolutely positioned
	Floating  bool               // floated to the left or right of its block formatting context
	Replaced  bool               // replaced element with natural size
	Natural   dimen.Point        // natural width and height of replaced content
	ColSpan   int                // columns spanned by a TableCell
	RowSpan   int                // rows spanned by a TableCell
	Children  []BoxID
	Dim       frame.Dimensions // used geometry
	Baseline  dimen.Dimen      // y position of the first baseline, if any
	Lines     []LineBox        // line boxes of an inline formatting context
}

// IsBlockLevel is true if the box participates in a block formatting context.
func (b *LayoutBox) IsBlockLevel() bool {
	switch b.Kind {
	case frame.BlockContainer, frame.AnonymousBlock, frame.FlexContainer,
		frame.GridContainer, frame.TableWrapper:
		return true
	}
	return false
}

// IsInlineFormattingRoot is true for the anonymous InlineContainer holding the
// inline-level content of a block container.
func (b *LayoutBox) IsInlineFormattingRoot() bool {
	return b.Kind == frame.InlineContainer && b.Node == dom.None
}

// LineBox is a line of an inline formatting context.
type LineBox struct {
	Rect      frame.Rect  // absolute position of the line box
	Baseline  dimen.Dimen // absolute y position of the baseline
	Fragments []Fragment
}

// Fragment is the part of an inline-level box which has been placed on a line.
// Text runs broken across lines yield a fragment per line.
type Fragment struct {
	Box  BoxID
	Text string // the portion of text placed, for text runs
	Rect frame.Rect
}

// Tree is an arena of layout boxes.
type Tree struct {
	boxes []LayoutBox
	root  BoxID
	dom   *dom.Tree
}

// Root returns the root box, which is the principal box of the document element.
func (t *Tree) Root() BoxID {
	return t.root
}

// Len returns the number of boxes.
func (t *Tree) Len() int {
	return len(t.boxes)
}

// Box returns a box by ID. It returns nil for an invalid ID.
func (t *Tree) Box(id BoxID) *LayoutBox {
	if id < 0 || int(id) >= len(t.boxes) {
		return nil
	}
	return &t.boxes[id]
}

// DOM returns the DOM the box tree has been built from.
func (t *Tree) DOM() *dom.Tree {
	return t.dom
}

// Walk visits the boxes of the subtree at id in document order. If f
// returns false, the children of a box are skipped.
func (t *Tree) Walk(id BoxID, f func(id BoxID, b *LayoutBox, depth int) bool) {
	t.walk(id, 0, f)
}

func (t *Tree) walk(id BoxID, depth int, f func(BoxID, *LayoutBox, int) bool) {
	b := t.Box(id)
	if b == nil || !f(id, b, depth) {
		return
	}
	for _, ch := range b.Children {
		t.walk(ch, depth+1, f)
	}
}

// BoxesFor returns the boxes generated for a DOM node, in document order.
func (t *Tree) BoxesFor(node dom.NodeID) []BoxID {
	var ids []BoxID
	t.Walk(t.root, func(id BoxID, b *LayoutBox, _ int) bool {
		if b.Node == node {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Name returns a short name for a box, suitable for tracing.
func (t *Tree) Name(id BoxID) string {
	b := t.Box(id)
	if b == nil {
		return "<nobox>"
	}
	if b.Node == dom.None || t.dom == nil {
		return fmt.Sprintf("%s#%d", b.Kind, id)
	}
	return fmt.Sprintf("%s#%d<%s>", b.Kind, id, t.dom.Name(b.Node))
}

// ResetGeometry clears all geometry written by a previous layout pass.
func (t *Tree) ResetGeometry() {
	for i := range t.boxes {
		t.boxes[i].Dim = frame.Dimensions{}
		t.boxes[i].Baseline = 0
		t.boxes[i].Lines = nil
	}
}

// String returns an indented outline of the tree.
func (t *Tree) String() string {
	var sb strings.Builder
	t.Walk(t.root, func(id BoxID, b *LayoutBox, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(t.Name(id))
		if b.Kind == frame.TextRun {
			fmt.Fprintf(&sb, " %q", abbrev(b.Text))
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}

func (t *Tree) add(b LayoutBox) BoxID {
	t.boxes = append(t.boxes, b)
	return BoxID(len(t.boxes) - 1)
}

func abbrev(s string) string {
	if len(s) > 20 {
		return s[:17] + "..."
	}
	return s
}
