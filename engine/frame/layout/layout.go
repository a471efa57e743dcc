package layout

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/frame"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/intrinsic"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/npillmayer/webframe/engine/text/monospace"
	"github.com/npillmayer/webframe/engine/text/segmenter"
)

// Option configures a layout run.
type Option func(*engine)

// WithTracer directs tracing output of a layout run to t.
func WithTracer(t tracing.Trace) Option {
	return func(e *engine) {
		if t != nil {
			e.trace = t
		}
	}
}

// WithTextMeasurer sets the collaborator used for measuring and breaking
// text. The default measures monospaced text, broken at UAX#14 line break
// opportunities.
func WithTextMeasurer(m text.Measurer) Option {
	return func(e *engine) {
		if m != nil {
			e.text = m
		}
	}
}

// engine holds the state of a single layout run.
type engine struct {
	tree    *boxtree.Tree
	vp      css.Viewport
	trace   tracing.Trace
	text    text.Measurer
	measure *intrinsic.Measurer
	static  map[boxtree.BoxID]dimen.Point // static positions of out-of-flow boxes
	floats  *FloatList                    // floats of the current block formatting context
}

// Layout computes the geometry of every box of a box tree. The viewport is
// the initial containing block for the root box.
//
// Geometry from previous runs is discarded, so Layout may be called again
// for a different viewport. Errors are returned for invalid input, e.g., a
// box without a style, and with code core.ELAYOUT for a viewport without a
// definite, non-negative size.
func Layout(tree *boxtree.Tree, viewport css.Viewport, opts ...Option) (err error) {
	if tree == nil || tree.Len() == 0 {
		return core.Error(core.EMISSING, "cannot lay out empty box tree")
	}
	if viewport.W < 0 || viewport.H < 0 || viewport.W == dimen.Infinity || viewport.H == dimen.Infinity {
		return core.Error(core.ELAYOUT, "viewport %s×%s is not a definite size", viewport.W, viewport.H)
	}
	defer core.Recover(&err)
	e := &engine{
		tree:   tree,
		vp:     viewport,
		trace:  tracer(),
		static: make(map[boxtree.BoxID]dimen.Point),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.text == nil {
		e.text = text.NewMeasurer(segmenter.New(), monospace.New(0, nil))
	}
	e.measure = intrinsic.New(tree, e.text, viewport)
	tree.ResetGeometry()
	e.trace.Debugf("layout of %d boxes for viewport %s×%s", tree.Len(), viewport.W, viewport.H)
	icb := frame.NewContainingBlock(viewport.W, viewport.H)
	root := tree.Root()
	e.layout(root, flow(icb, e.topMargins(root, icb.Width).Resolve()))
	e.positionOutOfFlow(root, icb)
	e.shiftRelative(root)
	e.trace.Debugf("layout done, root is %s", tree.Box(root).Dim.BorderBox())
	return nil
}

// placement tells a box how it is to be placed by its parent.
//
// Boxes in block flow get their width from the width equation and x from the
// containing block; y is the top of the border box, as vertical margins have
// already been collapsed by the parent. All other boxes are sized by their
// parent: x and y are the border box origin, width is the border box width,
// and height, if not negative, the forced border box height.
type placement struct {
	cb     frame.ContainingBlock
	x, y   dimen.Dimen
	width  dimen.Dimen // < 0 for boxes in flow
	height dimen.Dimen // < 0 for auto height
	// contents makes the box as high as its contents, ignoring its own
	// height properties
	contents bool
}

func flow(cb frame.ContainingBlock, y dimen.Dimen) placement {
	return placement{cb: cb, x: cb.X, y: y, width: -1, height: -1}
}

func sized(cb frame.ContainingBlock, x, y, w, h dimen.Dimen) placement {
	return placement{cb: cb, x: x, y: y, width: dimen.NonNeg(w), height: h}
}

func (at placement) inFlow() bool {
	return at.width < 0
}

// blockResult is what a block-level box reports to its parent's block
// formatting context.
type blockResult struct {
	bottom  frame.MarginCollector // bottom margin, collapsed with adjoining descendant margins
	through bool                  // top and bottom margins adjoin (empty box)
}

// layout dispatches a box to the formatting engine responsible for it.
func (e *engine) layout(id boxtree.BoxID, at placement) blockResult {
	b := e.tree.Box(id)
	if b == nil {
		core.Panic(core.EINVALID, "no box with ID %d", id)
	}
	if b.Style == nil {
		core.Panic(core.EINVALID, "box %s has no style", e.tree.Name(id))
	}
	switch b.Kind {
	case frame.BlockContainer, frame.AnonymousBlock, frame.FlexContainer,
		frame.GridContainer, frame.TableWrapper:
		return e.layoutBlock(id, at)
	case frame.FlexItem, frame.GridItem, frame.TableCell:
		if at.inFlow() {
			core.Panic(core.EINVALID, "%s must be sized by its container", e.tree.Name(id))
		}
		return e.layoutBlock(id, at)
	case frame.InlineBlock:
		if at.inFlow() {
			at.width = e.shrinkToFit(id, at.cb.Width-e.horizontalMargins(b, at.cb.Width))
		}
		return e.layoutBlock(id, at)
	case frame.InlineContainer:
		if b.IsInlineFormattingRoot() {
			return e.layoutInlineRoot(id, at)
		}
		e.placeFragmented(id, at)
	case frame.AnonymousInline, frame.TextRun:
		e.placeFragmented(id, at)
	case frame.TableRowGroup, frame.TableRow:
		e.placeTablePart(id, at)
	default:
		core.Panic(core.EINTERNAL, "unknown box kind %d", b.Kind)
	}
	return blockResult{}
}

// --- Geometry helpers ------------------------------------------------------

// resolve resolves a length against a base; lengths which do not resolve
// count as zero.
func (e *engine) resolve(d css.DimenT, base dimen.Dimen) dimen.Dimen {
	return d.ResolveOr(base, e.vp, 0)
}

// definite resolves a length against a base, reporting whether it resolved.
func (e *engine) definite(d css.DimenT, base dimen.Dimen) (dimen.Dimen, bool) {
	return d.Resolve(base, e.vp)
}

// edges resolves four-sided values against the width of the containing
// block. Negative values are kept, as margins may be negative.
func (e *engine) edges(ed css.Edges, cbWidth dimen.Dimen) frame.EdgeSizes {
	return frame.EdgeSizes{
		Top:    e.resolve(ed.Top, cbWidth),
		Right:  e.resolve(ed.Right, cbWidth),
		Bottom: e.resolve(ed.Bottom, cbWidth),
		Left:   e.resolve(ed.Left, cbWidth),
	}
}

func (e *engine) nonNegEdges(ed css.Edges, cbWidth dimen.Dimen) frame.EdgeSizes {
	es := e.edges(ed, cbWidth)
	es.Top, es.Right = dimen.NonNeg(es.Top), dimen.NonNeg(es.Right)
	es.Bottom, es.Left = dimen.NonNeg(es.Bottom), dimen.NonNeg(es.Left)
	return es
}

// paddingAndBorder resolves padding and border widths of a box.
func (e *engine) paddingAndBorder(b *boxtree.LayoutBox, cbWidth dimen.Dimen) (frame.EdgeSizes, frame.EdgeSizes) {
	if b.Kind == frame.TextRun || b.Kind == frame.AnonymousInline {
		return frame.EdgeSizes{}, frame.EdgeSizes{}
	}
	return e.nonNegEdges(b.Style.Padding, cbWidth), e.nonNegEdges(b.Style.Border, cbWidth)
}

func (e *engine) horizontalMargins(b *boxtree.LayoutBox, cbWidth dimen.Dimen) dimen.Dimen {
	return e.resolve(b.Style.Margin.Left, cbWidth) + e.resolve(b.Style.Margin.Right, cbWidth)
}

// shrinkToFit returns the border box width of a box sized to its content,
// given the available width for its border box.
func (e *engine) shrinkToFit(id boxtree.BoxID, available dimen.Dimen) dimen.Dimen {
	b := e.tree.Box(id)
	pad, border := e.paddingAndBorder(b, available)
	pb := pad.Horizontal() + border.Horizontal()
	if w, ok := e.definite(b.Style.Width, available); ok {
		return e.borderBoxWidth(b.Style, w, pb)
	}
	is := e.measure.Measure(id, frame.ContentBox)
	return is.FitContent(dimen.NonNeg(available-pb)) + pb
}

// borderBoxWidth converts a specified width to a border box width.
func (e *engine) borderBoxWidth(s *css.ComputedStyle, w, pb dimen.Dimen) dimen.Dimen {
	if s.BoxSizing == css.BorderBox {
		return dimen.Max(w, pb)
	}
	return dimen.NonNeg(w) + pb
}

// establishesBFC is true if a box does not collapse margins with its
// children.
func (e *engine) establishesBFC(id boxtree.BoxID) bool {
	b := e.tree.Box(id)
	if id == e.tree.Root() {
		return true
	}
	switch b.Kind {
	case frame.FlexItem, frame.GridItem, frame.TableCell, frame.InlineBlock:
		return true
	}
	return b.Style.EstablishesBFC()
}

// inFlowChildren returns the children of a box which are neither positioned
// out of flow nor floating.
func (e *engine) inFlowChildren(id boxtree.BoxID) []boxtree.BoxID {
	b := e.tree.Box(id)
	kids := make([]boxtree.BoxID, 0, len(b.Children))
	for _, ch := range b.Children {
		if c := e.tree.Box(ch); !c.OutOfFlow && !c.Floating {
			kids = append(kids, ch)
		}
	}
	return kids
}

// shift moves a box and all of its descendants, including their line boxes.
func (e *engine) shift(id boxtree.BoxID, dx, dy dimen.Dimen) {
	e.translate(id, dx, dy, false)
}

// translate moves a subtree. With keepFixed set, fixed positioned
// descendants stay where they are.
func (e *engine) translate(id boxtree.BoxID, dx, dy dimen.Dimen, keepFixed bool) {
	if dx == 0 && dy == 0 {
		return
	}
	e.tree.Walk(id, func(cid boxtree.BoxID, b *boxtree.LayoutBox, depth int) bool {
		if keepFixed && cid != id && b.Style.Position == css.PositionFixed {
			return false
		}
		b.Dim.Shift(dx, dy)
		if b.Baseline != 0 {
			b.Baseline += dy
		}
		for i := range b.Lines {
			l := &b.Lines[i]
			l.Rect.X += dx
			l.Rect.Y += dy
			l.Baseline += dy
			for j := range l.Fragments {
				l.Fragments[j].Rect.X += dx
				l.Fragments[j].Rect.Y += dy
			}
		}
		if p, ok := e.static[cid]; ok && cid != id {
			e.static[cid] = dimen.Point{X: p.X + dx, Y: p.Y + dy}
		}
		return true
	})
}

// moveTo moves a laid out box to a new border box origin.
func (e *engine) moveTo(id boxtree.BoxID, x, y dimen.Dimen) {
	bb := e.tree.Box(id).Dim.BorderBox()
	e.shift(id, x-bb.X, y-bb.Y)
}
