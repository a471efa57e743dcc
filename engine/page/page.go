package page

import (
	"fmt"
	"io"

	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/cssom/douceuradapter"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/dom/xpathadapter"
	"github.com/npillmayer/webframe/engine/frame/boxtree"
	"github.com/npillmayer/webframe/engine/frame/layout"
)

// Page is a laid out HTML document.
type Page struct {
	DOM    *dom.Tree
	Styles *cssom.Styles
	Boxes  *boxtree.Tree
	cfg    Config
}

// Load parses an HTML document, styles it and lays it out. Style sheets in
// extraCSS are applied with author origin, after the document's own style
// elements.
func Load(r io.Reader, cfg Config, extraCSS ...string) (*Page, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML")
	}
	c := cssom.NewCSSOM(douceuradapter.ParseStyleAttribute)
	if err := addSheet(c, cssom.UserAgentCSS, cssom.UserAgent); err != nil {
		return nil, err
	}
	if cfg.FontSize > 0 && cfg.FontSize != css.DefaultFontSize {
		root := fmt.Sprintf("html { font-size: %gpx }", cfg.FontSize.Px())
		if err := addSheet(c, root, cssom.UserAgent); err != nil {
			return nil, err
		}
	}
	for _, sheet := range doc.StyleElements() {
		if err := addSheet(c, sheet, cssom.Author); err != nil {
			return nil, err
		}
	}
	for _, sheet := range extraCSS {
		if err := addSheet(c, sheet, cssom.Author); err != nil {
			return nil, err
		}
	}
	styles, err := c.Style(doc)
	if err != nil {
		return nil, err
	}
	p := &Page{DOM: doc, Styles: styles, cfg: cfg}
	tracer().Infof("loaded document with %d nodes", doc.Len())
	if err := p.Relayout(cfg.Viewport.W, cfg.Viewport.H); err != nil {
		return nil, err
	}
	return p, nil
}

func addSheet(c *cssom.CSSOM, text string, origin cssom.Origin) error {
	sheet, err := douceuradapter.Parse(text)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse style sheet")
	}
	return c.AddStylesheet(sheet, origin)
}

// Viewport is the viewport of the most recent layout.
func (p *Page) Viewport() css.Viewport {
	return p.cfg.Viewport
}

// Relayout builds a fresh box tree and lays it out for a new viewport size.
func (p *Page) Relayout(width, height dimen.Dimen) error {
	boxes, err := boxtree.Build(p.DOM, p.Styles)
	if err != nil {
		return err
	}
	p.cfg.Viewport = css.Viewport{W: dimen.NonNeg(width), H: dimen.NonNeg(height)}
	opts := []layout.Option{layout.WithTextMeasurer(p.cfg.textMeasurer())}
	if p.cfg.LayoutTrace != nil {
		opts = append(opts, layout.WithTracer(p.cfg.LayoutTrace))
	}
	if err := layout.Layout(boxes, p.cfg.Viewport, opts...); err != nil {
		return err
	}
	p.Boxes = boxes
	tracer().Debugf("laid out %d boxes for %s×%s", boxes.Len(), width, height)
	return nil
}

// Select returns the boxes generated by the elements an XPath expression
// selects, in document order.
func (p *Page) Select(expr string) ([]boxtree.BoxID, error) {
	nodes, err := xpathadapter.Select(p.DOM, expr)
	if err != nil {
		return nil, err
	}
	var ids []boxtree.BoxID
	for _, n := range nodes {
		ids = append(ids, p.Boxes.BoxesFor(n)...)
	}
	return ids, nil
}
