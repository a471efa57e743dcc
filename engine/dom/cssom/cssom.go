package cssom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom"
	"github.com/npillmayer/webframe/engine/dom/style"
	"github.com/npillmayer/webframe/engine/dom/style/css"
)

// Origin is the cascade origin of a style sheet.
type Origin uint8

// Cascade origins, in ascending order of precedence for normal declarations.
// For important declarations the order is reversed, with inline styles
// ranking between author and user agent rules.
const (
	UserAgent Origin = iota
	Author
	Inline
)

func (o Origin) String() string {
	return [...]string{"user-agent", "author", "inline"}[o]
}

// CSSOM collects style sheets and applies them to a DOM.
type CSSOM struct {
	sheets      []originSheet
	parseInline StyleAttributeParser
}

type originSheet struct {
	sheet  StyleSheet
	origin Origin
}

// NewCSSOM creates a CSSOM. If styleAttr is non-nil, it is used to parse the
// `style` attributes of elements. Otherwise inline styles are ignored.
func NewCSSOM(styleAttr StyleAttributeParser) *CSSOM {
	return &CSSOM{parseInline: styleAttr}
}

// AddStylesheet adds a style sheet with a given origin. Sheets of the same
// origin are applied in the order they have been added.
func (c *CSSOM) AddStylesheet(sheet StyleSheet, origin Origin) error {
	if sheet == nil {
		return core.Error(core.EMISSING, "cannot add nil style sheet")
	}
	if origin == Inline {
		return core.Error(core.EINVALID, "inline styles are taken from the DOM")
	}
	c.sheets = append(c.sheets, originSheet{sheet: sheet, origin: origin})
	return nil
}

// --- Cascade ---------------------------------------------------------------

// precedence combines importance and origin into a single rank.
func precedence(origin Origin, important bool) int {
	if !important {
		return int(origin)
	}
	switch origin {
	case Author:
		return 3
	case Inline:
		return 4
	}
	return 5
}

// declaration is a candidate value for a property of an element.
type declaration struct {
	value style.Property
	rank  int
	spec  cascadia.Specificity
	order int
}

func (d declaration) outranks(other declaration) bool {
	if d.rank != other.rank {
		return d.rank > other.rank
	}
	if d.spec != other.spec {
		return other.spec.Less(d.spec)
	}
	return d.order > other.order
}

// cascaded holds the winning declarations for one element.
type cascaded map[string]declaration

func (cd cascaded) offer(rule Rule, origin Origin, spec cascadia.Specificity, order *int) {
	for _, key := range rule.Properties() {
		expanded := style.PropertyMap{}
		expanded.Set(key, rule.Value(key))
		rank := precedence(origin, rule.IsImportant(key))
		*order++
		for longhand, value := range expanded {
			d := declaration{value: value, rank: rank, spec: spec, order: *order}
			if prev, ok := cd[longhand]; !ok || d.outranks(prev) {
				cd[longhand] = d
			}
		}
	}
}

type compiledRule struct {
	rule   Rule
	group  cascadia.SelectorGroup
	origin Origin
}

func (c *CSSOM) compile() []compiledRule {
	var rules []compiledRule
	for _, s := range c.sheets {
		if s.sheet.Empty() {
			continue
		}
		for _, r := range s.sheet.Rules() {
			group, err := cascadia.ParseGroup(r.Selector())
			if err != nil {
				tracer().Debugf("skipping rule with unsupported selector %q: %v", r.Selector(), err)
				continue
			}
			rules = append(rules, compiledRule{rule: r, group: group, origin: s.origin})
		}
	}
	return rules
}

// Style runs the cascade for a DOM tree and computes the style of every node.
func (c *CSSOM) Style(doc *dom.Tree) (*Styles, error) {
	if doc == nil {
		return nil, core.Error(core.EINVALID, "cannot style nil DOM")
	}
	rules := c.compile()
	tracer().Debugf("cascading %d rules", len(rules))
	styles := &Styles{
		computed: make([]*css.ComputedStyle, doc.Len()),
		props:    make([]style.PropertyMap, doc.Len()),
	}
	root := css.InitialStyle()
	root.Display = css.BlockMode | css.FlowMode
	styles.computed[doc.Root()] = root
	styles.props[doc.Root()] = style.PropertyMap{}
	rootFont := css.DefaultFontSize
	doc.Walk(doc.Root(), func(id dom.NodeID, n *dom.Node) bool {
		if id == doc.Root() {
			return true
		}
		parent := n.Parent
		parentStyle := styles.computed[parent]
		switch n.Kind {
		case dom.ElementNode:
			props := c.cascade(doc, id, rules)
			resolveKeywords(props, styles.props[parent])
			styles.props[id] = props
			var ps *css.ComputedStyle
			if parent != doc.Root() {
				ps = parentStyle
			}
			cs := css.ComputeStyle(props, ps, rootFont)
			if ps == nil {
				rootFont = cs.FontSize
			}
			styles.computed[id] = cs
		case dom.TextNode:
			cs := css.AnonymousStyle(parentStyle)
			cs.Display = css.InlineMode | css.FlowMode
			styles.computed[id] = cs
		default:
			cs := css.AnonymousStyle(parentStyle)
			cs.Display = css.DisplayNone
			styles.computed[id] = cs
		}
		return true
	})
	return styles, nil
}

// cascade determines the winning declarations for an element.
func (c *CSSOM) cascade(doc *dom.Tree, id dom.NodeID, rules []compiledRule) style.PropertyMap {
	h := doc.HTMLNode(id)
	cd := cascaded{}
	order := 0
	for _, r := range rules {
		matched := false
		var best cascadia.Specificity
		for _, sel := range r.group {
			if sel.Match(h) {
				if sp := sel.Specificity(); !matched || best.Less(sp) {
					best = sp
				}
				matched = true
			}
		}
		if matched {
			cd.offer(r.rule, r.origin, best, &order)
		} else {
			order += len(r.rule.Properties())
		}
	}
	if c.parseInline != nil {
		if attr, ok := doc.Attr(id, "style"); ok && attr != "" {
			rule, err := c.parseInline(attr)
			if err != nil {
				tracer().Errorf("ignoring style attribute of <%s>: %v", doc.Name(id), err)
			} else {
				cd.offer(rule, Inline, cascadia.Specificity{}, &order)
			}
		}
	}
	props := make(style.PropertyMap, len(cd))
	for k, d := range cd {
		props[k] = d.value
	}
	return props
}

// resolveKeywords replaces the CSS-wide keywords `inherit`, `initial` and
// `unset` in the cascaded properties of an element.
func resolveKeywords(props, parent style.PropertyMap) {
	for k, v := range props {
		switch v {
		case "inherit":
			if pv := parent.Get(k); !pv.IsEmpty() {
				props[k] = pv
			} else {
				delete(props, k)
			}
		case "initial", "unset":
			delete(props, k)
		}
	}
}

// --- Styles ----------------------------------------------------------------

// Styles is a total lookup from DOM nodes to computed styles, valid for the
// DOM tree it has been created for.
type Styles struct {
	computed []*css.ComputedStyle
	props    []style.PropertyMap
}

// StyleFor returns the computed style of a node. Nodes which are not part
// of the styled tree yield a style with display none.
func (s *Styles) StyleFor(id dom.NodeID) *css.ComputedStyle {
	if id < 0 || int(id) >= len(s.computed) || s.computed[id] == nil {
		cs := css.InitialStyle()
		cs.Display = css.DisplayNone
		return cs
	}
	return s.computed[id]
}

// Properties returns the cascaded longhand properties of an element.
func (s *Styles) Properties(id dom.NodeID) style.PropertyMap {
	if id < 0 || int(id) >= len(s.props) {
		return nil
	}
	return s.props[id]
}

// RootFontSize returns the font size of the document element.
func (s *Styles) RootFontSize(doc *dom.Tree) dimen.Dimen {
	if de, ok := doc.DocumentElement(); ok {
		return s.StyleFor(de).FontSize
	}
	return css.DefaultFontSize
}

func (s *Styles) String() string {
	return fmt.Sprintf("Styles(%d nodes)", len(s.computed))
}
