/*
Package douceuradapter implements cssom.StyleSheet on top of the CSS parser
of package douceur (github.com/aymerick/douceur).

Rules nested in @media blocks for screen or all media are flattened into
the style sheet. All other at-rules are dropped.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/engine/dom/cssom"
	"github.com/npillmayer/webframe/engine/dom/style"
)

// tracer traces with key 'webframe.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.cssom")
}

// CSSStyles is an adapter for a douceur style sheet.
type CSSStyles struct {
	rules []cssom.Rule
}

var _ cssom.StyleSheet = &CSSStyles{}

// Wrap creates a cssom.StyleSheet from a douceur style sheet.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	s := &CSSStyles{}
	if sheet != nil {
		s.addRules(sheet.Rules)
	}
	return s
}

// Parse parses CSS text into a style sheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style sheet")
	}
	return Wrap(sheet), nil
}

func (s *CSSStyles) addRules(rules []*css.Rule) {
	for _, r := range rules {
		switch r.Kind {
		case css.QualifiedRule:
			s.rules = append(s.rules, Rule{r})
		case css.AtRule:
			if strings.TrimPrefix(strings.ToLower(r.Name), "@") == "media" && appliesToScreen(r.Prelude) {
				s.addRules(r.Rules)
			} else {
				tracer().Debugf("dropping at-rule %s %s", r.Name, r.Prelude)
			}
		}
	}
}

func appliesToScreen(prelude string) bool {
	p := strings.ToLower(strings.TrimSpace(prelude))
	switch {
	case p == "":
		return true
	case strings.Contains(p, "print") && !strings.Contains(p, "screen"):
		return false
	}
	return strings.Contains(p, "screen") || strings.Contains(p, "all") || strings.HasPrefix(p, "(")
}

// AppendRules is part of interface cssom.StyleSheet.
func (s *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	s.rules = append(s.rules, other.Rules()...)
}

// Empty is part of interface cssom.StyleSheet.
func (s *CSSStyles) Empty() bool {
	return len(s.rules) == 0
}

// Rules is part of interface cssom.StyleSheet.
func (s *CSSStyles) Rules() []cssom.Rule {
	return s.rules
}

// Rule is an adapter for a douceur rule.
type Rule struct {
	r *css.Rule
}

var _ cssom.Rule = Rule{}

// Selector is part of interface cssom.Rule.
func (r Rule) Selector() string {
	if len(r.r.Selectors) > 0 {
		return strings.Join(r.r.Selectors, ", ")
	}
	return r.r.Prelude
}

// Properties is part of interface cssom.Rule. Keys are returned in order of
// their last declaration.
func (r Rule) Properties() []string {
	seen := make(map[string]bool, len(r.r.Declarations))
	keys := make([]string, 0, len(r.r.Declarations))
	for i := len(r.r.Declarations) - 1; i >= 0; i-- {
		key := strings.ToLower(r.r.Declarations[i].Property)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// Value is part of interface cssom.Rule.
func (r Rule) Value(key string) style.Property {
	if d := r.declaration(key); d != nil {
		v := strings.TrimSpace(d.Value)
		v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
		return style.Property(v)
	}
	return style.NullStyle
}

// IsImportant is part of interface cssom.Rule.
func (r Rule) IsImportant(key string) bool {
	if d := r.declaration(key); d != nil {
		return d.Important || strings.HasSuffix(strings.TrimSpace(d.Value), "!important")
	}
	return false
}

func (r Rule) declaration(key string) *css.Declaration {
	for i := len(r.r.Declarations) - 1; i >= 0; i-- {
		if strings.EqualFold(r.r.Declarations[i].Property, key) {
			return r.r.Declarations[i]
		}
	}
	return nil
}

// ParseStyleAttribute parses the value of an HTML `style` attribute. It is
// a cssom.StyleAttributeParser.
// The last declaration needs a terminating semicolon for douceur to read its
// value.
func ParseStyleAttribute(attr string) (cssom.Rule, error) {
	attr = strings.TrimSpace(attr)
	if attr != "" && !strings.HasSuffix(attr, ";") {
		attr += ";"
	}
	decls, err := parser.ParseDeclarations(attr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style attribute")
	}
	return Rule{r: &css.Rule{Kind: css.QualifiedRule, Declarations: decls}}, nil
}

var _ cssom.StyleAttributeParser = ParseStyleAttribute
