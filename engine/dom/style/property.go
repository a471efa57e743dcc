package style

import (
	"sort"
	"strings"
)

// Property is a raw CSS property value, e.g. "15px" or "auto".
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty returns true for an unset property.
func (p Property) IsEmpty() bool {
	return p == NullStyle
}

// PropertyMap holds the longhand properties of a single element.
type PropertyMap map[string]Property

// Get returns the value for a property key, or NullStyle.
func (m PropertyMap) Get(key string) Property {
	if m == nil {
		return NullStyle
	}
	return m[key]
}

// Set stores a property value. Shorthands are expanded into their longhands;
// unknown shorthand syntax leaves the map unchanged.
func (m PropertyMap) Set(key string, value Property) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = Property(strings.TrimSpace(string(value)))
	if expand, ok := shorthands[key]; ok {
		longhands := expand(tokenize(string(value)))
		if longhands == nil {
			tracer().Debugf("cannot expand shorthand %s: %s", key, value)
			return
		}
		for k, v := range longhands {
			m[k] = v
		}
		return
	}
	m[key] = value
}

// Keys returns the property keys of m in sorted order.
func (m PropertyMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsShorthand returns true if a property key denotes a shorthand property.
func IsShorthand(key string) bool {
	_, ok := shorthands[key]
	return ok
}

// tokenize splits a property value at white space, keeping parenthesized
// groups and '/' separators as tokens of their own.
func tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(':
			depth++
			b.WriteRune(r)
		case r == ')':
			if depth > 0 {
				depth--
			}
			b.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		case depth == 0 && r == '/':
			flush()
			tokens = append(tokens, "/")
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return tokens
}
