package style

import (
	"strconv"
	"strings"
)

type expander func(tokens []string) map[string]Property

var sides = [4]string{"top", "right", "bottom", "left"}

var shorthands map[string]expander

func init() {
	shorthands = map[string]expander{
		"margin":        fourSides("margin-%s"),
		"padding":       fourSides("padding-%s"),
		"inset":         fourSides("%s"),
		"border-width":  fourSides("border-%s-width"),
		"border-style":  fourSides("border-%s-style"),
		"border":        borderSides(sides[:]...),
		"border-top":    borderSides("top"),
		"border-right":  borderSides("right"),
		"border-bottom": borderSides("bottom"),
		"border-left":   borderSides("left"),
		"flex":          expandFlex,
		"flex-flow":     expandFlexFlow,
		"gap":           expandGap,
		"grid-gap":      expandGap,
		"grid-column":   gridLines("grid-column"),
		"grid-row":      gridLines("grid-row"),
		"grid-area":     expandGridArea,
	}
}

// fourSides expands 1 to 4 values in CSS top-right-bottom-left order.
func fourSides(pattern string) expander {
	return func(tokens []string) map[string]Property {
		var v [4]string
		switch len(tokens) {
		case 1:
			v = [4]string{tokens[0], tokens[0], tokens[0], tokens[0]}
		case 2:
			v = [4]string{tokens[0], tokens[1], tokens[0], tokens[1]}
		case 3:
			v = [4]string{tokens[0], tokens[1], tokens[2], tokens[1]}
		case 4:
			v = [4]string{tokens[0], tokens[1], tokens[2], tokens[3]}
		default:
			return nil
		}
		m := make(map[string]Property, 4)
		for i, side := range sides {
			m[strings.Replace(pattern, "%s", side, 1)] = Property(v[i])
		}
		return m
	}
}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// borderSides expands `border: 1px solid red` and friends. Color is not
// needed for layout and is dropped.
func borderSides(which ...string) expander {
	return func(tokens []string) map[string]Property {
		if len(tokens) == 0 || len(tokens) > 3 {
			return nil
		}
		width, bstyle := "medium", "none"
		for _, t := range tokens {
			switch {
			case borderStyles[t]:
				bstyle = t
			case t == "thin" || t == "medium" || t == "thick" || startsNumeric(t):
				width = t
			}
		}
		m := make(map[string]Property, 2*len(which))
		for _, side := range which {
			m["border-"+side+"-width"] = Property(width)
			m["border-"+side+"-style"] = Property(bstyle)
		}
		return m
	}
}

// expandFlex follows the CSS flexbox rules for the `flex` shorthand.
func expandFlex(tokens []string) map[string]Property {
	grow, shrink, basis := "0", "1", "auto"
	switch {
	case len(tokens) == 1 && tokens[0] == "none":
		grow, shrink, basis = "0", "0", "auto"
	case len(tokens) == 1 && tokens[0] == "auto":
		grow, shrink, basis = "1", "1", "auto"
	case len(tokens) == 1 && tokens[0] == "initial":
		grow, shrink, basis = "0", "1", "auto"
	case len(tokens) == 1 && isNumber(tokens[0]):
		grow, shrink, basis = tokens[0], "1", "0%"
	case len(tokens) == 1:
		grow, shrink, basis = "1", "1", tokens[0]
	case len(tokens) == 2 && isNumber(tokens[1]):
		grow, shrink, basis = tokens[0], tokens[1], "0%"
	case len(tokens) == 2:
		grow, shrink, basis = tokens[0], "1", tokens[1]
	case len(tokens) == 3:
		grow, shrink, basis = tokens[0], tokens[1], tokens[2]
	default:
		return nil
	}
	if !isNumber(grow) || !isNumber(shrink) {
		return nil
	}
	return map[string]Property{
		"flex-grow":   Property(grow),
		"flex-shrink": Property(shrink),
		"flex-basis":  Property(basis),
	}
}

func expandFlexFlow(tokens []string) map[string]Property {
	if len(tokens) == 0 || len(tokens) > 2 {
		return nil
	}
	m := make(map[string]Property, 2)
	for _, t := range tokens {
		switch t {
		case "row", "row-reverse", "column", "column-reverse":
			m["flex-direction"] = Property(t)
		case "nowrap", "wrap", "wrap-reverse":
			m["flex-wrap"] = Property(t)
		default:
			return nil
		}
	}
	return m
}

func expandGap(tokens []string) map[string]Property {
	switch len(tokens) {
	case 1:
		return map[string]Property{"row-gap": Property(tokens[0]), "column-gap": Property(tokens[0])}
	case 2:
		return map[string]Property{"row-gap": Property(tokens[0]), "column-gap": Property(tokens[1])}
	}
	return nil
}

// gridLines expands `grid-column: 1 / span 2` into start and end lines.
func gridLines(prefix string) expander {
	return func(tokens []string) map[string]Property {
		parts := splitAtSlash(tokens)
		switch len(parts) {
		case 1:
			end := "auto"
			if len(parts[0]) == 1 && isIdent(parts[0][0]) {
				end = parts[0][0]
			}
			return map[string]Property{
				prefix + "-start": Property(strings.Join(parts[0], " ")),
				prefix + "-end":   Property(end),
			}
		case 2:
			return map[string]Property{
				prefix + "-start": Property(strings.Join(parts[0], " ")),
				prefix + "-end":   Property(strings.Join(parts[1], " ")),
			}
		}
		return nil
	}
}

// expandGridArea expands `grid-area: row-start / column-start / row-end / column-end`.
func expandGridArea(tokens []string) map[string]Property {
	parts := splitAtSlash(tokens)
	if len(parts) == 0 || len(parts) > 4 {
		return nil
	}
	v := make([]string, 4)
	for i := range v {
		switch {
		case i < len(parts):
			v[i] = strings.Join(parts[i], " ")
		case i == 1 && isIdent(v[0]):
			v[i] = v[0]
		case i >= 2 && isIdent(v[i-2]):
			v[i] = v[i-2]
		default:
			v[i] = "auto"
		}
	}
	return map[string]Property{
		"grid-row-start":    Property(v[0]),
		"grid-column-start": Property(v[1]),
		"grid-row-end":      Property(v[2]),
		"grid-column-end":   Property(v[3]),
	}
}

func splitAtSlash(tokens []string) [][]string {
	var parts [][]string
	current := []string{}
	for _, t := range tokens {
		if t == "/" {
			parts = append(parts, current)
			current = []string{}
			continue
		}
		current = append(current, t)
	}
	parts = append(parts, current)
	for _, p := range parts {
		if len(p) == 0 {
			return nil
		}
	}
	return parts
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func startsNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}

// isIdent is true for custom identifiers like area names, but not for
// numbers, `span` or `auto`.
func isIdent(s string) bool {
	return s != "" && s != "auto" && s != "span" && !startsNumeric(s)
}
