package css

import (
	"strings"

	"github.com/npillmayer/webframe/engine/dom/style"
)

// Position is a type for CSS property "position".
type Position uint8

// Positioning schemes. Sticky positioning is treated as relative.
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// IsOutOfFlow is true for absolute and fixed positioning.
func (p Position) IsOutOfFlow() bool {
	return p == PositionAbsolute || p == PositionFixed
}

func (p Position) String() string {
	return [...]string{"static", "relative", "absolute", "fixed"}[p]
}

// BoxSizing is a type for CSS property "box-sizing".
type BoxSizing uint8

// Box sizing modes.
const (
	ContentBox BoxSizing = iota
	BorderBox
)

// Float is a type for CSS property "float".
type Float uint8

// Float values.
const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

// Clear is a type for CSS property "clear".
type Clear uint8

// Clear values.
const (
	ClearNone  Clear = 0
	ClearLeft  Clear = 1
	ClearRight Clear = 2
	ClearBoth  Clear = ClearLeft | ClearRight
)

// Clears is true if c moves a box below floats of side f.
func (c Clear) Clears(f Float) bool {
	switch f {
	case FloatLeft:
		return c&ClearLeft != 0
	case FloatRight:
		return c&ClearRight != 0
	}
	return false
}

// Overflow is a type for CSS property "overflow".
type Overflow uint8

// Overflow values. Anything but visible establishes a block formatting context.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
	OverflowClip
)

// FlexDirection is a type for CSS property "flex-direction".
type FlexDirection uint8

// Flex directions.
const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// IsColumn is true if the main axis is vertical.
func (d FlexDirection) IsColumn() bool {
	return d == FlexColumn || d == FlexColumnReverse
}

// IsReverse is true for the reverse directions.
func (d FlexDirection) IsReverse() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// FlexWrap is a type for CSS property "flex-wrap".
type FlexWrap uint8

// Flex wrap modes.
const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// JustifyContent is a type for CSS property "justify-content".
type JustifyContent uint8

// Main axis distribution of free space.
const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Alignment is a type for the CSS alignment properties "align-items",
// "align-self", "align-content" and "justify-self".
type Alignment uint8

// Alignment values. AlignAuto is valid for align-self and justify-self only
// and means: use the container's value.
const (
	AlignAuto Alignment = iota
	AlignStretch
	AlignStart
	AlignEnd
	AlignCenter
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
	AlignSpaceEvenly
)

func (a Alignment) String() string {
	return [...]string{"auto", "stretch", "start", "end", "center", "baseline",
		"space-between", "space-around", "space-evenly"}[a]
}

// TextAlign is a type for CSS property "text-align".
type TextAlign uint8

// Text alignment values. Justification is treated as left alignment.
const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
)

// WhiteSpace is a type for CSS property "white-space".
type WhiteSpace uint8

// White space handling modes.
const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNoWrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
)

// Collapses is true if sequences of white space collapse into one space.
func (ws WhiteSpace) Collapses() bool {
	return ws == WhiteSpaceNormal || ws == WhiteSpaceNoWrap || ws == WhiteSpacePreLine
}

// Wraps is true if lines may be broken at soft wrap opportunities.
func (ws WhiteSpace) Wraps() bool {
	return ws != WhiteSpaceNoWrap && ws != WhiteSpacePre
}

// VerticalAlign is a type for CSS property "vertical-align".
type VerticalAlign uint8

// Vertical alignment within a line box. All other keywords align at the baseline.
const (
	VAlignBaseline VerticalAlign = iota
	VAlignTop
	VAlignBottom
	VAlignMiddle
)

// GridAutoFlow is a type for CSS property "grid-auto-flow". The `dense`
// keyword is ignored.
type GridAutoFlow uint8

// Grid auto flow values.
const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
)

// --- Parsing ---------------------------------------------------------------

// keyword looks up a property value in a keyword table, returning a default
// for unset or unknown values.
func keyword[T any](p style.Property, table map[string]T, deflt T) T {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if s == "" {
		return deflt
	}
	if v, ok := table[s]; ok {
		return v
	}
	tracer().Debugf("unsupported value %q, using default", s)
	return deflt
}

// ParsePosition interprets a "position" property.
func ParsePosition(p style.Property) Position {
	return keyword(p, map[string]Position{
		"static": PositionStatic, "relative": PositionRelative, "sticky": PositionRelative,
		"absolute": PositionAbsolute, "fixed": PositionFixed,
	}, PositionStatic)
}

// ParseBoxSizing interprets a "box-sizing" property.
func ParseBoxSizing(p style.Property) BoxSizing {
	return keyword(p, map[string]BoxSizing{
		"content-box": ContentBox, "border-box": BorderBox,
	}, ContentBox)
}

// ParseFloat interprets a "float" property.
func ParseFloat(p style.Property) Float {
	return keyword(p, map[string]Float{
		"none": FloatNone, "left": FloatLeft, "right": FloatRight,
		"inline-start": FloatLeft, "inline-end": FloatRight,
	}, FloatNone)
}

// ParseClear interprets a "clear" property.
func ParseClear(p style.Property) Clear {
	return keyword(p, map[string]Clear{
		"none": ClearNone, "left": ClearLeft, "right": ClearRight, "both": ClearBoth,
		"inline-start": ClearLeft, "inline-end": ClearRight,
	}, ClearNone)
}

// ParseOverflow interprets an "overflow" property. Of a two-value form only
// the first value is considered.
func ParseOverflow(p style.Property) Overflow {
	if f := strings.Fields(string(p)); len(f) > 1 {
		p = style.Property(f[0])
	}
	return keyword(p, map[string]Overflow{
		"visible": OverflowVisible, "hidden": OverflowHidden, "scroll": OverflowScroll,
		"auto": OverflowAuto, "clip": OverflowClip,
	}, OverflowVisible)
}

// ParseFlexDirection interprets a "flex-direction" property.
func ParseFlexDirection(p style.Property) FlexDirection {
	return keyword(p, map[string]FlexDirection{
		"row": FlexRow, "row-reverse": FlexRowReverse,
		"column": FlexColumn, "column-reverse": FlexColumnReverse,
	}, FlexRow)
}

// ParseFlexWrap interprets a "flex-wrap" property.
func ParseFlexWrap(p style.Property) FlexWrap {
	return keyword(p, map[string]FlexWrap{
		"nowrap": NoWrap, "wrap": Wrap, "wrap-reverse": WrapReverse,
	}, NoWrap)
}

// ParseJustifyContent interprets a "justify-content" property.
func ParseJustifyContent(p style.Property) JustifyContent {
	return keyword(p, map[string]JustifyContent{
		"flex-start": JustifyStart, "start": JustifyStart, "left": JustifyStart, "normal": JustifyStart,
		"flex-end": JustifyEnd, "end": JustifyEnd, "right": JustifyEnd,
		"center":        JustifyCenter,
		"space-between": JustifySpaceBetween,
		"space-around":  JustifySpaceAround,
		"space-evenly":  JustifySpaceEvenly,
	}, JustifyStart)
}

var alignKeywords = map[string]Alignment{
	"auto": AlignAuto, "normal": AlignStretch, "stretch": AlignStretch,
	"flex-start": AlignStart, "start": AlignStart, "self-start": AlignStart,
	"flex-end": AlignEnd, "end": AlignEnd, "self-end": AlignEnd,
	"center": AlignCenter, "baseline": AlignBaseline,
	"space-between": AlignSpaceBetween, "space-around": AlignSpaceAround,
	"space-evenly": AlignSpaceEvenly,
}

// ParseAlignment interprets one of the alignment properties, with a
// default for unset values.
func ParseAlignment(p style.Property, deflt Alignment) Alignment {
	return keyword(p, alignKeywords, deflt)
}

// ParseTextAlign interprets a "text-align" property.
func ParseTextAlign(p style.Property) TextAlign {
	return keyword(p, map[string]TextAlign{
		"left": TextAlignLeft, "start": TextAlignLeft, "justify": TextAlignLeft,
		"right": TextAlignRight, "end": TextAlignRight,
		"center": TextAlignCenter,
	}, TextAlignLeft)
}

// ParseWhiteSpace interprets a "white-space" property.
func ParseWhiteSpace(p style.Property) WhiteSpace {
	return keyword(p, map[string]WhiteSpace{
		"normal": WhiteSpaceNormal, "nowrap": WhiteSpaceNoWrap, "pre": WhiteSpacePre,
		"pre-wrap": WhiteSpacePreWrap, "break-spaces": WhiteSpacePreWrap,
		"pre-line": WhiteSpacePreLine,
	}, WhiteSpaceNormal)
}

// ParseVerticalAlign interprets a "vertical-align" property.
func ParseVerticalAlign(p style.Property) VerticalAlign {
	return keyword(p, map[string]VerticalAlign{
		"baseline": VAlignBaseline, "top": VAlignTop, "text-top": VAlignTop,
		"bottom": VAlignBottom, "text-bottom": VAlignBottom, "middle": VAlignMiddle,
	}, VAlignBaseline)
}

// ParseGridAutoFlow interprets a "grid-auto-flow" property. `dense` is ignored.
func ParseGridAutoFlow(p style.Property) GridAutoFlow {
	if strings.Contains(string(p), "column") {
		return GridFlowColumn
	}
	return GridFlowRow
}
