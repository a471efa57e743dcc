package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style"
)

// DefaultFontSize is the font size of the initial style, i.e. CSS `medium`.
const DefaultFontSize = 16 * dimen.PX

// Edges holds four-sided values in CSS order.
type Edges struct {
	Top, Right, Bottom, Left DimenT
}

// ComputedStyle is the typed, computed style of a single box.
//
// Font-relative units are resolved during computation. Percentages, `auto`
// and viewport units are left for layout, which resolves them against the
// containing block or the viewport. Border widths are always absolute.
type ComputedStyle struct {
	Display   DisplayMode
	Position  Position
	Inset     Edges // top, right, bottom, left offsets
	BoxSizing BoxSizing
	Float     Float
	Clear     Clear
	Overflow  Overflow

	Width, Height       DimenT
	MinWidth, MinHeight DimenT
	MaxWidth, MaxHeight DimenT
	Margin              Edges
	Padding             Edges
	Border              Edges
	BorderSpacing       dimen.Dimen

	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	JustifyContent JustifyContent
	AlignItems     Alignment
	AlignContent   Alignment
	AlignSelf      Alignment
	FlexGrow       float64
	FlexShrink     float64
	FlexBasis      DimenT
	Order          int
	RowGap         DimenT
	ColumnGap      DimenT

	GridTemplateColumns []TrackSize
	GridTemplateRows    []TrackSize
	GridTemplateAreas   TemplateAreas
	GridAutoColumns     TrackSize
	GridAutoRows        TrackSize
	GridAutoFlow        GridAutoFlow
	GridRowStart        GridLine
	GridRowEnd          GridLine
	GridColumnStart     GridLine
	GridColumnEnd       GridLine
	JustifyItems        Alignment
	JustifySelf         Alignment

	FontFamily    string
	FontSize      dimen.Dimen
	LineHeight    dimen.Dimen // 0 for `normal`
	WhiteSpace    WhiteSpace
	TextAlign     TextAlign
	VerticalAlign VerticalAlign

	lineHeightFactor float64 // unitless line-height, inherited as a number
}

// InitialStyle returns the style of a root element without any declarations.
func InitialStyle() *ComputedStyle {
	return &ComputedStyle{
		Display:         InlineMode | FlowMode,
		Inset:           Edges{Auto(), Auto(), Auto(), Auto()},
		Width:           Auto(),
		Height:          Auto(),
		MinWidth:        Auto(),
		MinHeight:       Auto(),
		MaxWidth:        Dimen(),
		MaxHeight:       Dimen(),
		Margin:          zeroEdges(),
		Padding:         zeroEdges(),
		Border:          zeroEdges(),
		AlignItems:      AlignStretch,
		AlignContent:    AlignStretch,
		AlignSelf:       AlignAuto,
		FlexShrink:      1,
		FlexBasis:       Auto(),
		RowGap:          SomeDimen(0),
		ColumnGap:       SomeDimen(0),
		GridAutoColumns: AutoTrack,
		GridAutoRows:    AutoTrack,
		JustifyItems:    AlignStretch,
		JustifySelf:     AlignAuto,
		FontFamily:      "sans-serif",
		FontSize:        DefaultFontSize,
	}
}

func zeroEdges() Edges {
	z := SomeDimen(0)
	return Edges{z, z, z, z}
}

// AnonymousStyle returns the style of an anonymous box generated inside a
// box with style parent: inherited properties are taken from parent, all
// others are initial. The display mode is block flow.
func AnonymousStyle(parent *ComputedStyle) *ComputedStyle {
	s := InitialStyle()
	s.Display = BlockMode | FlowMode
	if parent != nil {
		s.inherit(parent)
	}
	return s
}

func (s *ComputedStyle) inherit(parent *ComputedStyle) {
	s.FontFamily = parent.FontFamily
	s.FontSize = parent.FontSize
	s.LineHeight = parent.LineHeight
	s.lineHeightFactor = parent.lineHeightFactor
	s.WhiteSpace = parent.WhiteSpace
	s.TextAlign = parent.TextAlign
	s.BorderSpacing = parent.BorderSpacing
}

// EstablishesBFC is true if a box with this style is the root of a new
// block formatting context. Such boxes do not collapse margins with
// their children.
func (s *ComputedStyle) EstablishesBFC() bool {
	return s.Overflow != OverflowVisible || s.Float != FloatNone ||
		s.Position.IsOutOfFlow() || s.Display.Contains(FlowRoot) ||
		s.Display.Overlaps(FlexMode|GridMode|TableMode)
}

// ComputeStyle creates the computed style from the cascaded longhand
// properties of an element. parent may be nil for the root element, in
// which case rootFontSize is ignored and the root's own font size is used
// for rem units.
func ComputeStyle(props style.PropertyMap, parent *ComputedStyle, rootFontSize dimen.Dimen) *ComputedStyle {
	s := InitialStyle()
	parentFont := DefaultFontSize
	if parent != nil {
		s.inherit(parent)
		parentFont = parent.FontSize
	} else {
		rootFontSize = DefaultFontSize
	}
	// font properties first, they are needed to resolve em units
	if fs := props.Get("font-size"); !fs.IsEmpty() {
		s.FontSize = parseFontSize(fs, parentFont, rootFontSize)
	}
	if parent == nil {
		rootFontSize = s.FontSize
	}
	if ff := props.Get("font-family"); !ff.IsEmpty() {
		s.FontFamily = strings.Trim(strings.TrimSpace(strings.Split(string(ff), ",")[0]), `"'`)
	}
	em := func(key string, deflt DimenT) DimenT {
		p := props.Get(key)
		if p.IsEmpty() {
			return deflt
		}
		switch p {
		case "min-content", "max-content", "fit-content":
			return Auto()
		}
		d := DimenOption(p).ResolveFont(s.FontSize, rootFontSize)
		if d.IsNone() {
			return deflt
		}
		return d
	}
	s.lineHeight(props.Get("line-height"), rootFontSize)
	//
	mode, err := ParseDisplay(string(props.Get("display")))
	if err != nil {
		tracer().Errorf("%v", err)
	}
	if mode != NoMode {
		s.Display = mode
	}
	s.Position = ParsePosition(props.Get("position"))
	s.Inset = Edges{
		Top: em("top", Auto()), Right: em("right", Auto()),
		Bottom: em("bottom", Auto()), Left: em("left", Auto()),
	}
	s.BoxSizing = ParseBoxSizing(props.Get("box-sizing"))
	s.Float = ParseFloat(props.Get("float"))
	s.Clear = ParseClear(props.Get("clear"))
	s.Overflow = ParseOverflow(props.Get("overflow"))
	//
	s.Width, s.Height = em("width", Auto()), em("height", Auto())
	s.MinWidth, s.MinHeight = em("min-width", Auto()), em("min-height", Auto())
	s.MaxWidth, s.MaxHeight = em("max-width", Dimen()), em("max-height", Dimen())
	zero := SomeDimen(0)
	s.Margin = Edges{
		Top: em("margin-top", zero), Right: em("margin-right", zero),
		Bottom: em("margin-bottom", zero), Left: em("margin-left", zero),
	}
	s.Padding = Edges{
		Top: em("padding-top", zero), Right: em("padding-right", zero),
		Bottom: em("padding-bottom", zero), Left: em("padding-left", zero),
	}
	s.Border = Edges{
		Top:    s.borderWidth(props, "top", rootFontSize),
		Right:  s.borderWidth(props, "right", rootFontSize),
		Bottom: s.borderWidth(props, "bottom", rootFontSize),
		Left:   s.borderWidth(props, "left", rootFontSize),
	}
	if bs := props.Get("border-spacing"); !bs.IsEmpty() {
		// of a two-value form only the horizontal spacing is used
		first := style.Property(strings.Fields(string(bs))[0])
		s.BorderSpacing = dimen.NonNeg(DimenOption(first).ResolveFont(s.FontSize, rootFontSize).Unwrap())
	}
	//
	s.FlexDirection = ParseFlexDirection(props.Get("flex-direction"))
	s.FlexWrap = ParseFlexWrap(props.Get("flex-wrap"))
	s.JustifyContent = ParseJustifyContent(props.Get("justify-content"))
	s.AlignItems = ParseAlignment(props.Get("align-items"), AlignStretch)
	if s.AlignItems == AlignAuto {
		s.AlignItems = AlignStretch
	}
	s.AlignContent = ParseAlignment(props.Get("align-content"), AlignStretch)
	s.AlignSelf = ParseAlignment(props.Get("align-self"), AlignAuto)
	s.FlexGrow = parseNonNegNumber(props.Get("flex-grow"), 0)
	s.FlexShrink = parseNonNegNumber(props.Get("flex-shrink"), 1)
	if fb := props.Get("flex-basis"); fb == "content" {
		s.FlexBasis = Auto()
	} else {
		s.FlexBasis = em("flex-basis", Auto())
	}
	if o, err := strconv.Atoi(strings.TrimSpace(string(props.Get("order")))); err == nil {
		s.Order = o
	}
	s.RowGap = gap(em("row-gap", zero))
	s.ColumnGap = gap(em("column-gap", zero))
	//
	s.GridTemplateColumns = s.trackList(props, "grid-template-columns", rootFontSize)
	s.GridTemplateRows = s.trackList(props, "grid-template-rows", rootFontSize)
	if areas := props.Get("grid-template-areas"); !areas.IsEmpty() {
		if s.GridTemplateAreas, err = ParseTemplateAreas(areas); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	if t := s.trackList(props, "grid-auto-columns", rootFontSize); len(t) > 0 {
		s.GridAutoColumns = t[0]
	}
	if t := s.trackList(props, "grid-auto-rows", rootFontSize); len(t) > 0 {
		s.GridAutoRows = t[0]
	}
	s.GridAutoFlow = ParseGridAutoFlow(props.Get("grid-auto-flow"))
	s.GridRowStart = ParseGridLine(props.Get("grid-row-start"))
	s.GridRowEnd = ParseGridLine(props.Get("grid-row-end"))
	s.GridColumnStart = ParseGridLine(props.Get("grid-column-start"))
	s.GridColumnEnd = ParseGridLine(props.Get("grid-column-end"))
	s.JustifyItems = ParseAlignment(props.Get("justify-items"), AlignStretch)
	if s.JustifyItems == AlignAuto {
		s.JustifyItems = AlignStretch
	}
	s.JustifySelf = ParseAlignment(props.Get("justify-self"), AlignAuto)
	//
	if ws := props.Get("white-space"); !ws.IsEmpty() {
		s.WhiteSpace = ParseWhiteSpace(ws)
	}
	if ta := props.Get("text-align"); !ta.IsEmpty() {
		s.TextAlign = ParseTextAlign(ta)
	}
	s.VerticalAlign = ParseVerticalAlign(props.Get("vertical-align"))
	return s
}

// gap maps `normal` and illegal values to zero.
func gap(d DimenT) DimenT {
	if d.IsAutoOrNone() {
		return SomeDimen(0)
	}
	return d
}

var fontSizeKeywords = map[string]float64{
	"xx-small": 9.0 / 16, "x-small": 10.0 / 16, "small": 13.0 / 16, "medium": 1,
	"large": 18.0 / 16, "x-large": 24.0 / 16, "xx-large": 32.0 / 16, "xxx-large": 48.0 / 16,
}

func parseFontSize(p style.Property, parentFont, rootFont dimen.Dimen) dimen.Dimen {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if f, ok := fontSizeKeywords[s]; ok {
		return dimen.Scale(DefaultFontSize, f)
	}
	switch s {
	case "smaller":
		return dimen.Scale(parentFont, 1/1.2)
	case "larger":
		return dimen.Scale(parentFont, 1.2)
	}
	d, err := ParseDimen(s)
	if err != nil {
		tracer().Debugf("illegal font-size %q", s)
		return parentFont
	}
	if d.IsPercent() {
		return dimen.NonNeg(dimen.Scale(parentFont, d.Factor()/100))
	}
	d = d.ResolveFont(parentFont, rootFont)
	if !d.IsAbsolute() {
		return parentFont
	}
	return dimen.NonNeg(d.Unwrap())
}

func (s *ComputedStyle) lineHeight(p style.Property, rootFont dimen.Dimen) {
	v := strings.ToLower(strings.TrimSpace(string(p)))
	switch {
	case v == "":
		if s.lineHeightFactor > 0 {
			s.LineHeight = dimen.Scale(s.FontSize, s.lineHeightFactor)
		}
		return
	case v == "normal":
		s.LineHeight, s.lineHeightFactor = 0, 0
		return
	case isNumber(v):
		f, _ := strconv.ParseFloat(v, 64)
		if f >= 0 {
			s.lineHeightFactor = f
			s.LineHeight = dimen.Scale(s.FontSize, f)
		}
		return
	}
	d, err := ParseDimen(v)
	if err != nil {
		return
	}
	s.lineHeightFactor = 0
	if d.IsPercent() {
		s.LineHeight = dimen.Scale(s.FontSize, d.Factor()/100)
		return
	}
	s.LineHeight = dimen.NonNeg(d.ResolveFont(s.FontSize, rootFont).Unwrap())
}

var borderWidthKeywords = map[string]dimen.Dimen{
	"thin": 1 * dimen.PX, "medium": 3 * dimen.PX, "thick": 5 * dimen.PX,
}

// borderWidth computes the width of one border. Borders with style none
// or hidden have zero width, whatever their declared width is.
func (s *ComputedStyle) borderWidth(props style.PropertyMap, side string, rootFont dimen.Dimen) DimenT {
	bstyle := props.Get("border-" + side + "-style")
	if bstyle.IsEmpty() || bstyle == "none" || bstyle == "hidden" {
		return SomeDimen(0)
	}
	w := strings.ToLower(string(props.Get("border-" + side + "-width")))
	if w == "" {
		w = "medium"
	}
	if d, ok := borderWidthKeywords[w]; ok {
		return SomeDimen(d)
	}
	d := DimenOption(style.Property(w)).ResolveFont(s.FontSize, rootFont)
	if !d.IsAbsolute() {
		return SomeDimen(0)
	}
	return SomeDimen(dimen.NonNeg(d.Unwrap()))
}

func (s *ComputedStyle) trackList(props style.PropertyMap, key string, rootFont dimen.Dimen) []TrackSize {
	p := props.Get(key)
	if p.IsEmpty() {
		return nil
	}
	tracks, err := ParseTrackList(p)
	if err != nil {
		tracer().Errorf("%s: %v", key, err)
	}
	for i, t := range tracks {
		if t.Kind == TrackFixed {
			tracks[i].Size = t.Size.ResolveFont(s.FontSize, rootFont)
		}
	}
	return tracks
}

func parseNonNegNumber(p style.Property, deflt float64) float64 {
	if p.IsEmpty() {
		return deflt
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil || f < 0 {
		return deflt
	}
	return f
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
