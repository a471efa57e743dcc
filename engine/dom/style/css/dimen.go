package css

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style"
)

const (
	dimenNone uint8 = iota
	dimenAbsolute
	dimenAuto
	dimenPRCNT
	dimenEM
	dimenREM
	dimenVW
	dimenVH
	dimenVMIN
	dimenVMAX
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.Dimen // absolute value
	f     float64     // factor for relative values, e.g. 50 for 50%
	flags uint8
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// Auto creates a dimension with value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Percent creates a percentage dimension, e.g. Percent(50) for `50%`.
func Percent(p float64) DimenT {
	return DimenT{f: p, flags: dimenPRCNT}
}

// Unwrap returns the underlying absolute dimension of o.
// For all other kinds of dimensions it returns 0.
func (o DimenT) Unwrap() dimen.Dimen {
	if o.flags != dimenAbsolute {
		return 0
	}
	return o.d
}

// Factor returns the numeric factor of a relative dimension, e.g. 50 for 50%.
func (o DimenT) Factor() float64 {
	return o.f
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsAuto returns true if o is `auto`.
func (o DimenT) IsAuto() bool {
	return o.flags == dimenAuto
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

// IsPercent returns true if o is a percentage.
func (o DimenT) IsPercent() bool {
	return o.flags == dimenPRCNT
}

// IsViewRelative returns true for viewport units (vw, vh, vmin, vmax).
func (o DimenT) IsViewRelative() bool {
	return o.flags >= dimenVW && o.flags <= dimenVMAX
}

// IsFontRelative returns true for em and rem units.
func (o DimenT) IsFontRelative() bool {
	return o.flags == dimenEM || o.flags == dimenREM
}

// IsAutoOrNone returns true if o does not denote a length.
func (o DimenT) IsAutoOrNone() bool {
	return o.flags == dimenNone || o.flags == dimenAuto
}

// Viewport is the size of the initial containing block, used for resolving
// viewport-relative units.
type Viewport struct {
	W, H dimen.Dimen
}

// Resolve converts o to an absolute dimension. Percentages are taken from
// base; if base is dimen.Infinity (indefinite), percentages do not resolve.
// Auto and unset dimensions never resolve.
func (o DimenT) Resolve(base dimen.Dimen, vp Viewport) (dimen.Dimen, bool) {
	switch o.flags {
	case dimenAbsolute:
		return o.d, true
	case dimenPRCNT:
		if base == dimen.Infinity {
			return 0, false
		}
		return dimen.Scale(base, o.f/100), true
	case dimenVW:
		return dimen.Scale(vp.W, o.f/100), true
	case dimenVH:
		return dimen.Scale(vp.H, o.f/100), true
	case dimenVMIN:
		return dimen.Scale(dimen.Min(vp.W, vp.H), o.f/100), true
	case dimenVMAX:
		return dimen.Scale(dimen.Max(vp.W, vp.H), o.f/100), true
	}
	return 0, false
}

// ResolveOr is like Resolve, but returns a default value for dimensions which
// do not resolve.
func (o DimenT) ResolveOr(base dimen.Dimen, vp Viewport, deflt dimen.Dimen) dimen.Dimen {
	if d, ok := o.Resolve(base, vp); ok {
		return d
	}
	return deflt
}

// ResolveFont converts font-relative dimensions to absolute ones.
func (o DimenT) ResolveFont(fontSize, rootFontSize dimen.Dimen) DimenT {
	switch o.flags {
	case dimenEM:
		return SomeDimen(dimen.Scale(fontSize, o.f))
	case dimenREM:
		return SomeDimen(dimen.Scale(rootFontSize, o.f))
	}
	return o
}

func (o DimenT) String() string {
	switch o.flags {
	case dimenNone:
		return "DimenT.None"
	case dimenAuto:
		return "auto"
	case dimenAbsolute:
		return o.d.String()
	}
	if unit, ok := relUnitMap[o.flags]; ok {
		return strconv.FormatFloat(o.f, 'f', -1, 64) + unit
	}
	return "?"
}

var relUnitMap = map[uint8]string{
	dimenEM:    "em",
	dimenREM:   "rem",
	dimenVW:    "vw",
	dimenVH:    "vh",
	dimenVMIN:  "vmin",
	dimenVMAX:  "vmax",
	dimenPRCNT: "%",
}

var relUnitStringMap = map[string]uint8{
	"em":   dimenEM,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPRCNT,
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func DimenOption(p style.Property) DimenT {
	switch p {
	case style.NullStyle, "none", "initial", "inherit", "unset":
		return Dimen()
	case "auto":
		return Auto()
	}
	d, err := ParseDimen(string(p))
	if err != nil {
		tracer().Debugf("illegal dimension %q treated as unset", p)
		return Dimen()
	}
	return d
}

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|[a-zA-Z]{2,4})?$`)

// ParseDimen parses a string to return an optional dimension. Syntax is CSS Unit.
// Valid dimensions are
//
//	15px
//	80%
//	-1.5rem
func ParseDimen(s string) (DimenT, error) {
	d := dimenPattern.FindStringSubmatch(strings.TrimSpace(s))
	if len(d) < 2 {
		return Dimen(), errors.New("format error parsing dimension")
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return Dimen(), errors.New("format error parsing dimension")
	}
	unit := strings.ToLower(d[2])
	if rel, ok := relUnitStringMap[unit]; ok {
		return DimenT{f: n, flags: rel}, nil
	}
	if unit == "" && n != 0 {
		return Dimen(), fmt.Errorf("unit missing for dimension %q", s)
	}
	scale, ok := dimen.UnitScale(unit)
	if !ok {
		return Dimen(), fmt.Errorf("unknown unit in dimension %q", s)
	}
	return SomeDimen(dimen.Scale(scale, n)), nil
}
