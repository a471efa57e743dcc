// Package dimen implements dimensions and units.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Dimen is a dimension type.
// Values are in scaled pixels: one CSS pixel is 65536 scaled points.
// Fixed point arithmetic keeps repeated layout runs bit-identical.
type Dimen int32

// Some pre-defined dimensions. CSS absolute units are anchored at 96px = 1in.
const (
	Zero Dimen = 0
	SP   Dimen = 1       // scaled point = PX / 65536
	PX   Dimen = 65536   // CSS pixel
	PT   Dimen = 87381   // point = 1/72 inch = 4/3 px
	PC   Dimen = 1048576 // pica = 12pt = 16px
	IN   Dimen = 6291456 // inch = 96px
	CM   Dimen = 2477345 // centimeters
	MM   Dimen = 247735  // millimeters
)

// Infinity is the largest possible dimension. It is used as the available
// size of unconstrained axes.
const Infinity Dimen = math.MaxInt32

// Stringer implementation.
func (d Dimen) String() string {
	if d == Infinity {
		return "∞"
	}
	return strconv.FormatFloat(d.Px(), 'f', -1, 64) + "px"
}

// Px returns a dimension in CSS pixels.
func (d Dimen) Px() float64 {
	return float64(d) / float64(PX)
}

// Px creates a dimension from a (possibly fractional) number of CSS pixels.
func Px(px float64) Dimen {
	return Scale(PX, px)
}

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))([a-zA-Z]{2})?$`)

// ParseDimen parses a string to return an absolute dimension. Syntax is CSS Unit,
// restricted to absolute units (px, pt, pc, in, cm, mm). A plain number is
// accepted if it is 0.
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return 0, errors.New("format error parsing dimension")
	}
	n, err := strconv.ParseFloat(d[1], 64)
	if err != nil {
		return 0, errors.New("format error parsing dimension")
	}
	scale, ok := UnitScale(d[2])
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", d[2])
	}
	if d[2] == "" && n != 0 {
		return 0, errors.New("unit missing for non-zero dimension")
	}
	return Scale(scale, n), nil
}

// UnitScale returns the scale of an absolute CSS unit. The empty unit
// scales like pixels.
func UnitScale(unit string) (Dimen, bool) {
	switch unit {
	case "px", "PX", "":
		return PX, true
	case "pt", "PT":
		return PT, true
	case "pc", "PC":
		return PC, true
	case "in", "IN":
		return IN, true
	case "cm", "CM":
		return CM, true
	case "mm", "MM":
		return MM, true
	}
	return 0, false
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}

// NonNeg clamps a dimension to be >= 0.
func NonNeg(d Dimen) Dimen {
	if d < 0 {
		return 0
	}
	return d
}

// Clamp restricts d to the interval [lo, hi]. If lo > hi, lo wins, as CSS
// does for min-width > max-width.
func Clamp(d, lo, hi Dimen) Dimen {
	if d > hi {
		d = hi
	}
	if d < lo {
		d = lo
	}
	return d
}

// Scale multiplies a dimension by a factor, rounding to the nearest scaled point.
// Results are saturated to the range of Dimen; NaN scales to zero.
func Scale(d Dimen, f float64) Dimen {
	x := float64(d) * f
	switch {
	case math.IsNaN(x):
		return 0
	case x >= float64(Infinity):
		return Infinity
	case x <= -float64(Infinity):
		return -Infinity
	}
	return Dimen(math.Round(x))
}

// MulDiv computes d * num / den in 64-bit arithmetic, rounding to the nearest
// scaled point. A zero denominator yields zero.
func MulDiv(d Dimen, num, den int64) Dimen {
	if den == 0 {
		return 0
	}
	x := int64(d) * num
	q, r := x/den, x%den
	if 2*abs64(r) >= abs64(den) {
		if (x < 0) != (den < 0) {
			q--
		} else {
			q++
		}
	}
	if q > int64(Infinity) {
		return Infinity
	} else if q < -int64(Infinity) {
		return -Infinity
	}
	return Dimen(q)
}

// Add adds dimensions, saturating at Infinity.
func Add(a, b Dimen) Dimen {
	x := int64(a) + int64(b)
	if x > int64(Infinity) {
		return Infinity
	} else if x < -int64(Infinity) {
		return -Infinity
	}
	return Dimen(x)
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
