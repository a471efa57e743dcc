/*
Package otmetrics implements text metrics for proportional OpenType fonts.

Metrics are taken from font faces created with package
golang.org/x/image/font/opentype. Go Sans (Go Regular) is always present and
used for every font family which has not been registered explicitly.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package otmetrics

import (
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webframe/core"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'webframe.text'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.text")
}

// ScalableFont is a parsed OpenType font.
type ScalableFont struct {
	Fontname string
	SFNT     *sfnt.Font
}

// ParseFont parses an OpenType font from its binary data.
func ParseFont(fbytes []byte) (*ScalableFont, error) {
	f, err := opentype.Parse(fbytes)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font")
	}
	name, _ := f.Name(nil, sfnt.NameIDFull)
	return &ScalableFont{Fontname: name, SFNT: f}, nil
}

// FallbackFont returns Go Sans, a font which is always present.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		var err error
		if fallbackFont, err = ParseFont(goregular.TTF); err != nil {
			panic("cannot load default font") // this cannot happen
		}
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once
var fallbackFont *ScalableFont

// Metrics measures text with OpenType font faces. Faces are created on
// demand for every combination of family and size and then cached.
// Metrics is safe for concurrent use.
type Metrics struct {
	sync.Mutex
	fonts map[string]*ScalableFont
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	size   dimen.Dimen
}

var _ text.Metrics = &Metrics{}

// New creates metrics with no fonts registered besides the fallback font.
func New() *Metrics {
	return &Metrics{
		fonts: make(map[string]*ScalableFont),
		faces: make(map[faceKey]font.Face),
	}
}

// Register makes a font available for a font family.
func (m *Metrics) Register(family string, f *ScalableFont) {
	m.Lock()
	defer m.Unlock()
	m.fonts[strings.ToLower(family)] = f
}

func (m *Metrics) face(f text.Font) font.Face {
	m.Lock()
	defer m.Unlock()
	family := strings.ToLower(f.Family)
	sf, ok := m.fonts[family]
	if !ok {
		sf, family = FallbackFont(), ""
	}
	key := faceKey{family: family, size: f.Size}
	if face, ok := m.faces[key]; ok {
		return face
	}
	size := f.Size.Px()
	if size <= 0 {
		size = 1
	}
	// at 72 DPI a point is a CSS pixel
	face, err := opentype.NewFace(sf.SFNT, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		tracer().Errorf("cannot create face for %s at %s: %v", sf.Fontname, f.Size, err)
		return nil
	}
	m.faces[key] = face
	return face
}

// Advance is part of interface text.Metrics.
func (m *Metrics) Advance(s string, f text.Font) dimen.Dimen {
	if s == "" {
		return 0
	}
	face := m.face(f)
	if face == nil {
		return 0
	}
	m.Lock()
	adv := font.MeasureString(face, s)
	m.Unlock()
	return fromFixed(adv)
}

// Extents is part of interface text.Metrics.
func (m *Metrics) Extents(f text.Font) (dimen.Dimen, dimen.Dimen) {
	face := m.face(f)
	if face == nil {
		return dimen.Scale(f.Size, 0.8), dimen.Scale(f.Size, 0.2)
	}
	m.Lock()
	metrics := face.Metrics()
	m.Unlock()
	return fromFixed(metrics.Ascent), fromFixed(metrics.Descent)
}

func fromFixed(x fixed.Int26_6) dimen.Dimen {
	return dimen.MulDiv(dimen.PX, int64(x), 64)
}
