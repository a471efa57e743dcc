package otmetrics

import (
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/webframe/core"
)

// LocateSystemFont searches the system's font directories for a font
// family and parses it. The family name is matched against font file names,
// with and without a ".ttf" or ".otf" suffix.
func LocateSystemFont(family string) (*ScalableFont, error) {
	name := strings.TrimSpace(family)
	if name == "" {
		return nil, core.Error(core.EMISSING, "font family missing")
	}
	var fpath string
	for _, candidate := range []string{name, name + ".ttf", name + ".otf"} {
		if p, err := findfont.Find(candidate); err == nil && p != "" {
			fpath = p
			break
		}
	}
	if fpath == "" {
		return nil, core.Error(core.EMISSING, "font not found: %s", family)
	}
	tracer().Debugf("%s is a system font at %s", family, fpath)
	fbytes, err := os.ReadFile(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font %s", fpath)
	}
	f, err := ParseFont(fbytes)
	if err != nil {
		return nil, err
	}
	f.Fontname = family
	return f, nil
}

// RegisterSystemFonts locates system fonts for a list of families and
// registers the ones found. It returns the families which could not be
// located; text in these families is measured with the fallback font.
func (m *Metrics) RegisterSystemFonts(families ...string) (missing []string) {
	for _, family := range families {
		f, err := LocateSystemFont(family)
		if err != nil {
			tracer().Infof("%v", err)
			missing = append(missing, family)
			continue
		}
		m.Register(family, f)
	}
	return missing
}
