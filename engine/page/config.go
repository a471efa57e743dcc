package page

import (
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/webframe/core/dimen"
	"github.com/npillmayer/webframe/engine/dom/style/css"
	"github.com/npillmayer/webframe/engine/text"
	"github.com/npillmayer/webframe/engine/text/monospace"
	"github.com/npillmayer/webframe/engine/text/otmetrics"
	"github.com/npillmayer/webframe/engine/text/segmenter"
)

// Kinds of text metrics.
const (
	MonospaceMetrics = "monospace"
	OpenTypeMetrics  = "opentype"
)

// Config holds the settings for loading and laying out a page.
type Config struct {
	Viewport    css.Viewport
	Metrics     string        // MonospaceMetrics or OpenTypeMetrics
	FontSize    dimen.Dimen   // root font size
	Fonts       []string      // font families to locate on the system, for OpenType metrics
	LayoutTrace tracing.Trace // sink for layout tracing, nil for the default
}

// DefaultConfig returns a configuration for a 1024×768 viewport and
// monospaced text.
func DefaultConfig() Config {
	return Config{
		Viewport: css.Viewport{W: 1024 * dimen.PX, H: 768 * dimen.PX},
		Metrics:  MonospaceMetrics,
		FontSize: css.DefaultFontSize,
	}
}

// ConfigFrom reads a page configuration. Keys which are not set keep their
// defaults, see DefaultConfig.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	if conf == nil {
		return cfg
	}
	if w := conf.GetInt("viewport.width"); w > 0 {
		cfg.Viewport.W = dimen.Dimen(w) * dimen.PX
	}
	if h := conf.GetInt("viewport.height"); h > 0 {
		cfg.Viewport.H = dimen.Dimen(h) * dimen.PX
	}
	switch m := strings.ToLower(conf.GetString("text.metrics")); m {
	case "", MonospaceMetrics:
	case OpenTypeMetrics:
		cfg.Metrics = OpenTypeMetrics
	default:
		tracer().Errorf("unknown text metrics %q, using monospace", m)
	}
	if fonts := conf.GetString("text.fonts"); fonts != "" {
		for _, f := range strings.Split(fonts, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Fonts = append(cfg.Fonts, f)
			}
		}
	}
	if fs := conf.GetInt("text.fontsize"); fs > 0 {
		cfg.FontSize = dimen.Dimen(fs) * dimen.PX
	}
	if conf.IsSet("layout.trace") {
		t := gologadapter.New()
		t.SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("layout.trace")))
		cfg.LayoutTrace = t
	}
	return cfg
}

// textMeasurer creates the text measurer for the configured metrics.
// Line breaking always follows UAX #14.
func (cfg Config) textMeasurer() text.Measurer {
	if cfg.Metrics == OpenTypeMetrics {
		m := otmetrics.New()
		if missing := m.RegisterSystemFonts(cfg.Fonts...); len(missing) > 0 {
			tracer().Infof("fonts not found, using fallback font: %v", missing)
		}
		return text.NewMeasurer(segmenter.New(), m)
	}
	return text.NewMeasurer(segmenter.New(), monospace.New(0, nil))
}
