/*
Package text is the interface between layout and text measurement.

Layout never shapes text itself. It asks a Measurer to break the text of a
run into unbreakable segments and to measure them. A Measurer combines a
Breaker, which finds line-break opportunities, with Metrics, which know
about advance widths and font extents. Sub-packages provide a Unicode line
breaker (segmenter), cell-width metrics (monospace) and metrics of an
OpenType font (otmetrics).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.text'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.text")
}
