/*
Package monospace implements text metrics for monospaced output.

Every grapheme occupies a number of cells, as given by its East Asian width
(UAX #11). A cell is a fixed fraction of the font size wide. Monospace
metrics are deterministic and independent of any font file, which makes
them the default for tests and for terminal output.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.text'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.text")
}
