/*
Package grid places grid items into the cells of a CSS grid.

Items with a definite row and column position are placed first. Items locked
to a column are placed into the first row where their area is free. All
remaining items are auto-placed in order, scanning forward from a cursor in
row-major order (column-major for grid-auto-flow: column), skipping occupied
cells. The grid grows implicit tracks in the flow direction on demand.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.frame.layout'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.frame.layout")
}
