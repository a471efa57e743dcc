/*
Package layout computes the geometry of a box tree.

Layout takes a box tree (see package boxtree) and a viewport and computes the
margin, border, padding and content edges of every box. The viewport is the
initial containing block; its size resolves viewport units.

The Layout Orchestrator is a recursive dispatcher over the closed set of box
kinds. It threads containing blocks top-down, while the formatting engines
for block, inline, flex, grid and table formatting contexts report used sizes
bottom-up. Intrinsic sizes are queried from package intrinsic, which never
writes any geometry.

Layout is single-threaded and synchronous. Each call owns the box tree for
the duration of the traversal. Geometry is written fresh on every call, so
laying out an unchanged tree twice yields identical results.

Tracing goes to an injected sink (see WithTracer). Layout never modifies
global tracing state.

Invaluable:
https://developer.mozilla.org/en-US/docs/Web/CSS/Visual_formatting_model

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.frame.layout'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.frame.layout")
}
