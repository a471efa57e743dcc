/*
Package intrinsic computes the intrinsic sizes of boxes.

The min-content size of a box is the narrowest it can get without overflowing
its content, i.e. the width of its widest unbreakable piece of content. The
max-content size is the width it would take if no soft wrap opportunity were
taken.

Measurement is a pure query on a box tree: it never writes any geometry and
may be called at any point during layout. Results are memoized per Measurer,
which is meant to live for a single layout pass.

Percentage widths cannot be resolved without a definite containing block.
Children with a percentage width therefore contribute zero to the intrinsic
sizes of their parent.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intrinsic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.frame.layout'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.frame.layout")
}
