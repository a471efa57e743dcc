/*
Package css creates typed values from raw CSS properties.

The central type is ComputedStyle, the per-element record the layout engine
reads. Lengths are represented by the option type DimenT, which is either
unset, `auto`, an absolute dimension, a percentage, or a viewport-relative
length. Font-relative lengths (em, rem) are resolved while computing a style;
percentages and viewport units are left to layout, which knows the
containing block and the viewport.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.cssom")
}
