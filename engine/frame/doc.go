/*
Package frame deals with layout frames.

Layout may be understood as the process of placing boxes within
larger boxes. The smallest type of box is a run of text. The largest
type of box is the initial containing block, i.e. the viewport.

Boxes follow the CSS box model: a content rectangle, surrounded by
padding, border and margin. This package holds the vocabulary shared by
box tree construction (package boxtree), intrinsic measurement and layout
(package layout): kinds of boxes, rectangles, edge sizes, containing
blocks and margin collapsing.

All lengths are of type dimen.Dimen, i.e. fixed-point values with
dimen.PX being one CSS pixel.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.frame'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.frame")
}
