/*
Package boxtree produces a box tree from a styled DOM.

Every element and text node of the DOM which takes part in layout generates
one box (or none, for display:none). Anonymous boxes are inserted where the
CSS visual formatting model requires them:

  * a block container holds either block-level boxes only, or a single
    anonymous InlineContainer which establishes an inline formatting context;
    runs of inline-level content among block-level siblings are wrapped into
    an AnonymousBlock carrying an InlineContainer
  * children of flex and grid containers are blockified into flex items and
    grid items
  * table-internal boxes are wrapped into the missing parts of the chain
    TableWrapper → TableRowGroup → TableRow → TableCell (CSS 2.1 §17.2.1)

The box tree is an arena of LayoutBox values, addressed by BoxID. Boxes refer
to their children by index, never to their parents. Layout is strictly
top-down and threads a containing block through recursion.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.frame.box")
}
