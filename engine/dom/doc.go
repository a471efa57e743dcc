/*
Package dom implements a read-only, arena-indexed document tree.

Nodes are created from an HTML parse tree (package golang.org/x/net/html) and
addressed by NodeID, an index into the arena. Layout never mutates the DOM;
it only reads node kinds, tag names, attributes and the ordered children of
a node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.dom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.dom")
}
