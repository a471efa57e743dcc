/*
Package page runs the complete pipeline from an HTML document to a laid out
box tree.

Loading a page parses the HTML, runs the cascade over the user agent style
sheet, the document's <style> elements, extra style sheets supplied by the
client and inline style attributes, builds the box tree and lays it out for
a viewport. Pages are configured from a schuko.Configuration:

	viewport.width    viewport width in px, default 1024
	viewport.height   viewport height in px, default 768
	text.metrics      "monospace" or "opentype", default "monospace"
	text.fonts        comma separated font families to locate on the system
	text.fontsize     root font size in px, default 16
	layout.trace      trace level of the layout run, e.g. "Debug"

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.page'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.page")
}
