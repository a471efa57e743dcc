/*
Package cssom implements the CSS cascade for an arena DOM.

Style sheets are abstracted by interface StyleSheet, decoupling the cascade
from any concrete CSS parser (see package douceuradapter for an
implementation). A CSSOM collects style sheets of different origins,
matches their selectors against DOM elements, and settles on a winning
declaration per property, ordered by importance, origin, selector
specificity and source order. The result is a Styles lookup, which maps
every DOM node to a computed style.

Selector matching is done by package cascadia.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.cssom")
}
