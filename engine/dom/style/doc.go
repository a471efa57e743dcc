/*
Package style holds raw CSS property values.

Properties are kept as uninterpreted strings until the cascade has settled
on a winning declaration. Shorthand properties are expanded into their
longhands when they are stored into a PropertyMap, so later stages only
ever see longhands. Typed values are created by package css.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webframe.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webframe.cssom")
}
