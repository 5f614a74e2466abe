/*
Package font is for typeface and font style handling.

There is a certain confusion in the nomenclature of typesetting. We will
stick to the following definitions:

* A "typeface" or "family" is a family of fonts. An example is "Helvetica".

* A "variant" is one of the four style combinations a word-processing
document may ask for on a text run: normal, bold, italic or bold-italic.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Documents (e.g., WordprocessingML) carry bold and italic as toggles on a run,
each in two flavours: one for simple scripts and one for complex scripts
(w:b/w:bCs, w:i/w:iCs). Package font folds them into a single Variant.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'runstyle.font'
func tracer() tracing.Trace {
	return tracing.Select("runstyle.font")
}
