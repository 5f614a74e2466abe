/*
Package gfx holds the vocabulary a renderer uses to talk to its graphics
backend. Currently this is the closed set of encoded image formats.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package gfx

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'runstyle.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("runstyle.gfx")
}
