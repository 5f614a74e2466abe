/*
Package fontregistry keeps track of the font families known to the host and
of the families documents asked for but the host could not provide.

A Registry is the owner of both sets. Applications usually share the
process-wide GlobalRegistry, which enumerates the host fonts on first use;
tests and embedders may create private registries with NewRegistry.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'runstyle.font'
func tracer() tracing.Trace {
	return tracing.Select("runstyle.font")
}
