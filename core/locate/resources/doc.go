/*
Package resources locates resources of the host system an application
depends on. Currently this is the list of installed font families.

Font families are enumerated either by the fontconfig system
(https://www.freedesktop.org/wiki/Software/fontconfig/), if the location of
its 'fc-list' binary is set in the global configuration under key
'fontconfig', or else by scanning the platform's font folders.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'runstyle.resources'.
func tracer() tracing.Trace {
	return tracing.Select("runstyle.resources")
}
