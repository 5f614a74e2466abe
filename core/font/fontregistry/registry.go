package fontregistry

import (
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/runstyle/core"
	"github.com/npillmayer/runstyle/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
)

// HostFonts is the host's font management facility: it lists the names of
// all font families installed or otherwise available to the application.
type HostFonts interface {
	FontFamilies() ([]string, error)
}

// Registry is a type for holding information about font families for a
// document renderer.
//
// The set of known families is built on first request and will not change
// afterwards. The set of unknown fonts grows for the lifetime of the registry.
type Registry struct {
	host HostFonts
	// known families, built once
	knownOnce sync.Once
	known     *FamilySet
	knownErr  error
	// unknown families, as recorded by clients
	sync.Mutex
	unknown *hashset.Set
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// known and unknown font families. Host fonts are enumerated using the
// facility configured for package resources.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(resources.HostFonts())
	})
	return globalFontRegistry
}

// NewRegistry creates a registry which will ask host for the list of known
// font families.
func NewRegistry(host HostFonts) *Registry {
	return &Registry{
		host:    host,
		unknown: hashset.New(),
	}
}

// KnownFamilies returns the set of font families available on the host.
//
// The host is queried on the first call only; callers arriving concurrently
// wait until the set is complete. If the host facility fails, its error is
// returned, now and on every subsequent call.
func (fr *Registry) KnownFamilies() (*FamilySet, error) {
	fr.knownOnce.Do(func() {
		if fr.host == nil {
			fr.knownErr = core.Error(core.EINTERNAL, "font registry has no host font facility")
			fr.known = NewFamilySet(nil)
			return
		}
		families, err := fr.host.FontFamilies()
		if err != nil {
			tracer().Errorf("cannot enumerate host font families: %v", err)
			fr.knownErr = err
		}
		fr.known = NewFamilySet(families)
		tracer().Infof("font registry knows %d font families", fr.known.Len())
	})
	return fr.known, fr.knownErr
}

// RecordUnknownFont notes a font family which has been requested but is
// not available. name is not checked against the known families.
func (fr *Registry) RecordUnknownFont(name string) {
	fr.Lock()
	defer fr.Unlock()
	if !fr.unknown.Contains(name) {
		tracer().Debugf("font registry records unknown font %s", name)
		fr.unknown.Add(name)
	}
}

// IsUnknownFont is true if name has been recorded as unknown.
func (fr *Registry) IsUnknownFont(name string) bool {
	fr.Lock()
	defer fr.Unlock()
	return fr.unknown.Contains(name)
}

// UnknownFonts returns the font families recorded as unknown, sorted by name.
func (fr *Registry) UnknownFonts() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, fr.unknown.Size())
	for _, v := range fr.unknown.Values() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}

// CheckFamily is true if a font family is known to the host, spelled exactly
// as given. Otherwise the family is recorded as unknown.
//
// If the host fonts cannot be enumerated, every family is reported as unknown.
func (fr *Registry) CheckFamily(name string) bool {
	known, _ := fr.KnownFamilies()
	if known.Contains(name) {
		return true
	}
	tracer().Infof("font registry does not know font family %s", name)
	fr.RecordUnknownFont(name)
	return false
}

// LogFontList is a helper function to dump the list of known and unknown
// font families to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	defer tracer().SetTraceLevel(level)
	tracer().Infof("--- known font families ---")
	if known, err := fr.KnownFamilies(); err != nil {
		tracer().Infof("error: %v", err)
	} else {
		for _, name := range known.Names() {
			tracer().Infof("family [%s]", name)
		}
	}
	tracer().Infof("--- unknown fonts -----------")
	for _, name := range fr.UnknownFonts() {
		tracer().Infof("unknown [%s]", name)
	}
	tracer().Infof("-----------------------------")
}
