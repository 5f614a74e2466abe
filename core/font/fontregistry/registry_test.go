package fontregistry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/npillmayer/runstyle/core"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// countingHost is a host font facility which counts its enumerations.
type countingHost struct {
	calls    int32
	families []string
	err      error
}

func (h *countingHost) FontFamilies() ([]string, error) {
	atomic.AddInt32(&h.calls, 1)
	return h.families, h.err
}

func (h *countingHost) Calls() int {
	return int(atomic.LoadInt32(&h.calls))
}

var hostFamilies = []string{
	"Arial", "Calibri", "Cambria", "Cambria Math", "DejaVu Sans", "Arial",
}

// --- Test Suite Preparation ------------------------------------------------

type RegistryTestEnviron struct {
	suite.Suite
	host *countingHost
	reg  *Registry
}

// listen for 'go test' command --> run test methods
func TestRegistryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runstyle.font")
	defer teardown()
	suite.Run(t, new(RegistryTestEnviron))
}

// run once, before test suite methods
func (env *RegistryTestEnviron) SetupSuite() {
	tracing.Select("runstyle.font").SetTraceLevel(tracing.LevelInfo)
}

// run before every test method
func (env *RegistryTestEnviron) SetupTest() {
	env.host = &countingHost{families: hostFamilies}
	env.reg = NewRegistry(env.host)
}

// --- Tests -----------------------------------------------------------------

func (env *RegistryTestEnviron) TestKnownFamiliesAreCached() {
	first, err := env.reg.KnownFamilies()
	env.Require().NoError(err)
	second, err := env.reg.KnownFamilies()
	env.Require().NoError(err)
	env.Equal(1, env.host.Calls(), "expected host fonts to be enumerated once")
	env.Same(first, second, "expected the identical set on the second call")
	env.Equal(5, second.Len(), "expected duplicate host families to collapse")
	env.Equal([]string{"Arial", "Calibri", "Cambria", "Cambria Math", "DejaVu Sans"}, second.Names())
}

func (env *RegistryTestEnviron) TestConcurrentFirstAccess() {
	const readers = 32
	var wg sync.WaitGroup
	sets := make([]*FamilySet, readers)
	start := make(chan struct{})
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			sets[i], _ = env.reg.KnownFamilies()
		}(i)
	}
	close(start)
	wg.Wait()
	env.Equal(1, env.host.Calls(), "expected host fonts to be enumerated once")
	for i, s := range sets {
		env.Require().NotNil(s, "reader %d got no set", i)
		env.Same(sets[0], s, "reader %d got a different set", i)
		env.Equal(5, s.Len(), "reader %d got a partial set", i)
	}
}

func (env *RegistryTestEnviron) TestHostFailure() {
	failing := &countingHost{err: core.Error(core.ECONNECTION, "font service down")}
	reg := NewRegistry(failing)
	known, err := reg.KnownFamilies()
	env.Error(err)
	env.Equal(core.ECONNECTION, core.Code(err))
	env.Equal(0, known.Len())
	_, err2 := reg.KnownFamilies()
	env.True(errors.Is(err2, err), "expected the same error on the second call")
	env.Equal(1, failing.Calls())
	env.False(reg.CheckFamily("Arial"))
	env.Equal([]string{"Arial"}, reg.UnknownFonts())
}

func (env *RegistryTestEnviron) TestMissingHost() {
	reg := NewRegistry(nil)
	_, err := reg.KnownFamilies()
	env.Equal(core.EINTERNAL, core.Code(err))
}

func (env *RegistryTestEnviron) TestRecordUnknownFontDeduplicates() {
	env.reg.RecordUnknownFont("Comic Sans MS")
	env.reg.RecordUnknownFont("Comic Sans MS")
	env.Equal([]string{"Comic Sans MS"}, env.reg.UnknownFonts())
	env.True(env.reg.IsUnknownFont("Comic Sans MS"))
	env.False(env.reg.IsUnknownFont("Arial"))
	env.Equal(0, env.host.Calls(), "recording must not enumerate host fonts")
}

func (env *RegistryTestEnviron) TestConcurrentRecording() {
	var wg sync.WaitGroup
	names := []string{"Wingdings", "Comic Sans MS", "Segoe UI", "Aptos"}
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			env.reg.RecordUnknownFont(names[i%len(names)])
		}(i)
	}
	wg.Wait()
	env.Equal([]string{"Aptos", "Comic Sans MS", "Segoe UI", "Wingdings"}, env.reg.UnknownFonts())
}

func (env *RegistryTestEnviron) TestCheckFamily() {
	env.True(env.reg.CheckFamily("Calibri"))
	env.False(env.reg.CheckFamily("calibri"), "expected CheckFamily to match exactly")
	env.False(env.reg.CheckFamily("Aptos"))
	env.Equal([]string{"Aptos", "calibri"}, env.reg.UnknownFonts())
	env.reg.LogFontList()
}

func (env *RegistryTestEnviron) TestFamilySetQueries() {
	known, err := env.reg.KnownFamilies()
	env.Require().NoError(err)
	env.True(known.Contains("Cambria Math"))
	env.False(known.Contains("cambria math"))
	name, ok := known.Lookup("CAMBRIA MATH")
	env.True(ok)
	env.Equal("Cambria Math", name)
	_, ok = known.Lookup("Cambria Mathematics")
	env.False(ok)
	env.Equal([]string{"Cambria", "Cambria Math"}, known.WithPrefix("camb"))
	env.Empty(known.WithPrefix("Helvetica"))
}

func TestGlobalRegistryIsSingleton(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if GlobalRegistry() != GlobalRegistry() {
		t.Errorf("expected global registry to be a singleton")
	}
}
