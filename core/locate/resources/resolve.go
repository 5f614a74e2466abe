package resources

import (
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/runstyle/core/font"
	"github.com/npillmayer/schuko/gconf"
)

// FontFamilyLister lists the names of all font families available to the
// application.
type FontFamilyLister interface {
	FontFamilies() ([]string, error)
}

var _ FontFamilyLister = FontConfig{}
var _ FontFamilyLister = SystemFonts{}

// HostFonts returns the font enumeration facility selected by the global
// configuration: fontconfig if key 'fontconfig' is set, system font folders
// otherwise.
func HostFonts() FontFamilyLister {
	if fcpath := gconf.GetString("fontconfig"); fcpath != "" {
		tracer().Debugf("config[fontconfig] = %s", fcpath)
		return FontConfig{Binary: fcpath}
	}
	return SystemFonts{}
}

// SystemFonts enumerates font families by scanning the platform's font
// folders, reading the family names from every font file found.
type SystemFonts struct{}

// FontFamilies returns the families of all readable font files in the
// platform's font folders. Files which cannot be parsed are skipped.
func (SystemFonts) FontFamilies() ([]string, error) {
	paths := findfont.List()
	tracer().Debugf("found %d font files in system font folders", len(paths))
	return familiesOfFontFiles(paths), nil
}

func familiesOfFontFiles(paths []string) []string {
	var families []string
	seen := make(map[string]bool)
	skipped := 0
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".ttf", ".otf", ".ttc":
		default:
			continue
		}
		names, err := font.LoadFamilyNames(p)
		if err != nil {
			skipped++
			continue
		}
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				families = append(families, name)
			}
		}
	}
	if skipped > 0 {
		tracer().Infof("skipping %d platform fonts: cannot read family names", skipped)
	}
	return families
}
