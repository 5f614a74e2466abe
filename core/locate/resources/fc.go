package resources

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/npillmayer/runstyle/core"
)

// FontConfig enumerates font families by calling the fontconfig binary
// 'fc-list'. Binary has to be the absolute path of the binary.
//
// We call the binary instead of using the C library because of possible version
// issues.
type FontConfig struct {
	Binary string
}

// FontFamilies runs fc-list and returns the families it reports. Families
// with localized names are reported under every name.
func (fc FontConfig) FontFamilies() ([]string, error) {
	if err := checkFontConfigBinary(fc.Binary); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	fccmd := exec.Command(fc.Binary)
	fccmd.Stdout = &out
	if err := fccmd.Run(); err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"fontconfig binary failed: %s", fc.Binary)
	}
	families, err := parseFontConfigList(&out)
	if err != nil {
		return families, err
	}
	tracer().Infof("fontconfig lists %d font families", len(families))
	return families, nil
}

func checkFontConfigBinary(fcpath string) error {
	if fcpath == "" {
		tracer().Infof("fontconfig not configured: key 'fontconfig' should point location of 'fc-list' binary")
		return core.Error(core.EMISSING, "fontconfig not configured")
	}
	if !path.IsAbs(fcpath) {
		return core.Error(core.EINVALID, "fontconfig binary fc-list must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || fi.IsDir() || (fi.Mode().Perm()&0100) == 0 {
		return core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return nil
}

// parseFontConfigList reads the default output format of fc-list, i.e. lines of
//
//	/path/to/font.ttf: Family[,Other Family...]:style=Regular[,...]
//
// and returns the family names in order of first appearance.
func parseFontConfigList(r io.Reader) ([]string, error) {
	var families []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		for _, fam := range strings.Split(fields[1], ",") {
			fam = strings.TrimSpace(fam)
			fam = strings.TrimPrefix(fam, ".") // hidden system fonts on macOS
			if fam == "" || seen[fam] {
				continue
			}
			seen[fam] = true
			families = append(families, fam)
		}
	}
	if err := scanner.Err(); err != nil {
		return families, core.WrapError(err, core.EINVALID,
			"encountered a problem during reading of fontconfig font list")
	}
	return families, nil
}
