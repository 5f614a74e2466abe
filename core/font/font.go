package font

import (
	"bytes"
	"errors"
	"os"

	"golang.org/x/image/font/sfnt"
)

var ttcTag = []byte("ttcf")

// FamilyNames returns the family names advertised by a font file. data may
// hold a single SFNT font (TrueType or OpenType) or a TrueType collection.
// Both the legacy family name (name ID 1) and the typographic family name
// (name ID 16) are reported, without duplicates.
func FamilyNames(data []byte) ([]string, error) {
	var fonts []*sfnt.Font
	if bytes.HasPrefix(data, ttcTag) {
		coll, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		for i := 0; i < coll.NumFonts(); i++ {
			f, err := coll.Font(i)
			if err != nil {
				return nil, err
			}
			fonts = append(fonts, f)
		}
	} else {
		f, err := sfnt.Parse(data)
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, f)
	}
	var buf sfnt.Buffer
	var names []string
	seen := make(map[string]bool)
	for _, f := range fonts {
		for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDTypographicFamily} {
			name, err := f.Name(&buf, id)
			if err != nil {
				if errors.Is(err, sfnt.ErrNotFound) {
					continue
				}
				return names, err
			}
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, sfnt.ErrNotFound
	}
	return names, nil
}

// LoadFamilyNames reads a font file and returns its family names.
func LoadFamilyNames(fontfile string) ([]string, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	names, err := FamilyNames(bytez)
	if err != nil {
		tracer().Debugf("cannot read family names of %s: %v", fontfile, err)
	}
	return names, err
}
