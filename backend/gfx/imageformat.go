package gfx

import (
	"fmt"

	"github.com/npillmayer/runstyle/core"
	"golang.org/x/text/cases"
)

// ImageFormat identifies an encoded image format.
type ImageFormat int

//go:generate stringer -type=ImageFormat
const (
	Bmp ImageFormat = iota
	Gif
	Ico
	Jpeg
	Png
	Wbmp
	Webp
	Pkm
	Ktx
	Astc
	Dng
	Heif
	Avif
	Jxl
)

// numImageFormats follows the generated name table, so it is updated by
// re-running stringer.
const numImageFormats = len(_ImageFormat_index) - 1

// formatsByName maps the case-folded names of all image formats to their
// identifiers. It is read-only after package initialization.
var formatsByName = func() map[string]ImageFormat {
	m := make(map[string]ImageFormat, numImageFormats)
	for f := ImageFormat(0); f < ImageFormat(numImageFormats); f++ {
		m[cases.Fold().String(f.String())] = f
	}
	return m
}()

// ImageFormats returns all supported image formats in order of declaration.
func ImageFormats() []ImageFormat {
	formats := make([]ImageFormat, numImageFormats)
	for i := range formats {
		formats[i] = ImageFormat(i)
	}
	return formats
}

// ParseImageFormat returns the image format with a given name, regardless of
// case, e.g. "png", "PNG" and "Png" all denote Png.
//
// If format does not name a supported image format, a FormatNotSupportedError
// is returned.
func ParseImageFormat(format string) (ImageFormat, error) {
	if f, ok := formatsByName[cases.Fold().String(format)]; ok {
		return f, nil
	}
	tracer().Infof("image format not supported: %q", format)
	return 0, FormatNotSupportedError{Format: format}
}

// FormatNotSupportedError is returned for names of unsupported image formats.
// Format is the name as given by the client.
type FormatNotSupportedError struct {
	Format string
}

func (e FormatNotSupportedError) Error() string {
	return fmt.Sprintf("[%d] ParseImageFormat(%s) error: image format not found", e.ErrorCode(), e.Format)
}

// ErrorCode is core.EUNSUPPORTED.
func (e FormatNotSupportedError) ErrorCode() int {
	return core.EUNSUPPORTED
}

func (e FormatNotSupportedError) UserMessage() string {
	return fmt.Sprintf("image format not supported: %s", e.Format)
}

var _ core.AppError = FormatNotSupportedError{}
