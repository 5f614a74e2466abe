package font

import (
	"strings"

	xfont "golang.org/x/image/font"
)

// Flag is a tri-state run property. Properties absent from a run are Unset,
// which counts as false.
type Flag int8

const (
	Unset Flag = iota
	Off
	On
)

// FlagOf converts a boolean to a set flag.
func FlagOf(b bool) Flag {
	if b {
		return On
	}
	return Off
}

// IsOn is true for On only.
func (f Flag) IsOn() bool {
	return f == On
}

// StyleFlags is a read-only view of the emphasis of a text run.
type StyleFlags interface {
	IsBold() bool
	IsItalic() bool
}

// FormattingFlags holds the emphasis toggles of a text run, as extracted by a
// document reader. Bold and Italic apply to simple scripts, BoldCS and
// ItalicCS to complex scripts.
type FormattingFlags struct {
	Bold     Flag
	BoldCS   Flag
	Italic   Flag
	ItalicCS Flag
}

// IsBold is true if either of the bold toggles is on.
//
// Whether the two toggles may legitimately disagree in real documents is not
// settled; we treat either of them as sufficient.
func (ff FormattingFlags) IsBold() bool {
	return ff.Bold.IsOn() || ff.BoldCS.IsOn()
}

// IsItalic is true if either of the italic toggles is on.
func (ff FormattingFlags) IsItalic() bool {
	return ff.Italic.IsOn() || ff.ItalicCS.IsOn()
}

var _ StyleFlags = FormattingFlags{}

// Variant is one of the four font style variants a run may ask for.
type Variant int

const (
	Normal Variant = iota
	Bold
	Italic
	BoldItalic
)

func (v Variant) String() string {
	switch v {
	case Normal:
		return "Normal"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	}
	return "Variant(?)"
}

// ResolveStyle maps the emphasis of a run to a font style variant.
func ResolveStyle(flags StyleFlags) Variant {
	return VariantOf(flags.IsBold(), flags.IsItalic())
}

// VariantOf maps a pair of booleans to a font style variant.
func VariantOf(bold, italic bool) Variant {
	if bold {
		if italic {
			return BoldItalic
		}
		return Bold
	}
	if italic {
		return Italic
	}
	return Normal
}

// IsBold is true for Bold and BoldItalic.
func (v Variant) IsBold() bool {
	return v == Bold || v == BoldItalic
}

// IsItalic is true for Italic and BoldItalic.
func (v Variant) IsItalic() bool {
	return v == Italic || v == BoldItalic
}

// Style returns the x/image font style of a variant.
func (v Variant) Style() xfont.Style {
	if v.IsItalic() {
		return xfont.StyleItalic
	}
	return xfont.StyleNormal
}

// Weight returns the x/image font weight of a variant.
func (v Variant) Weight() xfont.Weight {
	if v.IsBold() {
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}

// VariantFromStyle folds an x/image style and weight into one of the four
// variants. Oblique counts as italic, everything from semi-bold upwards
// counts as bold.
func VariantFromStyle(style xfont.Style, weight xfont.Weight) Variant {
	italic := style == xfont.StyleItalic || style == xfont.StyleOblique
	return VariantOf(weight >= xfont.WeightSemiBold, italic)
}

// NormalizeFontname creates a registry key from a family name and a variant,
// e.g. "Gill Sans MT" and BoldItalic give "gill_sans_mt-italic-bold".
func NormalizeFontname(family string, v Variant) string {
	fname := strings.TrimSpace(family)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	if v.IsItalic() {
		fname += "-italic"
	}
	if v.IsBold() {
		fname += "-bold"
	}
	return fname
}
