package fragment

import "math"

// TextFragment represents a positioned piece of text handed to the outline
// engine by a document parser. Coordinates follow the PDF convention: X grows
// rightward, Y grows upward, so larger Y means higher on the page. Height is
// the rendered glyph height in text-space units and stands in for font size.
type TextFragment struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Height   float64 `json:"height"`
	FontName string  `json:"font,omitempty"`
}

// Valid reports whether the fragment carries usable geometry. Parsers emit
// the occasional fragment with missing or corrupt metrics; those are skipped
// rather than failing the whole document.
func (f TextFragment) Valid() bool {
	if math.IsNaN(f.X) || math.IsInf(f.X, 0) {
		return false
	}
	if math.IsNaN(f.Y) || math.IsInf(f.Y, 0) {
		return false
	}
	if math.IsNaN(f.Height) || math.IsInf(f.Height, 0) || f.Height <= 0 {
		return false
	}
	return true
}

// PageFragments holds all fragments extracted from a single page.
// Page numbers are 1-based.
type PageFragments struct {
	Page      int            `json:"page"`
	Fragments []TextFragment `json:"fragments"`
}
