package fragment

import "unicode"

// Direction represents the writing direction of text. Outline consumers that
// render headings (TOC views, markdown export) use it to handle
// bidirectional documents.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral if
// no strong directional characters are present.
func DetectDirection(text string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch charDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// charDirection returns the inherent direction of a single rune. Digits,
// punctuation, whitespace, and symbols are Neutral; Arabic, Hebrew, Syriac,
// Thaana, and N'Ko are RTL; everything else reads LTR.
func charDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}

	switch scriptOf(r) {
	case ScriptArabic, ScriptHebrew:
		return RTL
	}

	// Syriac (U+0700–U+074F), Thaana (U+0780–U+07BF), and N'Ko
	// (U+07C0–U+07FF) are RTL but have no Script constant of their own.
	// Everything else in U+0700–U+07FF after the Arabic check is one of them.
	if r >= 0x0700 && r <= 0x07FF {
		return RTL
	}

	return LTR
}
