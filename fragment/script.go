package fragment

import (
	"unicode"

	"golang.org/x/text/language"
)

// Script identifies the dominant writing system of a piece of text. The
// outline engine itself is script-agnostic; classification strategies may
// consult the detected script to adjust heuristics that assume spaced,
// alphabetic text (for example minimum heading length).
type Script int

const (
	// ScriptUnknown means no strong script characters were found.
	ScriptUnknown Script = iota
	ScriptLatin
	ScriptCyrillic
	ScriptGreek
	ScriptArabic
	ScriptHebrew
	ScriptHan
	ScriptHiragana
	ScriptKatakana
	ScriptHangul
	ScriptThai
	ScriptDevanagari

	scriptCount // number of Script values, for counting arrays
)

// String returns the English name of the script.
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "Latin"
	case ScriptCyrillic:
		return "Cyrillic"
	case ScriptGreek:
		return "Greek"
	case ScriptArabic:
		return "Arabic"
	case ScriptHebrew:
		return "Hebrew"
	case ScriptHan:
		return "Han"
	case ScriptHiragana:
		return "Hiragana"
	case ScriptKatakana:
		return "Katakana"
	case ScriptHangul:
		return "Hangul"
	case ScriptThai:
		return "Thai"
	case ScriptDevanagari:
		return "Devanagari"
	default:
		return "Unknown"
	}
}

// Code returns the ISO 15924 four-letter script code ("Latn", "Hani", ...).
// Unknown scripts return "Zzzz", the ISO code for uncoded script.
func (s Script) Code() string {
	switch s {
	case ScriptLatin:
		return "Latn"
	case ScriptCyrillic:
		return "Cyrl"
	case ScriptGreek:
		return "Grek"
	case ScriptArabic:
		return "Arab"
	case ScriptHebrew:
		return "Hebr"
	case ScriptHan:
		return "Hani"
	case ScriptHiragana:
		return "Hira"
	case ScriptKatakana:
		return "Kana"
	case ScriptHangul:
		return "Hang"
	case ScriptThai:
		return "Thai"
	case ScriptDevanagari:
		return "Deva"
	default:
		return "Zzzz"
	}
}

// Tag returns a BCP 47 tag carrying the script with an undetermined
// language, e.g. "und-Arab" for ScriptArabic. Consumers that feed detected
// text into language-aware tooling (collation, matching, rendering) use
// this as the interchange value. ScriptUnknown maps to language.Und.
func (s Script) Tag() language.Tag {
	if s == ScriptUnknown {
		return language.Und
	}
	return language.MustParse("und-" + s.Code())
}

// IsCJK reports whether the script is Han, Hiragana, Katakana, or Hangul.
// Headings in these scripts are routinely one to three characters long,
// so length-based filtering must not apply to them.
func (s Script) IsCJK() bool {
	switch s {
	case ScriptHan, ScriptHiragana, ScriptKatakana, ScriptHangul:
		return true
	}
	return false
}

// DetectScript analyzes a string and returns its dominant script, counting
// letters per script and picking the highest. Digits, punctuation, and
// whitespace carry no script. Returns ScriptUnknown when no letter maps to
// a known script.
func DetectScript(text string) Script {
	var counts [scriptCount]int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		counts[scriptOf(r)]++
	}

	best := ScriptUnknown
	bestCount := 0
	for s := ScriptLatin; s < scriptCount; s++ {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best
}

// scriptOf returns the script of a single letter rune by Unicode block.
func scriptOf(r rune) Script {
	switch {
	case isLatin(r):
		return ScriptLatin
	case r >= 0x0400 && r <= 0x052F: // Cyrillic + Cyrillic Supplement
		return ScriptCyrillic
	case isGreek(r):
		return ScriptGreek
	case isArabic(r):
		return ScriptArabic
	case isHebrew(r):
		return ScriptHebrew
	case isHan(r):
		return ScriptHan
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return ScriptHiragana
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return ScriptKatakana
	case isHangul(r):
		return ScriptHangul
	case r >= 0x0E00 && r <= 0x0E7F: // Thai
		return ScriptThai
	case r >= 0x0900 && r <= 0x097F: // Devanagari
		return ScriptDevanagari
	default:
		return ScriptUnknown
	}
}

// isLatin reports whether r is in a Latin Unicode block.
// This includes:
//   - Basic Latin: U+0000–U+007F
//   - Latin-1 Supplement: U+0080–U+00FF
//   - Latin Extended-A: U+0100–U+017F
//   - Latin Extended-B: U+0180–U+024F
func isLatin(r rune) bool {
	return r <= 0x024F
}

// isGreek reports whether r is in a Greek Unicode block.
// This includes:
//   - Greek and Coptic: U+0370–U+03FF
//   - Greek Extended: U+1F00–U+1FFF
func isGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) ||
		(r >= 0x1F00 && r <= 0x1FFF)
}

// isArabic reports whether r is in an Arabic Unicode block.
// This includes:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// isHebrew reports whether r is in a Hebrew Unicode block.
// This includes:
//   - Hebrew: U+0590–U+05FF
//   - Hebrew Presentation Forms: U+FB1D–U+FB4F
func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isHan reports whether r is a CJK unified ideograph.
// This includes:
//   - CJK Unified Ideographs: U+4E00–U+9FFF
//   - CJK Extension A: U+3400–U+4DBF
func isHan(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF)
}

// isHangul reports whether r is in a Hangul Unicode block.
// This includes:
//   - Hangul Jamo: U+1100–U+11FF
//   - Hangul Syllables: U+AC00–U+D7AF
func isHangul(r rune) bool {
	return (r >= 0x1100 && r <= 0x11FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}
