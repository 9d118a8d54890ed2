package outline

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/toccata/fragment"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H6).
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main title/chapter
	HeadingLevel2                    // H2 - Major section
	HeadingLevel3                    // H3 - Subsection
	HeadingLevel4                    // H4 - Sub-subsection
	HeadingLevel5                    // H5 - Minor heading
	HeadingLevel6                    // H6 - Lowest level heading
)

// String returns the level's wire spelling ("H1".."H6").
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	case HeadingLevel5:
		return "H5"
	case HeadingLevel6:
		return "H6"
	default:
		return "unknown"
	}
}

// HTMLTag returns the HTML tag for this heading level.
func (l HeadingLevel) HTMLTag() string {
	if l >= HeadingLevel1 && l <= HeadingLevel6 {
		return strings.ToLower(l.String())
	}
	return "p"
}

// ParseHeadingLevel parses "H1".."H6" (case-insensitive) into a HeadingLevel.
func ParseHeadingLevel(s string) (HeadingLevel, bool) {
	if len(s) != 2 || (s[0] != 'H' && s[0] != 'h') {
		return HeadingLevelUnknown, false
	}
	if s[1] < '1' || s[1] > '6' {
		return HeadingLevelUnknown, false
	}
	return HeadingLevel(s[1]-'0'), true
}

// levelForRank maps a heading size rank to a level. Ranks 0 through 4 map to
// H1 through H5; documents with more than six distinct heading sizes collapse
// every deeper tier into H6.
func levelForRank(rank int) HeadingLevel {
	if rank >= 5 {
		return HeadingLevel6
	}
	return HeadingLevel(rank + 1)
}

// ClassifyContext carries the document-wide signals a strategy may consult.
type ClassifyContext struct {
	// Title is the extracted document title, empty if none was found
	Title string

	// Profile is the document font profile
	Profile *FontProfile
}

// Strategy decides whether a single line is a heading and at what level.
// Implementations must be stateless with respect to lines: the same line and
// context always classify the same way, whatever order lines arrive in.
type Strategy interface {
	Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool)
}

// numericOnly matches text that is nothing but digits, e.g. a page number.
var numericOnly = regexp.MustCompile(`^\d+$`)

// defaultMinHeadingRunes is the default shortest heading length. Anything at
// or under three runes is treated as decoration rather than a heading.
const defaultMinHeadingRunes = 4

// excluded applies the shared candidate filters: minimum length, purely
// numeric text, and text that restates the document title.
func excluded(text, title string, minRunes int) bool {
	if utf8.RuneCountInString(text) < minRunes {
		return true
	}
	if numericOnly.MatchString(text) {
		return true
	}
	if title != "" && strings.EqualFold(text, title) {
		return true
	}
	return false
}

// FontRankConfig holds configuration for font rank classification.
type FontRankConfig struct {
	// MinTextRunes is the minimum rune count for a heading candidate.
	// Default: 4.
	MinTextRunes int
}

// DefaultFontRankConfig returns sensible default configuration.
func DefaultFontRankConfig() FontRankConfig {
	return FontRankConfig{
		MinTextRunes: defaultMinHeadingRunes,
	}
}

// FontRankStrategy classifies headings by glyph height alone: a line whose
// rounded height sits at rank N among the document's heading sizes becomes a
// level N+1 heading. This is the default strategy.
type FontRankStrategy struct {
	config FontRankConfig
}

// NewFontRankStrategy creates a font rank strategy with default configuration.
func NewFontRankStrategy() *FontRankStrategy {
	return &FontRankStrategy{
		config: DefaultFontRankConfig(),
	}
}

// NewFontRankStrategyWithConfig creates a font rank strategy with custom configuration.
func NewFontRankStrategyWithConfig(config FontRankConfig) *FontRankStrategy {
	return &FontRankStrategy{
		config: config,
	}
}

// Classify assigns a level from the line's heading size rank. Lines at body
// size or smaller, lines shorter than MinTextRunes, purely numeric lines,
// and lines restating the title are not headings.
func (s *FontRankStrategy) Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool) {
	if ctx == nil || ctx.Profile == nil {
		return HeadingLevelUnknown, false
	}
	rank := ctx.Profile.Rank(line.Height)
	if rank < 0 {
		return HeadingLevelUnknown, false
	}

	text := strings.TrimSpace(line.Text)
	if excluded(text, ctx.Title, s.config.MinTextRunes) {
		return HeadingLevelUnknown, false
	}

	return levelForRank(rank), true
}

// NumberingStrategy classifies headings by their numbering prefix: "1." is a
// chapter-level heading, "1.2" a section, "1.2.3" a subsection, and so on.
// "Chapter 7" and "Part II" style prefixes read as top level. It catches
// headings set at body size that a font rank pass would miss.
type NumberingStrategy struct {
	patterns []*regexp.Regexp
}

// NewNumberingStrategy creates a numbering strategy with the default prefix
// patterns: dotted decimal ("1.", "1.2", "1.2.3"), chapter/section/part
// words, Roman numerals, and letter prefixes.
func NewNumberingStrategy() *NumberingStrategy {
	return &NumberingStrategy{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)(chapter|section|part)\s+\d+`),
			regexp.MustCompile(`^(?i)(chapter|part)\s+[IVXLCDM]+\b`),
			regexp.MustCompile(`^\d+(\.\d+)+\.?\s`),
			regexp.MustCompile(`^\d+\.\s`),
			regexp.MustCompile(`^[IVXLCDM]+\.\s`),
			regexp.MustCompile(`^[A-Z]\.\s`),
		},
	}
}

// Classify infers a level from the numbering prefix depth: the number of
// dot-separated components. Lines without a recognized prefix, and lines
// failing the shared exclusions, are not headings.
func (s *NumberingStrategy) Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool) {
	text := strings.TrimSpace(line.Text)

	var title string
	if ctx != nil {
		title = ctx.Title
	}
	if excluded(text, title, defaultMinHeadingRunes) {
		return HeadingLevelUnknown, false
	}

	prefix := ""
	for _, pattern := range s.patterns {
		if match := pattern.FindString(text); match != "" {
			prefix = strings.TrimSpace(match)
			break
		}
	}
	if prefix == "" {
		return HeadingLevelUnknown, false
	}

	lower := strings.ToLower(prefix)
	if strings.HasPrefix(lower, "chapter") || strings.HasPrefix(lower, "part") {
		return HeadingLevel1, true
	}

	// "1." has depth one, "1.2" depth two, "1.2.3" depth three.
	depth := strings.Count(strings.TrimSuffix(prefix, "."), ".") + 1
	if depth > int(HeadingLevel6) {
		return HeadingLevel6, true
	}
	return HeadingLevel(depth), true
}

// boldMarkers are the font name substrings that indicate a heavy face.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// IsBoldFont reports whether a font name indicates a bold or heavy face.
func IsBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range boldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// WeightStrategy classifies lines set in a bold or heavy face. The level
// comes from the font size rank when the size stands out from the body;
// bold lines at body size land on H6.
type WeightStrategy struct{}

// NewWeightStrategy creates a weight strategy.
func NewWeightStrategy() *WeightStrategy {
	return &WeightStrategy{}
}

// Classify accepts lines whose font name carries a weight marker and that
// pass the shared exclusions.
func (s *WeightStrategy) Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool) {
	if !IsBoldFont(line.FontName) {
		return HeadingLevelUnknown, false
	}

	text := strings.TrimSpace(line.Text)
	var title string
	if ctx != nil {
		title = ctx.Title
	}
	if excluded(text, title, defaultMinHeadingRunes) {
		return HeadingLevelUnknown, false
	}

	if ctx != nil && ctx.Profile != nil {
		if rank := ctx.Profile.Rank(line.Height); rank >= 0 {
			return levelForRank(rank), true
		}
	}
	return HeadingLevel6, true
}

// ScriptAware wraps a strategy so that CJK lines rejected only for being
// short get a second look: one or two ideographs form a legitimate heading
// in Han, Kana, and Hangul text, where the default minimum length is built
// for spaced alphabetic scripts.
func ScriptAware(inner Strategy) Strategy {
	return &scriptAwareStrategy{
		inner: inner,
		relaxed: NewFontRankStrategyWithConfig(FontRankConfig{
			MinTextRunes: 1,
		}),
	}
}

type scriptAwareStrategy struct {
	inner   Strategy
	relaxed Strategy
}

func (s *scriptAwareStrategy) Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool) {
	if level, ok := s.inner.Classify(line, ctx); ok {
		return level, true
	}
	if !fragment.DetectScript(line.Text).IsCJK() {
		return HeadingLevelUnknown, false
	}
	return s.relaxed.Classify(line, ctx)
}

// Strategies composes strategies in order; the first one to claim a line
// decides its level.
func Strategies(strategies ...Strategy) Strategy {
	return compositeStrategy(strategies)
}

type compositeStrategy []Strategy

func (c compositeStrategy) Classify(line Line, ctx *ClassifyContext) (HeadingLevel, bool) {
	for _, s := range c {
		if level, ok := s.Classify(line, ctx); ok {
			return level, true
		}
	}
	return HeadingLevelUnknown, false
}
