package outline

import (
	"sort"
	"strings"
)

// TitleLayout is the result of title extraction.
type TitleLayout struct {
	// Text is the assembled title, empty when no candidate line exists
	Text string

	// Lines are the lines merged into the title, in document order
	Lines []Line

	// MaxHeight is the tallest glyph height seen in the search window
	MaxHeight float64
}

// LineCount returns the number of lines merged into the title.
func (t *TitleLayout) LineCount() int {
	if t == nil {
		return 0
	}
	return len(t.Lines)
}

// Found reports whether a title was extracted.
func (t *TitleLayout) Found() bool {
	return t != nil && t.Text != ""
}

// TitleConfig holds configuration for title extraction.
type TitleConfig struct {
	// MaxPage bounds the search window: only lines on pages 1..MaxPage are
	// title candidates. Default: 2.
	MaxPage int

	// HeightTolerance selects how far below the tallest line a candidate may
	// fall and still join the title. The comparison is strict, so the
	// default of 1.0 admits only sub-point differences.
	HeightTolerance float64
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		MaxPage:         2,
		HeightTolerance: 1.0,
	}
}

// TitleExtractor finds the document title: the tallest text near the front
// of the document.
type TitleExtractor struct {
	config TitleConfig
}

// NewTitleExtractor creates a new title extractor with default configuration.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{
		config: DefaultTitleConfig(),
	}
}

// NewTitleExtractorWithConfig creates a title extractor with custom configuration.
func NewTitleExtractorWithConfig(config TitleConfig) *TitleExtractor {
	return &TitleExtractor{
		config: config,
	}
}

// Extract scans the front of the document for the tallest lines and joins
// them into a title. Lines whose height is within HeightTolerance of the
// maximum, in document order (page ascending, top of page first), each
// contribute their text separated by single spaces. Documents with no line
// in the window yield an empty TitleLayout.
func (e *TitleExtractor) Extract(lines []Line) *TitleLayout {
	var candidates []Line
	for _, line := range lines {
		if line.Page >= 1 && line.Page <= e.config.MaxPage && !line.IsEmpty() {
			candidates = append(candidates, line)
		}
	}
	if len(candidates) == 0 {
		return &TitleLayout{}
	}

	maxHeight := candidates[0].Height
	for _, line := range candidates[1:] {
		if line.Height > maxHeight {
			maxHeight = line.Height
		}
	}

	var selected []Line
	for _, line := range candidates {
		if maxHeight-line.Height < e.config.HeightTolerance {
			selected = append(selected, line)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Page != selected[j].Page {
			return selected[i].Page < selected[j].Page
		}
		return selected[i].Y > selected[j].Y
	})

	parts := make([]string, 0, len(selected))
	for _, line := range selected {
		parts = append(parts, strings.TrimSpace(line.Text))
	}

	return &TitleLayout{
		Text:      strings.Join(parts, " "),
		Lines:     selected,
		MaxHeight: maxHeight,
	}
}
