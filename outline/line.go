// Package outline infers document structure from positioned text fragments:
// line assembly, font profiling, title extraction, and heading classification.
package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/toccata/fragment"
)

// Line represents a single line of text on a page, reassembled from the
// fragments that share its baseline.
type Line struct {
	// Text is the assembled text content of the line
	Text string

	// X is the horizontal position of the leftmost fragment
	X float64

	// Y is the quantized baseline shared by the line's fragments
	Y float64

	// Height is the glyph height of the leftmost fragment
	Height float64

	// FontName is the font of the leftmost fragment
	FontName string

	// Page is the 1-based page number the line appears on
	Page int
}

// IsEmpty returns true if the line has no text content.
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text) == ""
}

// RuneCount returns the number of runes in the line text.
func (l *Line) RuneCount() int {
	if l == nil {
		return 0
	}
	return len([]rune(l.Text))
}

// AssemblerConfig holds configuration for line assembly.
type AssemblerConfig struct {
	// GroupingTolerance is the vertical quantization unit: fragments whose Y
	// coordinates round to the same multiple of it share a line.
	// Default: 1.0 points.
	GroupingTolerance float64
}

// DefaultAssemblerConfig returns sensible default configuration.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		GroupingTolerance: 1.0,
	}
}

// LineAssembler groups a page's fragments into text lines.
type LineAssembler struct {
	config AssemblerConfig
}

// NewLineAssembler creates a new line assembler with default configuration.
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{
		config: DefaultAssemblerConfig(),
	}
}

// NewLineAssemblerWithConfig creates a line assembler with custom configuration.
func NewLineAssemblerWithConfig(config AssemblerConfig) *LineAssembler {
	return &LineAssembler{
		config: config,
	}
}

// Assemble groups one page's fragments into lines ordered top to bottom
// (descending Y). Fragments with invalid geometry are dropped and counted in
// skipped; lines whose assembled text is empty are dropped silently. An
// empty page yields a nil slice, not an error.
func (a *LineAssembler) Assemble(frags []fragment.TextFragment, page int) (lines []Line, skipped int) {
	if len(frags) == 0 {
		return nil, 0
	}

	tolerance := a.config.GroupingTolerance
	if tolerance <= 0 {
		tolerance = DefaultAssemblerConfig().GroupingTolerance
	}

	// Group fragments by quantized Y. Quantization rounds to the nearest
	// multiple of the tolerance, so baseline jitter smaller than half the
	// tolerance lands in the same band.
	groups := make(map[float64][]fragment.TextFragment)
	for _, frag := range frags {
		if !frag.Valid() {
			skipped++
			continue
		}
		band := math.Round(frag.Y/tolerance) * tolerance
		groups[band] = append(groups[band], frag)
	}

	if len(groups) == 0 {
		return nil, skipped
	}

	lines = make([]Line, 0, len(groups))
	for band, group := range groups {
		line := a.assembleLine(group, band, page)
		if line.IsEmpty() {
			continue
		}
		lines = append(lines, line)
	}

	// Top of page first.
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Y > lines[j].Y
	})

	return lines, skipped
}

// assembleLine merges one Y band's fragments into a Line. Fragments are
// ordered left to right, preserving stream order on X ties, and joined with
// single spaces; runs of whitespace inside fragment text collapse to one
// space.
func (a *LineAssembler) assembleLine(group []fragment.TextFragment, band float64, page int) Line {
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].X < group[j].X
	})

	parts := make([]string, 0, len(group))
	for _, frag := range group {
		parts = append(parts, frag.Text)
	}
	text := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")

	first := group[0]
	return Line{
		Text:     text,
		X:        first.X,
		Y:        band,
		Height:   first.Height,
		FontName: first.FontName,
		Page:     page,
	}
}
