package outline

import (
	"regexp"
	"strings"
)

// RepeatConfig holds configuration for repeated-line filtering.
type RepeatConfig struct {
	// MinPages is the number of distinct pages a line must recur on before
	// it reads as running furniture. Default: 3.
	MinPages int

	// PositionTolerance is the maximum Y spread across occurrences for them
	// to count as the same running line. Default: 5.0 points.
	PositionTolerance float64
}

// DefaultRepeatConfig returns sensible default configuration.
func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{
		MinPages:          3,
		PositionTolerance: 5.0,
	}
}

// RepeatFilter drops lines that recur at the same vertical position across
// pages: running headers, running footers, and page number furniture. Such
// lines are a false-positive source for heading classification when a
// document sets them above body size.
type RepeatFilter struct {
	config RepeatConfig
}

// NewRepeatFilter creates a repeat filter with default configuration.
func NewRepeatFilter() *RepeatFilter {
	return &RepeatFilter{
		config: DefaultRepeatConfig(),
	}
}

// NewRepeatFilterWithConfig creates a repeat filter with custom configuration.
func NewRepeatFilterWithConfig(config RepeatConfig) *RepeatFilter {
	return &RepeatFilter{
		config: config,
	}
}

// digitRuns matches sequences of digits for normalization.
var digitRuns = regexp.MustCompile(`\d+`)

// normalizeRepeatText folds case and replaces digit runs with a placeholder,
// so "Page 3" and "page 17" compare equal.
func normalizeRepeatText(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = digitRuns.ReplaceAllString(normalized, "#")
	return strings.Join(strings.Fields(normalized), " ")
}

// Filter returns the lines that are not running furniture, preserving
// order, along with the number of lines removed. A line is removed when its
// normalized text recurs on at least MinPages distinct pages with all
// occurrences inside the position tolerance.
func (f *RepeatFilter) Filter(lines []Line) ([]Line, int) {
	if len(lines) == 0 {
		return lines, 0
	}

	groups := make(map[string][]int)
	for i, line := range lines {
		key := normalizeRepeatText(line.Text)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], i)
	}

	drop := make(map[int]bool)
	for _, indices := range groups {
		if !f.isRunningLine(lines, indices) {
			continue
		}
		for _, i := range indices {
			drop[i] = true
		}
	}

	if len(drop) == 0 {
		return lines, 0
	}

	kept := make([]Line, 0, len(lines)-len(drop))
	for i, line := range lines {
		if drop[i] {
			continue
		}
		kept = append(kept, line)
	}
	return kept, len(drop)
}

// isRunningLine reports whether a group of occurrences reads as running
// furniture: enough distinct pages and a consistent vertical position.
func (f *RepeatFilter) isRunningLine(lines []Line, indices []int) bool {
	pages := make(map[int]bool, len(indices))
	minY := lines[indices[0]].Y
	maxY := minY

	for _, i := range indices {
		pages[lines[i].Page] = true
		if lines[i].Y < minY {
			minY = lines[i].Y
		}
		if lines[i].Y > maxY {
			maxY = lines[i].Y
		}
	}

	if len(pages) < f.config.MinPages {
		return false
	}
	return maxY-minY <= f.config.PositionTolerance
}
