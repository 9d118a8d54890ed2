package outline

import (
	"math"
	"sort"
	"unicode/utf8"
)

// FontStat records how much text the document sets at one rounded glyph
// height. WeightedCount is the total rune count of qualifying lines, so long
// body paragraphs outweigh short decorated lines.
type FontStat struct {
	Size          float64
	WeightedCount int
}

// FontProfile is the document-wide font size distribution produced by
// [FontProfiler.Profile].
type FontProfile struct {
	// BodySize is the dominant (body text) glyph height
	BodySize float64

	// HeadingSizes are the observed sizes larger than BodySize, descending.
	// Their order defines heading ranks: index 0 is the H1 size.
	HeadingSizes []float64

	// Stats are all observed size buckets, heaviest first
	Stats []FontStat
}

// Rank returns the heading rank of a glyph height: its index in
// HeadingSizes after rounding, or -1 when the size does not read as a
// heading size. Rank 0 is the largest heading size.
func (p *FontProfile) Rank(size float64) int {
	if p == nil {
		return -1
	}
	rounded := math.Round(size)
	for i, s := range p.HeadingSizes {
		if s == rounded {
			return i
		}
	}
	return -1
}

// IsHeadingSize reports whether the given glyph height rounds to one of the
// profile's heading sizes.
func (p *FontProfile) IsHeadingSize(size float64) bool {
	return p.Rank(size) >= 0
}

// LevelCount returns the number of distinct heading sizes.
func (p *FontProfile) LevelCount() int {
	if p == nil {
		return 0
	}
	return len(p.HeadingSizes)
}

// ProfilerConfig holds configuration for font profiling.
type ProfilerConfig struct {
	// MinLineRunes is the minimum rune count for a line to contribute to the
	// histogram. Very short lines (page numbers, bullets) distort the body
	// size estimate. Default: 3.
	MinLineRunes int

	// FallbackBodySize is used when no line qualifies for the histogram.
	// Default: 12.0 points.
	FallbackBodySize float64
}

// DefaultProfilerConfig returns sensible default configuration.
func DefaultProfilerConfig() ProfilerConfig {
	return ProfilerConfig{
		MinLineRunes:     3,
		FallbackBodySize: 12.0,
	}
}

// FontProfiler derives the document's font size distribution from its lines.
type FontProfiler struct {
	config ProfilerConfig
}

// NewFontProfiler creates a new font profiler with default configuration.
func NewFontProfiler() *FontProfiler {
	return &FontProfiler{
		config: DefaultProfilerConfig(),
	}
}

// NewFontProfilerWithConfig creates a font profiler with custom configuration.
func NewFontProfilerWithConfig(config ProfilerConfig) *FontProfiler {
	return &FontProfiler{
		config: config,
	}
}

// Profile buckets lines by rounded glyph height, weighting each bucket by
// rune count. The heaviest bucket is the body size; ties go to the smaller
// size. Every size above the body size becomes a heading size, largest
// first. Lines shorter than MinLineRunes or without positive height are
// ignored.
func (p *FontProfiler) Profile(lines []Line) *FontProfile {
	counts := make(map[float64]int)
	for _, line := range lines {
		if line.Height <= 0 {
			continue
		}
		runes := utf8.RuneCountInString(line.Text)
		if runes < p.config.MinLineRunes {
			continue
		}
		counts[math.Round(line.Height)] += runes
	}

	if len(counts) == 0 {
		return &FontProfile{BodySize: p.config.FallbackBodySize}
	}

	stats := make([]FontStat, 0, len(counts))
	for size, count := range counts {
		stats = append(stats, FontStat{Size: size, WeightedCount: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].WeightedCount != stats[j].WeightedCount {
			return stats[i].WeightedCount > stats[j].WeightedCount
		}
		return stats[i].Size < stats[j].Size
	})

	bodySize := stats[0].Size

	var headingSizes []float64
	for _, s := range stats {
		if s.Size > bodySize {
			headingSizes = append(headingSizes, s.Size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(headingSizes)))

	return &FontProfile{
		BodySize:     bodySize,
		HeadingSizes: headingSizes,
		Stats:        stats,
	}
}
