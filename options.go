package toccata

import (
	"github.com/tsawler/toccata/outline"
)

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Page selection (1-indexed, stored as-is)
	pages []int

	// Pipeline tuning (zero means the component default)
	lineTolerance  float64
	titleTolerance float64

	// Classification
	strategy outline.Strategy

	// Processing options
	excludeRepeated bool
	sequential      bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:           nil, // nil means all pages
		lineTolerance:   0,   // 0 means the line assembler default
		titleTolerance:  0,   // 0 means the title extractor default
		strategy:        nil, // nil means the font rank strategy
		excludeRepeated: false,
		sequential:      false,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		lineTolerance:   o.lineTolerance,
		titleTolerance:  o.titleTolerance,
		strategy:        o.strategy,
		excludeRepeated: o.excludeRepeated,
		sequential:      o.sequential,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
