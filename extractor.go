package toccata

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/toccata/fragment"
	"github.com/tsawler/toccata/outline"
)

// pageLines holds the lines assembled from a single page.
type pageLines struct {
	number    int
	fragments int
	skipped   int
	lines     []outline.Line
}

// Extractor provides a fluent interface for extracting document outlines
// from a fragment source. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	source fragment.Source

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		source:  e.source,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	o, _, err := toccata.From(src).Pages(1, 3, 5).Outline(ctx)
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	o, _, err := toccata.From(src).PageRange(1, 10).Outline(ctx)
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// WithLineTolerance sets the vertical tolerance, in text space units, used
// to group fragments into lines. Fragments whose Y coordinates fall into the
// same tolerance band merge into one line.
//
// Example:
//
//	o, _, err := toccata.From(src).WithLineTolerance(2.5).Outline(ctx)
func (e *Extractor) WithLineTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.lineTolerance = tolerance
	return newExt
}

// WithTitleTolerance sets how far below the tallest front-matter line a
// candidate may fall and still join the title.
//
// Example:
//
//	o, _, err := toccata.From(src).WithTitleTolerance(2.0).Outline(ctx)
func (e *Extractor) WithTitleTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.titleTolerance = tolerance
	return newExt
}

// WithStrategy sets the heading classification strategy. The default is the
// font rank strategy; see the outline package for alternatives and for
// composing several strategies.
//
// Example:
//
//	s := outline.Strategies(outline.NewFontRankStrategy(), outline.NewNumberingStrategy())
//	o, _, err := toccata.From(src).WithStrategy(s).Outline(ctx)
func (e *Extractor) WithStrategy(strategy outline.Strategy) *Extractor {
	newExt := e.clone()
	newExt.options.strategy = strategy
	return newExt
}

// ExcludeRepeatedLines configures the extractor to drop lines that recur at
// the same position across pages: running headers, footers, and page number
// furniture.
//
// Example:
//
//	o, _, err := toccata.From(src).ExcludeRepeatedLines().Outline(ctx)
func (e *Extractor) ExcludeRepeatedLines() *Extractor {
	newExt := e.clone()
	newExt.options.excludeRepeated = true
	return newExt
}

// Sequential disables page-parallel processing. Pages are then retrieved and
// assembled one at a time, in order, which can help when the underlying
// source is not safe for concurrent reads.
//
// Example:
//
//	o, _, err := toccata.From(src).Sequential().Outline(ctx)
func (e *Extractor) Sequential() *Extractor {
	newExt := e.clone()
	newExt.options.sequential = true
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Outline runs the full pipeline and returns the document outline: the
// title plus every detected heading in reading order.
//
// Returns the outline, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues (skipped
// fragments, empty pages) where extraction succeeded but results may be
// imperfect. A source with no fragments at all returns ErrEmptyExtraction;
// a document yielding neither headings nor content beyond its title returns
// ErrNoStructure.
//
// Example:
//
//	o, warnings, err := toccata.From(src).Outline(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + toccata.FormatWarnings(warnings))
//	}
func (e *Extractor) Outline(ctx context.Context) (*outline.Outline, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	lines, warnings, err := e.collectLines(ctx)
	if err != nil {
		return nil, warnings, err
	}

	profile := outline.NewFontProfiler().Profile(lines)
	if len(profile.HeadingSizes) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnFlatProfile,
			Message: "document uses a single font size; size-based heading detection is inert",
		})
	}

	title := e.titleExtractor().Extract(lines)
	o := outline.NewBuilderWithStrategy(e.options.strategy).Build(title.Text, lines, profile)

	if o.HeadingCount() == 0 && (!title.Found() || title.LineCount() == len(lines)) {
		return nil, warnings, ErrNoStructure
	}
	return o, warnings, nil
}

// Title extracts and returns just the document title: the text of the
// tallest lines near the front of the document. Returns the empty string
// when no title stands out.
//
// Example:
//
//	title, _, err := toccata.From(src).Title(ctx)
func (e *Extractor) Title(ctx context.Context) (string, []Warning, error) {
	if e.err != nil {
		return "", nil, e.err
	}

	lines, warnings, err := e.collectLines(ctx)
	if err != nil {
		return "", warnings, err
	}

	return e.titleExtractor().Extract(lines).Text, warnings, nil
}

// Headings extracts and returns the document's headings in reading order,
// without the surrounding outline.
//
// Example:
//
//	headings, _, err := toccata.From(src).Headings(ctx)
//	for _, h := range headings {
//	    fmt.Printf("[%s] %s (page %d)\n", h.Level, h.Text, h.Page)
//	}
func (e *Extractor) Headings(ctx context.Context) ([]outline.Heading, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	lines, warnings, err := e.collectLines(ctx)
	if err != nil {
		return nil, warnings, err
	}

	profile := outline.NewFontProfiler().Profile(lines)
	title := e.titleExtractor().Extract(lines)
	o := outline.NewBuilderWithStrategy(e.options.strategy).Build(title.Text, lines, profile)

	return o.Headings, warnings, nil
}

// Lines extracts and returns the assembled text lines from the configured
// pages, in reading order. This exposes the intermediate representation the
// outline pipeline works on, which is useful for diagnosing classification.
//
// Example:
//
//	lines, _, err := toccata.From(src).Lines(ctx)
//	for _, line := range lines {
//	    fmt.Printf("p%d y=%.1f h=%.1f %s\n", line.Page, line.Y, line.Height, line.Text)
//	}
func (e *Extractor) Lines(ctx context.Context) ([]outline.Line, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	return e.collectLines(ctx)
}

// Profile extracts and returns the document's font profile: the dominant
// body size and the larger sizes headings are drawn in.
//
// Example:
//
//	profile, _, err := toccata.From(src).Profile(ctx)
//	fmt.Println("body size:", profile.BodySize)
func (e *Extractor) Profile(ctx context.Context) (*outline.FontProfile, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	lines, warnings, err := e.collectLines(ctx)
	if err != nil {
		return nil, warnings, err
	}

	return outline.NewFontProfiler().Profile(lines), warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages validates the configured page selection against the source's
// page count. If no pages were specified, all pages are selected. The result
// is 1-indexed, deduplicated, and sorted.
func (e *Extractor) resolvePages(ctx context.Context) ([]int, error) {
	count, err := e.source.PageCount(ctx)
	if err != nil {
		return nil, &ExtractError{Op: "count pages", Err: err}
	}

	if len(e.options.pages) == 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool)
	var selected []int
	for _, p := range e.options.pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, count)
		}
		if !seen[p] {
			seen[p] = true
			selected = append(selected, p)
		}
	}

	sort.Ints(selected)
	return selected, nil
}

// collectLines retrieves every selected page and assembles its fragments
// into lines, one goroutine per page, then merges the results in page order.
// Fragment counts and skips are folded into warnings here; a source with no
// fragments at all fails with ErrEmptyExtraction.
func (e *Extractor) collectLines(ctx context.Context) ([]outline.Line, []Warning, error) {
	if e.source == nil {
		return nil, nil, ErrNoSource
	}

	pageNumbers, err := e.resolvePages(ctx)
	if err != nil {
		return nil, nil, err
	}

	assembler := e.assembler()
	results := make([]pageLines, len(pageNumbers))

	g, gctx := errgroup.WithContext(ctx)
	if e.options.sequential {
		g.SetLimit(1)
	} else {
		g.SetLimit(runtime.NumCPU())
	}

	for i, number := range pageNumbers {
		i, number := i, number
		g.Go(func() error {
			frags, err := e.source.Page(gctx, number)
			if err != nil {
				return wrapPageError("read page", number, err)
			}

			lines, skipped := assembler.Assemble(frags, number)
			results[i] = pageLines{
				number:    number,
				fragments: len(frags),
				skipped:   skipped,
				lines:     lines,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	var all []outline.Line
	total := 0
	for _, pr := range results {
		total += pr.fragments
		if pr.fragments == 0 {
			warnings = append(warnings, Warning{
				Code:    WarnEmptyPage,
				Page:    pr.number,
				Message: "page produced no fragments",
			})
		}
		if pr.skipped > 0 {
			warnings = append(warnings, Warning{
				Code:    WarnSkippedFragments,
				Page:    pr.number,
				Message: fmt.Sprintf("skipped %d fragments with invalid geometry", pr.skipped),
			})
		}
		all = append(all, pr.lines...)
	}

	if total == 0 {
		return nil, warnings, ErrEmptyExtraction
	}

	if e.options.excludeRepeated {
		kept, removed := outline.NewRepeatFilter().Filter(all)
		if removed > 0 {
			warnings = append(warnings, Warning{
				Code:    WarnRepeatedLines,
				Message: fmt.Sprintf("removed %d repeated header/footer lines", removed),
			})
		}
		all = kept
	}

	return all, warnings, nil
}

// assembler builds the line assembler for the configured tolerance.
func (e *Extractor) assembler() *outline.LineAssembler {
	if e.options.lineTolerance > 0 {
		config := outline.DefaultAssemblerConfig()
		config.GroupingTolerance = e.options.lineTolerance
		return outline.NewLineAssemblerWithConfig(config)
	}
	return outline.NewLineAssembler()
}

// titleExtractor builds the title extractor for the configured tolerance.
func (e *Extractor) titleExtractor() *outline.TitleExtractor {
	if e.options.titleTolerance > 0 {
		config := outline.DefaultTitleConfig()
		config.HeightTolerance = e.options.titleTolerance
		return outline.NewTitleExtractorWithConfig(config)
	}
	return outline.NewTitleExtractor()
}
