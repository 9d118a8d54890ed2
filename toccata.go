// Package toccata extracts document outlines, a title plus leveled H1-H6
// headings, from positioned text fragments.
//
// Basic usage:
//
//	o, warnings, err := toccata.From(src).Outline(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + toccata.FormatWarnings(warnings))
//	}
//
// With options:
//
//	o, _, err := toccata.From(src).
//	    PageRange(1, 20).
//	    ExcludeRepeatedLines().
//	    Outline(ctx)
//
// The input is any implementation of [fragment.Source]; a PDF reader, a test
// fixture, or anything else that can report positioned text. For advanced use
// cases the lower-level outline package exposes each pipeline stage.
package toccata

import (
	"github.com/tsawler/toccata/fragment"
)

// From creates an Extractor reading from the given fragment source.
//
// Example:
//
//	o, warnings, err := toccata.From(src).Outline(ctx)
func From(src fragment.Source) *Extractor {
	return &Extractor{
		source:  src,
		options: defaultOptions(),
	}
}

// FromPages creates an Extractor over in-memory page fragments. This is
// useful for tests and for callers that have already pulled fragments out of
// a document.
//
// Example:
//
//	o, _, err := toccata.FromPages(page1, page2).Outline(ctx)
func FromPages(pages ...fragment.PageFragments) *Extractor {
	return From(fragment.NewSliceSource(pages...))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	format := toccata.Must(outline.ParseExportFormat("markdown"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	o := toccata.MustOutline(toccata.From(src).Outline(ctx))
func MustOutline[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
