package toccata

import (
	"fmt"
	"strings"
)

// Warning codes reported by extraction.
const (
	// WarnSkippedFragments reports fragments dropped for invalid geometry
	WarnSkippedFragments = "skipped-fragments"

	// WarnEmptyPage reports a page that produced no fragments
	WarnEmptyPage = "empty-page"

	// WarnFlatProfile reports a document set in a single font size, where
	// size-based heading detection has nothing to work with
	WarnFlatProfile = "flat-profile"

	// WarnRepeatedLines reports lines removed as running headers or footers
	WarnRepeatedLines = "repeated-lines"
)

// Warning describes a non-fatal issue encountered during extraction.
// Extraction succeeded, but the results may be incomplete or imperfect.
type Warning struct {
	// Code identifies the warning category
	Code string

	// Page is the 1-based page the warning applies to (0 for document-wide)
	Page int

	// Message is a human-readable description
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders a warning list as a single string, one warning per
// line. Returns the empty string for an empty list.
//
// Example:
//
//	o, warnings, err := toccata.From(src).Outline(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + toccata.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
