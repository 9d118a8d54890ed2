package toccata

import (
	"errors"
	"fmt"
)

// ExtractError represents an error that occurred during outline extraction.
// It includes contextual information about where the error occurred.
type ExtractError struct {
	Op   string // Operation that failed (e.g., "read page", "count pages")
	Page int    // Page number where the error occurred (0 if not page-specific)
	Err  error  // Underlying error
}

func (e *ExtractError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("toccata: %s on page %d: %v", e.Op, e.Page, e.Err)
	}
	return fmt.Sprintf("toccata: %s: %v", e.Op, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	// ErrEmptyExtraction indicates the source produced no text fragments at all
	ErrEmptyExtraction = errors.New("no text fragments extracted")

	// ErrNoStructure indicates extraction ran but found no title or headings
	// to build an outline from
	ErrNoStructure = errors.New("no document structure found")

	// ErrNoSource indicates the extractor was built without a fragment source
	ErrNoSource = errors.New("no fragment source specified")
)

// wrapPageError wraps an error with page-specific context.
func wrapPageError(op string, page int, err error) error {
	if err == nil {
		return nil
	}
	return &ExtractError{Op: op, Page: page, Err: err}
}
