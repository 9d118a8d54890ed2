package fragment

import (
	"context"
	"fmt"
)

// Source supplies positioned text fragments one page at a time. It is the
// seam between the outline engine and whatever component parses the document
// bytes: a PDF text extractor, a pre-computed dump, a test fixture.
//
// Page numbers are 1-based. Implementations must return fragments in the
// order the parser produced them; the engine imposes its own geometric
// ordering afterward.
type Source interface {
	// PageCount returns the number of pages available.
	PageCount(ctx context.Context) (int, error)

	// Page returns the fragments for page number (1-based). A page with no
	// text returns an empty slice, not an error.
	Page(ctx context.Context, number int) ([]TextFragment, error)
}

// SliceSource is an in-memory Source backed by already-extracted fragments.
// It serves tests and the CLI's fragment-dump input path.
type SliceSource struct {
	pages map[int][]TextFragment
	count int
}

// NewSliceSource builds a SliceSource from per-page fragment lists. Entries
// with the same page number are concatenated in order; entries with a page
// number below 1 are ignored. The page count is the highest page number
// seen, so gaps read as empty pages.
func NewSliceSource(pages ...PageFragments) *SliceSource {
	s := &SliceSource{pages: make(map[int][]TextFragment, len(pages))}
	for _, p := range pages {
		if p.Page < 1 {
			continue
		}
		s.pages[p.Page] = append(s.pages[p.Page], p.Fragments...)
		if p.Page > s.count {
			s.count = p.Page
		}
	}
	return s
}

// PageCount returns the number of pages.
func (s *SliceSource) PageCount(_ context.Context) (int, error) {
	return s.count, nil
}

// Page returns the fragments for the given 1-based page number.
func (s *SliceSource) Page(_ context.Context, number int) ([]TextFragment, error) {
	if number < 1 || number > s.count {
		return nil, fmt.Errorf("page %d out of range [1, %d]", number, s.count)
	}
	return s.pages[number], nil
}
