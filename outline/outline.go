package outline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Heading is one entry in a document outline.
type Heading struct {
	// Level is the heading level (H1-H6)
	Level HeadingLevel `json:"level"`

	// Text is the heading text content
	Text string `json:"text"`

	// Page is the 1-based page number where the heading appears
	Page int `json:"page"`
}

// MarshalJSON encodes the level as its wire spelling ("H1".."H6").
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if l < HeadingLevel1 || l > HeadingLevel6 {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes "H1".."H6", accepting lowercase spellings.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, ok := ParseHeadingLevel(s)
	if !ok {
		return fmt.Errorf("invalid heading level %q", s)
	}
	*l = level
	return nil
}

// Outline is the extracted structure of a document: its title and an
// ordered list of leveled headings.
type Outline struct {
	// Title is the document title, empty if none was found
	Title string `json:"title"`

	// Headings are the document's headings in reading order
	Headings []Heading `json:"outline"`
}

// HeadingCount returns the number of headings in the outline.
func (o *Outline) HeadingCount() int {
	if o == nil {
		return 0
	}
	return len(o.Headings)
}

// AtLevel returns all headings at a specific level, in document order.
func (o *Outline) AtLevel(level HeadingLevel) []Heading {
	if o == nil {
		return nil
	}

	var result []Heading
	for _, h := range o.Headings {
		if h.Level == level {
			result = append(result, h)
		}
	}
	return result
}

// HeadingsOnPage returns all headings on the given page, in document order.
func (o *Outline) HeadingsOnPage(page int) []Heading {
	if o == nil {
		return nil
	}

	var result []Heading
	for _, h := range o.Headings {
		if h.Page == page {
			result = append(result, h)
		}
	}
	return result
}

// Builder turns classified lines into an Outline.
type Builder struct {
	strategy Strategy
}

// NewBuilder creates a builder using the default font rank strategy.
func NewBuilder() *Builder {
	return &Builder{
		strategy: NewFontRankStrategy(),
	}
}

// NewBuilderWithStrategy creates a builder using a custom classification
// strategy.
func NewBuilderWithStrategy(strategy Strategy) *Builder {
	if strategy == nil {
		strategy = NewFontRankStrategy()
	}
	return &Builder{
		strategy: strategy,
	}
}

// Build classifies every line in document order and assembles the outline.
// Headings repeating an earlier (text, page) pair are dropped, keeping the
// first occurrence; a heading on a new page is a new entry even when its
// text repeats.
func (b *Builder) Build(title string, lines []Line, profile *FontProfile) *Outline {
	ctx := &ClassifyContext{
		Title:   title,
		Profile: profile,
	}

	var headings []Heading
	for _, line := range lines {
		level, ok := b.strategy.Classify(line, ctx)
		if !ok {
			continue
		}
		headings = append(headings, Heading{
			Level: level,
			Text:  strings.TrimSpace(line.Text),
			Page:  line.Page,
		})
	}

	return &Outline{
		Title:    title,
		Headings: dedupeHeadings(headings),
	}
}

// Entry is a node in the hierarchical view of an outline.
type Entry struct {
	// Heading is the heading for this entry
	Heading Heading

	// Children are the entries nested under this heading
	Children []Entry
}

// Tree returns the hierarchical view of the outline: each heading nests
// under the closest preceding heading of a shallower level. A heading that
// skips levels (an H3 directly after an H1) nests under the H1.
func (o *Outline) Tree() []Entry {
	if o == nil || len(o.Headings) == 0 {
		return nil
	}

	var roots []Entry
	var stack []*Entry

	for _, h := range o.Headings {
		entry := Entry{Heading: h}

		for len(stack) > 0 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, entry)
			stack = append(stack, &roots[len(roots)-1])
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, entry)
			stack = append(stack, &parent.Children[len(parent.Children)-1])
		}
	}

	return roots
}

// dedupeHeadings removes headings whose (text, page) pair duplicates an
// earlier entry, preserving order.
func dedupeHeadings(headings []Heading) []Heading {
	if len(headings) == 0 {
		return nil
	}

	type key struct {
		text string
		page int
	}

	seen := make(map[key]bool, len(headings))
	result := make([]Heading, 0, len(headings))
	for _, h := range headings {
		k := key{text: h.Text, page: h.Page}
		if seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, h)
	}
	return result
}
