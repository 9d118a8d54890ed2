// Package fragment defines the input side of outline extraction: positioned
// text fragments, the page-oriented [Source] interface that supplies them,
// and script/direction detection for the text they carry.
//
// # Fragments
//
// A [TextFragment] is one run of text with its page position and glyph
// height. Fragments come from an external document parser; this package
// never touches document bytes. [TextFragment.Valid] filters out fragments
// with corrupt geometry so one bad run cannot fail a document.
//
// # Sources
//
// A [Source] yields fragments page by page:
//
//	count, err := src.PageCount(ctx)
//	frags, err := src.Page(ctx, 1)
//
// [SliceSource] is the in-memory implementation, built from
// [PageFragments] lists. Parsers integrate by implementing Source.
//
// # Script and Direction
//
// [DetectScript] returns the dominant [Script] of a string, and
// [Script.Tag] exposes it as a BCP 47 tag for language-aware consumers.
// [DetectDirection] classifies text as LTR, RTL, or Neutral for
// bidirectional rendering.
package fragment
