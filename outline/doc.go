// Package outline infers document structure from positioned text fragments.
//
// This package turns per-page text lines into a document outline: a title
// plus an ordered list of H1-H6 headings with page numbers. The inference is
// unsupervised and typographic: glyph heights stand in for font sizes, the
// dominant size reads as body text, and larger sizes rank into heading
// levels.
//
// # Pipeline
//
// The components compose in sequence:
//
//	assembler := outline.NewLineAssembler()
//	lines, _ := assembler.Assemble(frags, pageNumber)
//
//	profile := outline.NewFontProfiler().Profile(allLines)
//	title := outline.NewTitleExtractor().Extract(allLines)
//	result := outline.NewBuilder().Build(title.Text, allLines, profile)
//
// Each stage is independent: [LineAssembler] works per page and carries no
// state across calls, so pages can be assembled concurrently and merged in
// page order before profiling.
//
// # Components
//
//   - [LineAssembler] - groups fragments sharing a baseline into text lines
//   - [FontProfiler] - buckets glyph heights into a document-wide size profile
//   - [TitleExtractor] - joins the tallest front-matter lines into a title
//   - [Builder] - classifies lines into headings and assembles the outline
//   - [RepeatFilter] - removes running headers, footers, and page numbers
//
// # Classification Strategies
//
// Heading classification is pluggable through the [Strategy] interface.
// [FontRankStrategy] is the default: a line's rounded height ranks against
// the profile's heading sizes, rank 0 mapping to H1. Alternatives compose
// with [Strategies]:
//
//	strategy := outline.Strategies(
//		outline.NewNumberingStrategy(),
//		outline.NewFontRankStrategy(),
//	)
//	builder := outline.NewBuilderWithStrategy(strategy)
//
// [NumberingStrategy] reads "1.2.3" style prefixes, [WeightStrategy] reads
// bold font faces, and [ScriptAware] relaxes length filtering for CJK text.
//
// # Export
//
// An [Outline] serializes through an [Exporter] as JSON, JSON Lines,
// markdown, or an HTML nav document; [ParseNav] reads the HTML shape back.
package outline
