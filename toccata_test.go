package toccata_test

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/toccata"
	"github.com/tsawler/toccata/fragment"
	"github.com/tsawler/toccata/outline"
)

func frag(text string, x, y, height float64) fragment.TextFragment {
	return fragment.TextFragment{Text: text, X: x, Y: y, Height: height}
}

func page(number int, frags ...fragment.TextFragment) fragment.PageFragments {
	return fragment.PageFragments{Page: number, Fragments: frags}
}

// sampleDoc is a three page document with a distinct title size (24), two
// heading sizes (18, 14), and enough body text at 12 to dominate the
// font profile.
func sampleDoc() []fragment.PageFragments {
	return []fragment.PageFragments{
		page(1,
			frag("Deep", 10, 760, 24),
			frag("Learning", 80, 760, 24),
			frag("Introduction", 10, 700, 18),
			frag("Neural networks learn hierarchical data representations.", 10, 650, 12),
			frag("Each layer composes features from the previous one.", 10, 630, 12),
			frag("Early History", 10, 500, 14),
			frag("The perceptron dates back to the nineteen fifties.", 10, 450, 12),
		),
		page(2,
			frag("Neural Networks", 10, 700, 18),
			frag("A network is a composition of learned linear maps.", 10, 650, 12),
			frag("Nonlinearities between layers give it expressive power.", 10, 630, 12),
		),
		page(3,
			frag("Convolutional Layers", 10, 700, 14),
			frag("Convolutions share weights across spatial positions.", 10, 650, 12),
		),
	}
}

func TestOutlineEndToEnd(t *testing.T) {
	ctx := context.Background()

	o, warnings, err := toccata.FromPages(sampleDoc()...).Outline(ctx)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	if o.Title != "Deep Learning" {
		t.Errorf("Title = %q, want %q", o.Title, "Deep Learning")
	}

	want := []outline.Heading{
		{Level: outline.HeadingLevel2, Text: "Introduction", Page: 1},
		{Level: outline.HeadingLevel3, Text: "Early History", Page: 1},
		{Level: outline.HeadingLevel2, Text: "Neural Networks", Page: 2},
		{Level: outline.HeadingLevel3, Text: "Convolutional Layers", Page: 3},
	}
	if !reflect.DeepEqual(o.Headings, want) {
		t.Errorf("Headings = %+v, want %+v", o.Headings, want)
	}
}

func TestOutlineEmptySource(t *testing.T) {
	ctx := context.Background()

	t.Run("no pages at all", func(t *testing.T) {
		_, _, err := toccata.FromPages().Outline(ctx)
		if !errors.Is(err, toccata.ErrEmptyExtraction) {
			t.Errorf("Outline() error = %v, want ErrEmptyExtraction", err)
		}
	})

	t.Run("pages without fragments", func(t *testing.T) {
		_, warnings, err := toccata.FromPages(page(1), page(2)).Outline(ctx)
		if !errors.Is(err, toccata.ErrEmptyExtraction) {
			t.Errorf("Outline() error = %v, want ErrEmptyExtraction", err)
		}

		empty := 0
		for _, w := range warnings {
			if w.Code == toccata.WarnEmptyPage {
				empty++
			}
		}
		if empty != 2 {
			t.Errorf("got %d empty-page warnings, want 2:\n%s", empty, toccata.FormatWarnings(warnings))
		}
	})
}

func TestOutlineNoStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("single word document", func(t *testing.T) {
		_, _, err := toccata.FromPages(page(1, frag("Hello", 10, 700, 12))).Outline(ctx)
		if !errors.Is(err, toccata.ErrNoStructure) {
			t.Errorf("Outline() error = %v, want ErrNoStructure", err)
		}
	})

	t.Run("uniform single page document", func(t *testing.T) {
		_, _, err := toccata.FromPages(page(1,
			frag("All of this text", 10, 700, 12),
			frag("is set in one size", 10, 680, 12),
			frag("with nothing standing out", 10, 660, 12),
		)).Outline(ctx)
		if !errors.Is(err, toccata.ErrNoStructure) {
			t.Errorf("Outline() error = %v, want ErrNoStructure", err)
		}
	})

	t.Run("only invalid fragments", func(t *testing.T) {
		_, warnings, err := toccata.FromPages(page(1,
			frag("ghost", 10, 700, math.NaN()),
			frag("negative", 10, 680, -4),
		)).Outline(ctx)
		if !errors.Is(err, toccata.ErrNoStructure) {
			t.Errorf("Outline() error = %v, want ErrNoStructure", err)
		}

		found := false
		for _, w := range warnings {
			if w.Code == toccata.WarnSkippedFragments && w.Page == 1 {
				found = true
			}
		}
		if !found {
			t.Errorf("missing skipped-fragments warning:\n%s", toccata.FormatWarnings(warnings))
		}
	})
}

func TestOutlineFlatProfile(t *testing.T) {
	ctx := context.Background()

	// Uniform sizes across three pages. The title window consumes pages one
	// and two, page three still has content, so extraction succeeds with an
	// empty outline and a flat-profile warning.
	o, warnings, err := toccata.FromPages(
		page(1, frag("Meeting notes from Tuesday", 10, 700, 12)),
		page(2, frag("Continued discussion items", 10, 700, 12)),
		page(3, frag("Closing remarks and actions", 10, 700, 12)),
	).Outline(ctx)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if o.HeadingCount() != 0 {
		t.Errorf("HeadingCount() = %d, want 0", o.HeadingCount())
	}

	found := false
	for _, w := range warnings {
		if w.Code == toccata.WarnFlatProfile {
			found = true
		}
	}
	if !found {
		t.Errorf("missing flat-profile warning:\n%s", toccata.FormatWarnings(warnings))
	}
}

func TestOutlineSkipsInvalidFragments(t *testing.T) {
	ctx := context.Background()

	doc := sampleDoc()
	doc[0].Fragments = append(doc[0].Fragments,
		frag("bad height", 10, 400, 0),
		frag("bad position", math.Inf(1), 380, 12),
	)

	o, warnings, err := toccata.FromPages(doc...).Outline(ctx)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if o.Title != "Deep Learning" {
		t.Errorf("Title = %q, want %q", o.Title, "Deep Learning")
	}

	found := false
	for _, w := range warnings {
		if w.Code == toccata.WarnSkippedFragments && w.Page == 1 && strings.Contains(w.Message, "2") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing skipped-fragments warning for page 1:\n%s", toccata.FormatWarnings(warnings))
	}
}

func TestPageSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("single page past the title window", func(t *testing.T) {
		headings, _, err := toccata.FromPages(sampleDoc()...).Pages(3).Headings(ctx)
		if err != nil {
			t.Fatalf("Headings() error = %v", err)
		}
		// With only page 3 in play no title is found, 14 is the sole
		// heading size, and the section lands on H1.
		want := []outline.Heading{
			{Level: outline.HeadingLevel1, Text: "Convolutional Layers", Page: 3},
		}
		if !reflect.DeepEqual(headings, want) {
			t.Errorf("Headings = %+v, want %+v", headings, want)
		}
	})

	t.Run("page range", func(t *testing.T) {
		headings, _, err := toccata.FromPages(sampleDoc()...).PageRange(1, 2).Headings(ctx)
		if err != nil {
			t.Fatalf("Headings() error = %v", err)
		}
		if len(headings) != 3 {
			t.Errorf("got %d headings, want 3: %+v", len(headings), headings)
		}
	})

	t.Run("selection shifts the title window", func(t *testing.T) {
		// Selecting only page 2 leaves its tallest line as the title
		// candidate, so the heading set there is consumed by the title.
		ext := toccata.FromPages(sampleDoc()...).Pages(2)

		title, _, err := ext.Title(ctx)
		if err != nil {
			t.Fatalf("Title() error = %v", err)
		}
		if title != "Neural Networks" {
			t.Errorf("Title = %q, want %q", title, "Neural Networks")
		}

		headings, _, err := ext.Headings(ctx)
		if err != nil {
			t.Fatalf("Headings() error = %v", err)
		}
		if len(headings) != 0 {
			t.Errorf("Headings = %+v, want none", headings)
		}
	})

	t.Run("out of range page fails", func(t *testing.T) {
		_, _, err := toccata.FromPages(sampleDoc()...).Pages(99).Outline(ctx)
		if err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("Outline() error = %v, want out of range", err)
		}
	})
}

func TestChainImmutability(t *testing.T) {
	ctx := context.Background()

	base := toccata.FromPages(sampleDoc()...)
	limited := base.Pages(3)

	all, _, err := base.Headings(ctx)
	if err != nil {
		t.Fatalf("base Headings() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("base chain saw %d headings, want 4 (configuration leaked)", len(all))
	}

	few, _, err := limited.Headings(ctx)
	if err != nil {
		t.Fatalf("limited Headings() error = %v", err)
	}
	if len(few) != 1 {
		t.Errorf("limited chain saw %d headings, want 1", len(few))
	}
}

func TestSequentialMatchesParallel(t *testing.T) {
	ctx := context.Background()

	parallel, _, err := toccata.FromPages(sampleDoc()...).Outline(ctx)
	if err != nil {
		t.Fatalf("parallel Outline() error = %v", err)
	}

	sequential, _, err := toccata.FromPages(sampleDoc()...).Sequential().Outline(ctx)
	if err != nil {
		t.Fatalf("sequential Outline() error = %v", err)
	}

	if !reflect.DeepEqual(parallel, sequential) {
		t.Errorf("sequential = %+v, parallel = %+v", sequential, parallel)
	}
}

func TestExcludeRepeatedLines(t *testing.T) {
	ctx := context.Background()

	// A running header set larger than body text on every page reads as a
	// heading unless repeated-line filtering removes it.
	doc := sampleDoc()
	for i := range doc {
		doc[i].Fragments = append(doc[i].Fragments,
			frag("Acme Quarterly Review", 10, 790, 14))
	}

	plain, _, err := toccata.FromPages(doc...).Outline(ctx)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if len(plain.HeadingsOnPage(1)) != 3 {
		t.Fatalf("unfiltered page 1 headings = %+v, want header plus two true headings",
			plain.HeadingsOnPage(1))
	}

	filtered, warnings, err := toccata.FromPages(doc...).ExcludeRepeatedLines().Outline(ctx)
	if err != nil {
		t.Fatalf("filtered Outline() error = %v", err)
	}
	for _, h := range filtered.Headings {
		if h.Text == "Acme Quarterly Review" {
			t.Errorf("running header survived filtering: %+v", h)
		}
	}

	found := false
	for _, w := range warnings {
		if w.Code == toccata.WarnRepeatedLines {
			found = true
		}
	}
	if !found {
		t.Errorf("missing repeated-lines warning:\n%s", toccata.FormatWarnings(warnings))
	}
}

func TestWithLineTolerance(t *testing.T) {
	ctx := context.Background()

	// Two fragments 4 units apart vertically: separate lines by default,
	// one line under a widened tolerance.
	doc := []fragment.PageFragments{
		page(1,
			frag("Split", 10, 702, 18),
			frag("Heading", 60, 698, 18),
			frag("Enough body text to anchor the profile at twelve.", 10, 650, 12),
			frag("And a second body line for good measure here.", 10, 630, 12),
		),
	}

	strict, _, err := toccata.FromPages(doc...).Lines(ctx)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	if len(strict) != 4 {
		t.Errorf("default tolerance produced %d lines, want 4", len(strict))
	}

	loose, _, err := toccata.FromPages(doc...).WithLineTolerance(5).Lines(ctx)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	if len(loose) != 3 {
		t.Fatalf("widened tolerance produced %d lines, want 3", len(loose))
	}
	if loose[0].Text != "Split Heading" {
		t.Errorf("merged line = %q, want %q", loose[0].Text, "Split Heading")
	}
}

func TestWithTitleTolerance(t *testing.T) {
	ctx := context.Background()

	doc := []fragment.PageFragments{
		page(1,
			frag("Main Title", 10, 760, 24),
			frag("A Subtitle", 10, 730, 22),
			frag("Body text that keeps the profile honest and long.", 10, 650, 12),
		),
	}

	strict, _, err := toccata.FromPages(doc...).Title(ctx)
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if strict != "Main Title" {
		t.Errorf("Title = %q, want %q", strict, "Main Title")
	}

	loose, _, err := toccata.FromPages(doc...).WithTitleTolerance(3).Title(ctx)
	if err != nil {
		t.Fatalf("Title() error = %v", err)
	}
	if loose != "Main Title A Subtitle" {
		t.Errorf("Title = %q, want %q", loose, "Main Title A Subtitle")
	}
}

func TestWithStrategy(t *testing.T) {
	ctx := context.Background()

	// Numbered section headings set at body size are invisible to the font
	// rank strategy but are caught by the numbering strategy.
	doc := []fragment.PageFragments{
		page(1,
			frag("Style Guide", 10, 760, 20),
			frag("1. Voice and Tone", 10, 700, 12),
			frag("Write the way the documentation team writes.", 10, 650, 12),
			frag("1.1 Active Voice", 10, 600, 12),
			frag("Prefer the active voice in every sentence.", 10, 550, 12),
		),
	}

	composed := outline.Strategies(outline.NewFontRankStrategy(), outline.NewNumberingStrategy())
	o, _, err := toccata.FromPages(doc...).WithStrategy(composed).Outline(ctx)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	want := []outline.Heading{
		{Level: outline.HeadingLevel1, Text: "1. Voice and Tone", Page: 1},
		{Level: outline.HeadingLevel2, Text: "1.1 Active Voice", Page: 1},
	}
	if !reflect.DeepEqual(o.Headings, want) {
		t.Errorf("Headings = %+v, want %+v", o.Headings, want)
	}
}

func TestProfileTerminal(t *testing.T) {
	ctx := context.Background()

	profile, _, err := toccata.FromPages(sampleDoc()...).Profile(ctx)
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if profile.BodySize != 12 {
		t.Errorf("BodySize = %v, want 12", profile.BodySize)
	}
	if !reflect.DeepEqual(profile.HeadingSizes, []float64{24, 18, 14}) {
		t.Errorf("HeadingSizes = %v, want [24 18 14]", profile.HeadingSizes)
	}
}

func TestLinesTerminal(t *testing.T) {
	ctx := context.Background()

	lines, _, err := toccata.FromPages(sampleDoc()...).Lines(ctx)
	if err != nil {
		t.Fatalf("Lines() error = %v", err)
	}
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want 11", len(lines))
	}
	if lines[0].Text != "Deep Learning" || lines[0].Page != 1 {
		t.Errorf("lines[0] = %+v, want the page 1 title line", lines[0])
	}

	// Page order, top of page first within each page.
	for i := 1; i < len(lines); i++ {
		prev, cur := lines[i-1], lines[i]
		if cur.Page < prev.Page {
			t.Fatalf("lines out of page order at %d: %+v after %+v", i, cur, prev)
		}
		if cur.Page == prev.Page && cur.Y > prev.Y {
			t.Fatalf("lines out of Y order at %d: %+v after %+v", i, cur, prev)
		}
	}
}

type failingSource struct {
	pages  int
	failOn int
	err    error
}

func (s *failingSource) PageCount(ctx context.Context) (int, error) {
	return s.pages, nil
}

func (s *failingSource) Page(ctx context.Context, number int) ([]fragment.TextFragment, error) {
	if number == s.failOn {
		return nil, s.err
	}
	return []fragment.TextFragment{frag("ordinary page body text", 10, 700, 12)}, nil
}

func TestPageReadFailure(t *testing.T) {
	ctx := context.Background()
	errCorrupt := errors.New("corrupt page stream")

	_, _, err := toccata.From(&failingSource{pages: 3, failOn: 2, err: errCorrupt}).Outline(ctx)
	if err == nil {
		t.Fatal("Outline() succeeded, want page read failure")
	}

	var extractErr *toccata.ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("error type = %T, want *ExtractError", err)
	}
	if extractErr.Page != 2 {
		t.Errorf("Page = %d, want 2", extractErr.Page)
	}
	if !errors.Is(err, errCorrupt) {
		t.Errorf("error chain does not reach the source error: %v", err)
	}
}

type blockingSource struct{}

func (blockingSource) PageCount(ctx context.Context) (int, error) {
	return 1, nil
}

func (blockingSource) Page(ctx context.Context, number int) ([]fragment.TextFragment, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := toccata.From(blockingSource{}).Outline(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Outline() error = %v, want context.Canceled in the chain", err)
	}
}

func TestFromNilSource(t *testing.T) {
	_, _, err := toccata.From(nil).Outline(context.Background())
	if !errors.Is(err, toccata.ErrNoSource) {
		t.Errorf("Outline() error = %v, want ErrNoSource", err)
	}
}

func TestExtractJSON(t *testing.T) {
	ctx := context.Background()

	doc := []fragment.PageFragments{
		page(1,
			frag("Tiny Title", 10, 700, 20),
			frag("Section One", 10, 600, 16),
			frag("Body copy that fills out the font profile nicely.", 10, 550, 12),
			frag("More body copy to keep twelve the dominant size.", 10, 530, 12),
		),
	}

	data, err := toccata.ExtractJSON(ctx, fragment.NewSliceSource(doc...))
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}

	want := `{"title":"Tiny Title","outline":[{"level":"H2","text":"Section One","page":1}]}` + "\n"
	if string(data) != want {
		t.Errorf("ExtractJSON() = %s, want %s", data, want)
	}
}

func TestMustOutline(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustOutline did not panic on error")
		}
	}()

	toccata.MustOutline(toccata.FromPages().Outline(context.Background()))
}
