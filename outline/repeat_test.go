package outline

import "testing"

func TestRepeatFilterFilter(t *testing.T) {
	filter := NewRepeatFilter()

	t.Run("running header vanishes", func(t *testing.T) {
		lines := []Line{
			{Text: "Acme Corp Confidential", Y: 781, Page: 1},
			{Text: "Introduction", Y: 700, Page: 1},
			{Text: "ACME CORP CONFIDENTIAL", Y: 780, Page: 2},
			{Text: "Body text on page two.", Y: 700, Page: 2},
			{Text: "Acme Corp Confidential", Y: 779, Page: 3},
			{Text: "Background", Y: 700, Page: 3},
		}

		kept, removed := filter.Filter(lines)
		if removed != 3 {
			t.Fatalf("removed = %d, want 3", removed)
		}
		want := []string{"Introduction", "Body text on page two.", "Background"}
		if len(kept) != len(want) {
			t.Fatalf("len(kept) = %d, want %d", len(kept), len(want))
		}
		for i, line := range kept {
			if line.Text != want[i] {
				t.Errorf("kept[%d].Text = %q, want %q", i, line.Text, want[i])
			}
		}
	})

	t.Run("page numbers fold into one group", func(t *testing.T) {
		lines := []Line{
			{Text: "Page 1", Y: 40, Page: 1},
			{Text: "Chapter One", Y: 700, Page: 1},
			{Text: "Page 2", Y: 40, Page: 2},
			{Text: "Page 3", Y: 40, Page: 3},
		}

		kept, removed := filter.Filter(lines)
		if removed != 3 {
			t.Fatalf("removed = %d, want 3", removed)
		}
		if len(kept) != 1 || kept[0].Text != "Chapter One" {
			t.Errorf("kept = %+v, want only the chapter heading", kept)
		}
	})

	t.Run("two pages is not enough", func(t *testing.T) {
		lines := []Line{
			{Text: "Draft", Y: 780, Page: 1},
			{Text: "Draft", Y: 780, Page: 2},
		}

		kept, removed := filter.Filter(lines)
		if removed != 0 || len(kept) != 2 {
			t.Errorf("Filter() = %d kept, %d removed, want 2 kept, 0 removed", len(kept), removed)
		}
	})

	t.Run("same page repeats do not count twice", func(t *testing.T) {
		lines := []Line{
			{Text: "Note", Y: 780, Page: 1},
			{Text: "Note", Y: 779, Page: 1},
			{Text: "Note", Y: 780, Page: 2},
		}

		kept, removed := filter.Filter(lines)
		if removed != 0 || len(kept) != 3 {
			t.Errorf("Filter() = %d kept, %d removed, want 3 kept, 0 removed", len(kept), removed)
		}
	})

	t.Run("wandering position is not running furniture", func(t *testing.T) {
		lines := []Line{
			{Text: "Summary", Y: 700, Page: 2},
			{Text: "Summary", Y: 300, Page: 5},
			{Text: "Summary", Y: 100, Page: 9},
		}

		kept, removed := filter.Filter(lines)
		if removed != 0 || len(kept) != 3 {
			t.Errorf("Filter() = %d kept, %d removed, want 3 kept, 0 removed", len(kept), removed)
		}
	})

	t.Run("empty input passes through", func(t *testing.T) {
		kept, removed := filter.Filter(nil)
		if len(kept) != 0 || removed != 0 {
			t.Errorf("Filter(nil) = %+v, %d, want empty, 0", kept, removed)
		}
	})
}

func TestRepeatFilterCustomConfig(t *testing.T) {
	filter := NewRepeatFilterWithConfig(RepeatConfig{
		MinPages:          2,
		PositionTolerance: 1.0,
	})

	lines := []Line{
		{Text: "Draft", Y: 780, Page: 1},
		{Text: "Draft", Y: 780.5, Page: 2},
		{Text: "Heading", Y: 700, Page: 1},
	}

	kept, removed := filter.Filter(lines)
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if len(kept) != 1 || kept[0].Text != "Heading" {
		t.Errorf("kept = %+v, want only the heading", kept)
	}
}

func TestNormalizeRepeatText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Page 3", "page #"},
		{"page 17", "page #"},
		{"  Chapter   2  ", "chapter #"},
		{"3 of 12", "# of #"},
		{"Confidential", "confidential"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeRepeatText(tt.input); got != tt.want {
			t.Errorf("normalizeRepeatText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
