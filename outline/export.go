package outline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
)

// ExportFormat defines the available export formats.
type ExportFormat int

const (
	// ExportFormatJSON exports the outline as a single JSON document
	ExportFormatJSON ExportFormat = iota
	// ExportFormatJSONL exports one JSON heading record per line
	ExportFormatJSONL
	// ExportFormatMarkdown exports an indented markdown table of contents
	ExportFormatMarkdown
	// ExportFormatHTML exports a nav element with nested ordered lists
	ExportFormatHTML
)

// String returns a human-readable representation of the export format.
func (ef ExportFormat) String() string {
	switch ef {
	case ExportFormatJSON:
		return "json"
	case ExportFormatJSONL:
		return "jsonl"
	case ExportFormatMarkdown:
		return "markdown"
	case ExportFormatHTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (ef ExportFormat) FileExtension() string {
	switch ef {
	case ExportFormatJSON:
		return ".json"
	case ExportFormatJSONL:
		return ".jsonl"
	case ExportFormatMarkdown:
		return ".md"
	case ExportFormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseExportFormat parses a format name ("json", "jsonl", "markdown",
// "html") into an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return ExportFormatJSON, nil
	case "jsonl":
		return ExportFormatJSONL, nil
	case "markdown", "md":
		return ExportFormatMarkdown, nil
	case "html":
		return ExportFormatHTML, nil
	default:
		return ExportFormatJSON, fmt.Errorf("unknown export format %q", s)
	}
}

// ExportConfig holds configuration options for export.
type ExportConfig struct {
	// Format specifies the export format
	Format ExportFormat

	// PrettyPrint enables indentation for the JSON format
	PrettyPrint bool

	// IncludePages appends page numbers to markdown entries
	IncludePages bool
}

// DefaultExportConfig returns sensible defaults for export configuration.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Format:       ExportFormatJSON,
		PrettyPrint:  true,
		IncludePages: true,
	}
}

// Exporter writes outlines in a selectable format.
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a new exporter with default configuration.
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultExportConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration.
func NewExporterWithConfig(config ExportConfig) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export writes the outline to the given writer in the configured format.
func (e *Exporter) Export(o *Outline, w io.Writer) error {
	switch e.config.Format {
	case ExportFormatJSON:
		return e.exportJSON(o, w)
	case ExportFormatJSONL:
		return e.exportJSONL(o, w)
	case ExportFormatMarkdown:
		return e.exportMarkdown(o, w)
	case ExportFormatHTML:
		return e.exportHTML(o, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the outline to a file.
func (e *Exporter) ExportToFile(o *Outline, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(o, f)
}

// ExportToString renders the outline to a string.
func (e *Exporter) ExportToString(o *Outline) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(o, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exportJSON writes the outline as a single JSON document. An outline with
// no headings emits an empty array for the outline field, not null.
func (e *Exporter) exportJSON(o *Outline, w io.Writer) error {
	out := *o
	if out.Headings == nil {
		out.Headings = []Heading{}
	}

	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(&out)
}

// exportJSONL writes one JSON object per heading. The title is not part of
// the stream; record-oriented consumers read headings only.
func (e *Exporter) exportJSONL(o *Outline, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, h := range o.Headings {
		if err := encoder.Encode(h); err != nil {
			return fmt.Errorf("encoding heading %d: %w", i, err)
		}
	}
	return nil
}

// exportMarkdown writes an indented markdown table of contents, two spaces
// of indent per heading level.
func (e *Exporter) exportMarkdown(o *Outline, w io.Writer) error {
	var sb strings.Builder
	if o.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(o.Title)
		sb.WriteString("\n\n")
	}
	for _, h := range o.Headings {
		sb.WriteString(strings.Repeat("  ", int(h.Level)-1))
		sb.WriteString("- ")
		sb.WriteString(h.Text)
		if e.config.IncludePages {
			fmt.Fprintf(&sb, " (page %d)", h.Page)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// exportHTML writes a nav element holding the outline as nested ordered
// lists. Each list item carries its level as a class and links to a
// page anchor, so the document round-trips through [ParseNav].
func (e *Exporter) exportHTML(o *Outline, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("<nav epub:type=\"toc\">\n")
	if o.Title != "" {
		sb.WriteString("  <h1>")
		sb.WriteString(html.EscapeString(o.Title))
		sb.WriteString("</h1>\n")
	}

	tree := o.Tree()
	if len(tree) > 0 {
		writeEntryList(&sb, tree, 1)
	}
	sb.WriteString("</nav>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeEntryList renders one nesting level of outline entries as an <ol>.
func writeEntryList(sb *strings.Builder, entries []Entry, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString("<ol>\n")

	itemIndent := strings.Repeat("  ", depth+1)
	for _, entry := range entries {
		h := entry.Heading
		fmt.Fprintf(sb, "%s<li class=%q><a href=\"#page-%d\">%s</a>",
			itemIndent, h.Level.HTMLTag(), h.Page, html.EscapeString(h.Text))
		if len(entry.Children) > 0 {
			sb.WriteString("\n")
			writeEntryList(sb, entry.Children, depth+2)
			sb.WriteString(itemIndent)
		}
		sb.WriteString("</li>\n")
	}

	sb.WriteString(indent)
	sb.WriteString("</ol>\n")
}

// Outline convenience methods

// ToJSON renders the outline as an indented JSON document.
func (o *Outline) ToJSON() (string, error) {
	return NewExporter().ExportToString(o)
}

// ToMarkdown renders the outline as a markdown table of contents.
func (o *Outline) ToMarkdown() (string, error) {
	config := DefaultExportConfig()
	config.Format = ExportFormatMarkdown
	return NewExporterWithConfig(config).ExportToString(o)
}

// ToHTML renders the outline as an HTML nav document.
func (o *Outline) ToHTML() (string, error) {
	config := DefaultExportConfig()
	config.Format = ExportFormatHTML
	return NewExporterWithConfig(config).ExportToString(o)
}
