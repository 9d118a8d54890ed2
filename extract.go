// extract.go provides one-shot helpers over the fluent Extractor for callers
// that want a whole document processed in a single call.
package toccata

import (
	"bytes"
	"context"

	"github.com/tsawler/toccata/fragment"
	"github.com/tsawler/toccata/outline"
)

// Extract runs the full outline pipeline over every page of the source with
// default settings.
//
// Example:
//
//	o, warnings, err := toccata.Extract(ctx, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(o.Title)
func Extract(ctx context.Context, src fragment.Source) (*outline.Outline, []Warning, error) {
	return From(src).Outline(ctx)
}

// ExtractJSON runs the full outline pipeline and renders the result in the
// wire format: {"title": ..., "outline": [{"level", "text", "page"}, ...]}.
// The outline field is always an array, never null.
//
// Example:
//
//	data, err := toccata.ExtractJSON(ctx, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(data)
func ExtractJSON(ctx context.Context, src fragment.Source) ([]byte, error) {
	o, _, err := From(src).Outline(ctx)
	if err != nil {
		return nil, err
	}

	exporter := outline.NewExporterWithConfig(outline.ExportConfig{
		Format: outline.ExportFormatJSON,
	})

	var buf bytes.Buffer
	if err := exporter.Export(o, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
