package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/toccata"
	"github.com/tsawler/toccata/fragment"
	"github.com/tsawler/toccata/outline"
)

var (
	extractFormat         string
	extractOutput         string
	extractPages          []int
	extractExcludeRepeats bool
	extractVerbose        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [fragments.json]",
	Short: "Extract a document outline from a fragment dump",
	Long: `Reads a JSON fragment dump, an array of pages each carrying positioned
text fragments, and writes the extracted outline.

The dump format matches fragment.PageFragments:

  [{"page": 1, "fragments": [{"text": "Title", "x": 72, "y": 700, "height": 24}]}]`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "json", "output format: json, jsonl, markdown or html")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "write to a file instead of stdout")
	extractCmd.Flags().IntSliceVar(&extractPages, "pages", nil, "1-based pages to read, all when unset")
	extractCmd.Flags().BoolVar(&extractExcludeRepeats, "exclude-repeats", false, "drop running headers, footers and page numbers")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "print warnings and the detected script to stderr")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	format, err := outline.ParseExportFormat(extractFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	pages, err := readFragmentDump(args[0])
	if err != nil {
		return err
	}

	ext := configureExtractor(toccata.FromPages(pages...), cfg)
	if len(extractPages) > 0 {
		ext = ext.Pages(extractPages...)
	}
	if extractExcludeRepeats {
		ext = ext.ExcludeRepeatedLines()
	}

	result, warnings, err := ext.Outline(cmd.Context())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractVerbose {
		if len(warnings) > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), toccata.FormatWarnings(warnings))
		}
		if script := outlineScript(result); script != fragment.ScriptUnknown {
			fmt.Fprintf(cmd.ErrOrStderr(), "script: %s (%s)\n", script, script.Code())
		}
	}

	return writeOutline(cmd, result, format, extractOutput)
}

// outlineScript reports the dominant script of the extracted text.
func outlineScript(o *outline.Outline) fragment.Script {
	var sb strings.Builder
	sb.WriteString(o.Title)
	for _, h := range o.Headings {
		sb.WriteString(" ")
		sb.WriteString(h.Text)
	}
	return fragment.DetectScript(sb.String())
}

// configureExtractor applies config file settings. Command line flags are
// layered on top by the caller.
func configureExtractor(ext *toccata.Extractor, cfg fileConfig) *toccata.Extractor {
	if cfg.LineTolerance > 0 {
		ext = ext.WithLineTolerance(cfg.LineTolerance)
	}
	if cfg.TitleTolerance > 0 {
		ext = ext.WithTitleTolerance(cfg.TitleTolerance)
	}
	if cfg.ExcludeRepeats {
		ext = ext.ExcludeRepeatedLines()
	}
	if cfg.Sequential {
		ext = ext.Sequential()
	}
	return ext
}

func readFragmentDump(path string) ([]fragment.PageFragments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment dump: %w", err)
	}

	var pages []fragment.PageFragments
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("failed to parse fragment dump: %w", err)
	}
	return pages, nil
}

// writeOutline exports the outline to a file or the command's stdout.
func writeOutline(cmd *cobra.Command, o *outline.Outline, format outline.ExportFormat, path string) error {
	exporter := outline.NewExporterWithConfig(outline.ExportConfig{
		Format:       format,
		PrettyPrint:  true,
		IncludePages: true,
	})

	if path != "" {
		return exporter.ExportToFile(o, path)
	}

	out, err := exporter.ExportToString(o)
	if err != nil {
		return err
	}
	cmd.Print(out)
	return nil
}
