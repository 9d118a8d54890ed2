package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/toccata/genai"
	"github.com/tsawler/toccata/outline"
)

var (
	genaiFormat string
	genaiOutput string
)

var genaiCmd = &cobra.Command{
	Use:   "genai [document.pdf]",
	Short: "Extract an outline through a generative model",
	Long: `Sends the document to a chat completions endpoint and decodes the
model's reply into an outline. The endpoint is configured through
TOCCATA_GENAI_* environment variables; see the genai package
documentation for the full list.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenai,
}

func init() {
	genaiCmd.Flags().StringVarP(&genaiFormat, "format", "f", "json", "output format: json, jsonl, markdown or html")
	genaiCmd.Flags().StringVarP(&genaiOutput, "output", "o", "", "write to a file instead of stdout")
	rootCmd.AddCommand(genaiCmd)
}

func runGenai(cmd *cobra.Command, args []string) error {
	format, err := outline.ParseExportFormat(genaiFormat)
	if err != nil {
		return err
	}

	client, err := genai.NewClient(genai.ConfigFromEnv())
	if err != nil {
		return err
	}

	result, err := client.ProduceFile(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	return writeOutline(cmd, result, format, genaiOutput)
}
