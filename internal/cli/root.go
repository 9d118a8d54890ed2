// Package cli implements the toccata command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "toccata",
	Short: "Extract document outlines from positioned text",
	Long: `Toccata infers document structure from typography. It reads positioned
text fragments, finds the dominant body text size, and ranks the larger
sizes into a title and H1-H6 headings with page numbers.`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default toccata.toml in the working directory)")
}
