// Package cli provides the Cobra command structure for docpatch.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/docpatch/docpatch/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root docpatch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "docpatch",
		Short: "Convert Markdown into positional document edit operations",
		Long: `docpatch converts Markdown into edit operations for an offset-addressed
document API and back.

It parses Markdown into blocks and inline spans, generates the insert,
delete, and style operations that reproduce the content at exact
character offsets, batches them for submission to a remote document
service, and can serialize a fetched document tree back to Markdown.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newLocateCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
