package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/docpatch/docpatch/internal/configloader"
	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/internal/ui/pretty"
	"github.com/docpatch/docpatch/pkg/config"
	"github.com/docpatch/docpatch/pkg/doctree"
	"github.com/docpatch/docpatch/pkg/fsutil"
)

// outputFilePermissions is the file mode for command output files.
const outputFilePermissions = 0o644

// loadCommandConfig resolves the effective configuration for a command,
// honoring the root --config and --color flags.
func loadCommandConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", result.LoadedFrom)
	}

	cfg := result.Config
	if colorMode, err := cmd.Flags().GetString("color"); err == nil && cmd.Flags().Changed("color") {
		cfg.Color = config.ColorMode(colorMode)
	}

	return cfg, nil
}

// commandContext returns the command's context, falling back to Background.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// stylesFor builds output styles for a command's stdout and color mode.
func stylesFor(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	colorEnabled := pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout())
	return pretty.NewStyles(colorEnabled)
}

// terminalWidth returns the width of stdout, or 0 when it is not a
// terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// readDocument parses a document tree from a JSON file.
func readDocument(path string) (*doctree.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc := &doctree.Document{}
	if err := json.Unmarshal(content, doc); err != nil {
		return nil, fmt.Errorf("parse document JSON: %w", err)
	}

	return doc, nil
}

// writeOutput writes command output to a file, or to the command's stdout
// when path is empty. File writes are atomic.
func writeOutput(cmd *cobra.Command, path string, content []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), path, content, outputFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logging.Default().Info("wrote output", logging.FieldPath, path)
	return nil
}
