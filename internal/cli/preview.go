package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/docpatch/docpatch/internal/logging"
)

type previewFlags struct {
	output string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview <input.md>",
		Short: "Render a Markdown file as HTML",
		Long: `Render a Markdown file to HTML for a quick visual check before
converting it into edit operations.

The renderer supports the same constructs the converter handles:
headings, emphasis, links, lists, tables, code fences, blockquotes,
and images.

Examples:
  docpatch preview README.md > preview.html
  docpatch preview README.md -o preview.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to a file instead of stdout")

	return cmd
}

func runPreview(cmd *cobra.Command, path string, flags *previewFlags) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table, extension.Strikethrough),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buf bytes.Buffer
	if err := md.Convert(source, &buf); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	logging.Default().Debug("rendered preview",
		logging.FieldInput, path,
		logging.FieldOutput, buf.Len(),
	)

	return writeOutput(cmd, flags.output, buf.Bytes())
}
