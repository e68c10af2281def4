package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/internal/ui/pretty"
	"github.com/docpatch/docpatch/pkg/config"
	"github.com/docpatch/docpatch/pkg/convert"
	"github.com/docpatch/docpatch/pkg/docops"
	"github.com/docpatch/docpatch/pkg/markdown"
)

type convertFlags struct {
	replaceAll   bool
	endIndex     int
	fromDocument string
	format       string
	output       string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <input.md>",
		Short: "Generate edit operations from a Markdown file",
		Long: `Parse a Markdown file and generate the ordered edit operations that
reproduce its content in an offset-addressed document.

The JSON output is the exact batch-update payload the apply command
submits; the text and table formats render a human-readable preview.

Examples:
  docpatch convert README.md                    # Preview operations
  docpatch convert README.md --format json      # Emit the wire payload
  docpatch convert README.md --replace-all --end-index 120
  docpatch convert README.md --replace-all --from-document doc.json
  docpatch convert README.md -o ops.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.replaceAll, "replace-all", false, "clear existing document content first")
	cmd.Flags().IntVar(&flags.endIndex, "end-index", 0, "current end index of the target document body")
	cmd.Flags().StringVar(&flags.fromDocument, "from-document", "", "read the end index from a fetched document JSON file")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, table")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, path string, flags *convertFlags) error {
	logger := logging.Default()

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}
	format := resolveFormat(cfg, flags.format)

	endIndex := flags.endIndex
	if flags.fromDocument != "" {
		doc, err := readDocument(flags.fromDocument)
		if err != nil {
			return err
		}
		endIndex = doc.EndIndex()
	}

	requests, blocks, err := generateOperations(path, cfg, flags.replaceAll, endIndex)
	if err != nil {
		return err
	}

	logger.Debug("generated operations",
		logging.FieldInput, path,
		logging.FieldBlocks, blocks,
		logging.FieldOperations, len(requests),
		logging.FieldEndIndex, endIndex,
	)

	return writeOperations(cmd, cfg, requests, format, flags.output)
}

// generateOperations parses a Markdown file and generates its operation
// batch. It returns the requests and the parsed block count.
func generateOperations(path string, cfg *config.Config, replaceAll bool, endIndex int) ([]docops.Request, int, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read input: %w", err)
	}

	blocks := markdown.Parse(string(source))
	requests := convert.Generate(blocks, convert.Options{
		ReplaceAll: replaceAll,
		EndIndex:   endIndex,
		ImageSize: &docops.ObjectSize{
			Width:  docops.PT(cfg.Image.WidthPT),
			Height: docops.PT(cfg.Image.HeightPT),
		},
	})

	if err := docops.ValidateAll(requests); err != nil {
		return nil, 0, err
	}

	return requests, len(blocks), nil
}

// resolveFormat picks the output format from the flag or the config.
func resolveFormat(cfg *config.Config, flag string) config.OutputFormat {
	if flag != "" {
		return config.OutputFormat(flag)
	}
	return cfg.Format
}

// writeOperations renders an operation batch in the requested format.
func writeOperations(cmd *cobra.Command, cfg *config.Config, requests []docops.Request, format config.OutputFormat, output string) error {
	switch format {
	case config.FormatJSON:
		payload, err := json.MarshalIndent(docops.BatchUpdateRequest{Requests: requests}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode operations: %w", err)
		}
		return writeOutput(cmd, output, append(payload, '\n'))

	case config.FormatTable, config.FormatText:
		styles := stylesFor(cmd, cfg)
		formatter := pretty.NewTableFormatter(styles, terminalWidth())
		return writeOutput(cmd, output, []byte(formatter.FormatTable(requests)))

	default:
		return fmt.Errorf("invalid format %q: must be text, json, or table", format)
	}
}
