package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/pkg/config"
	"github.com/docpatch/docpatch/pkg/locate"
)

type locateFlags struct {
	instance    int
	paragraphAt int
	format      string
}

func newLocateCommand() *cobra.Command {
	flags := &locateFlags{}

	cmd := &cobra.Command{
		Use:   "locate <document.json> [text]",
		Short: "Find the offset range of text in a document",
		Long: `Search a document tree for literal text and print the half-open offset
range of the chosen occurrence. The range is suitable as input for
range-addressed operations such as style updates.

Matches that cannot be mapped to contiguous document offsets (for
example text straddling a table cell boundary) are skipped without
counting. When no mappable occurrence exists the command exits with
status 3.

With --paragraph-at, prints the enclosing paragraph range of an offset
instead of searching for text.

Examples:
  docpatch locate document.json "hello world"
  docpatch locate document.json cat --instance 2
  docpatch locate document.json --paragraph-at 57
  docpatch locate document.json cat --format json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.instance, "instance", 1, "which occurrence to report, counting from 1")
	cmd.Flags().IntVar(&flags.paragraphAt, "paragraph-at", 0, "print the paragraph range enclosing this offset")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")

	return cmd
}

func runLocate(cmd *cobra.Command, args []string, flags *locateFlags) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	var rng *locate.Range
	switch {
	case cmd.Flags().Changed("paragraph-at"):
		rng = locate.ParagraphRange(doc, flags.paragraphAt)
		logging.Default().Debug("paragraph lookup",
			logging.FieldOffset, flags.paragraphAt)
	case len(args) == 2:
		rng = locate.FindTextRange(doc, args[1], flags.instance)
		logging.Default().Debug("text search",
			logging.FieldText, args[1],
			logging.FieldInstance, flags.instance)
	default:
		return fmt.Errorf("text argument or --paragraph-at is required")
	}

	if rng == nil {
		return ErrTextNotFound
	}

	return writeRange(cmd, resolveFormat(cfg, flags.format), rng)
}

// writeRange renders a located range in the requested format.
func writeRange(cmd *cobra.Command, format config.OutputFormat, rng *locate.Range) error {
	switch format {
	case config.FormatJSON:
		payload, err := json.Marshal(rng)
		if err != nil {
			return fmt.Errorf("encode range: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "[%d,%d)\n", rng.Start, rng.End)
		return nil
	}
}
