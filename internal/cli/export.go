package cli

import (
	"github.com/spf13/cobra"

	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/pkg/export"
	"github.com/docpatch/docpatch/pkg/fsutil"
)

type exportFlags struct {
	output          string
	detectLanguages bool
	backup          bool
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <document.json>",
		Short: "Serialize a document tree back to Markdown",
		Long: `Read a document tree as returned by the remote document API and
serialize its body to Markdown.

Headings, inline styles, links, lists, tables, and monospace code
content are reconstructed; code fences are annotated with a detected
language unless detection is disabled.

Examples:
  docpatch export document.json
  docpatch export document.json -o README.md
  docpatch export document.json -o README.md --backup
  docpatch export document.json --detect-languages=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write Markdown to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.detectLanguages, "detect-languages", true, "annotate code fences with a detected language")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar backup of an overwritten output file")

	return cmd
}

func runExport(cmd *cobra.Command, path string, flags *exportFlags) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}

	detect := cfg.Export.DetectLanguages
	if cmd.Flags().Changed("detect-languages") {
		detect = flags.detectLanguages
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	rendered := export.MarkdownWith(doc, export.Options{DetectLanguages: detect})

	logging.Default().Debug("exported document",
		logging.FieldInput, path,
		logging.FieldDocumentID, doc.DocumentID,
		logging.FieldOutput, len(rendered),
	)

	if flags.backup && flags.output != "" {
		created, err := fsutil.CreateBackup(commandContext(cmd), flags.output)
		if err != nil {
			return err
		}
		if created {
			logging.Default().Info("backed up existing file",
				logging.FieldPath, fsutil.BackupPath(flags.output))
		}
	}

	return writeOutput(cmd, flags.output, []byte(rendered))
}
