package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/pkg/batch"
	"github.com/docpatch/docpatch/pkg/config"
)

type applyFlags struct {
	document   string
	endpoint   string
	token      string
	chunkSize  int
	replaceAll bool
	endIndex   int
	dryRun     bool
	format     string
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <input.md>",
		Short: "Generate operations and submit them to a document",
		Long: `Convert a Markdown file into edit operations and submit them to the
remote document service in sequential batches.

Batches are capped at the configured chunk size and submitted strictly
in order. A failing batch aborts the run; operations from earlier
batches stay committed and are reported.

Examples:
  docpatch apply README.md --document doc-123
  docpatch apply README.md --document doc-123 --replace-all --end-index 840
  docpatch apply README.md --document doc-123 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.document, "document", "d", "", "target document ID (required)")
	cmd.Flags().StringVar(&flags.endpoint, "endpoint", "", "document service base URL (overrides config)")
	cmd.Flags().StringVar(&flags.token, "token", "", "auth token (overrides config)")
	cmd.Flags().IntVar(&flags.chunkSize, "chunk-size", 0, "maximum operations per batch call (overrides config)")
	cmd.Flags().BoolVar(&flags.replaceAll, "replace-all", false, "clear existing document content first")
	cmd.Flags().IntVar(&flags.endIndex, "end-index", 0, "current end index of the target document body")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the operations without submitting them")
	cmd.Flags().StringVar(&flags.format, "format", "", "dry-run output format: text, json, table")

	_ = cmd.MarkFlagRequired("document")

	return cmd
}

func runApply(cmd *cobra.Command, path string, flags *applyFlags) error {
	logger := logging.Default()

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, flags)

	requests, blocks, err := generateOperations(path, cfg, flags.replaceAll, flags.endIndex)
	if err != nil {
		return err
	}

	logger.Debug("generated operations",
		logging.FieldInput, path,
		logging.FieldBlocks, blocks,
		logging.FieldOperations, len(requests),
		logging.FieldDocumentID, flags.document,
		logging.FieldReplace, flags.replaceAll,
	)

	if flags.dryRun {
		return writeOperations(cmd, cfg, requests, resolveFormat(cfg, flags.format), "")
	}

	if cfg.API.Endpoint == "" {
		return fmt.Errorf("no endpoint configured: set api.endpoint or pass --endpoint")
	}

	client, err := batch.NewClient(batch.ClientConfig{
		BaseURL: cfg.API.Endpoint,
		Token:   cfg.API.ResolveToken(),
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx := logging.WithLogger(commandContext(cmd), logger)
	sequencer := batch.NewSequencer(client, cfg.Batch.ChunkSize)

	start := time.Now()
	result, err := sequencer.Apply(ctx, flags.document, requests)

	styles := stylesFor(cmd, cfg)
	if err != nil {
		if chunkErr := chunkError(err); chunkErr != nil {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatApplyFailure(chunkErr))
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatApplyOneLine(result))
	logger.Debug("apply finished",
		logging.FieldDocumentID, result.DocumentID,
		logging.FieldOperations, result.Operations,
		logging.FieldChunks, result.Chunks,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return nil
}

// applyFlagOverrides layers explicit apply flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, flags *applyFlags) {
	if flags.endpoint != "" {
		cfg.API.Endpoint = flags.endpoint
	}
	if flags.token != "" {
		cfg.API.Token = flags.token
	}
	if flags.chunkSize > 0 {
		cfg.Batch.ChunkSize = flags.chunkSize
	}
}
