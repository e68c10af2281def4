package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/docpatch/docpatch/pkg/batch"
)

const (
	summaryDividerWidth = 40
	wordChunk           = "chunk"
	wordChunks          = "chunks"
)

// FormatApplyOneLine formats an apply result as a single line.
// Example: "62 operations applied in 2 chunks to doc-1".
func (s *Styles) FormatApplyOneLine(result *batch.Result) string {
	if result == nil || result.Operations == 0 {
		return s.Dim.Render("No operations to apply") + "\n"
	}

	chunkWord := wordChunks
	if result.Chunks == 1 {
		chunkWord = wordChunk
	}

	return s.Success.Render(fmt.Sprintf("%d operations applied", result.Operations)) +
		fmt.Sprintf(" in %d %s to %s", result.Chunks, chunkWord, result.DocumentID) + "\n"
}

// FormatApplyFailure formats a chunk failure as a single line, naming how
// much of the batch had already been committed.
func (s *Styles) FormatApplyFailure(chunkErr *batch.ChunkError) string {
	return s.Failure.Render(fmt.Sprintf("chunk %d/%d failed", chunkErr.Chunk+1, chunkErr.Chunks)) +
		s.Warning.Render(fmt.Sprintf(" (%d operations already committed)", chunkErr.Committed)) + "\n"
}

// FormatApplySummary formats an apply result as a summary block.
func (s *Styles) FormatApplySummary(result *batch.Result, duration string) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Document:   " +
		s.SummaryValue.Render(result.DocumentID) + "\n")
	builder.WriteString("  Operations: " +
		s.SummaryValue.Render(strconv.Itoa(result.Operations)) + "\n")
	builder.WriteString("  Chunks:     " +
		s.SummaryValue.Render(strconv.Itoa(result.Chunks)) + "\n")

	if duration != "" {
		builder.WriteString("  Duration:   " + s.Dim.Render(duration) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString(s.Success.Render("Apply succeeded"))
	builder.WriteString("\n")

	return builder.String()
}
