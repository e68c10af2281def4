// Package batch splits an edit-operation list into capped chunks and
// executes them against the remote document API, strictly in order.
//
// Chunking is purely a call-size constraint, never a semantic boundary:
// each chunk's operations were computed against offsets that assume all
// earlier chunks have already been applied, so chunks must never run
// concurrently or out of order.
package batch

import (
	"context"
	"fmt"

	"github.com/docpatch/docpatch/internal/logging"
	"github.com/docpatch/docpatch/pkg/docops"
)

// DefaultChunkSize is the remote API's per-call operation cap.
const DefaultChunkSize = 50

// Executor performs one remote batch-update call. Implementations must
// apply the given operations atomically, in array order.
type Executor interface {
	Execute(ctx context.Context, documentID string, reqs []docops.Request) (*docops.BatchUpdateResponse, error)
}

// Result is the merged outcome of a fully successful Apply.
type Result struct {
	DocumentID string           `json:"documentId"`
	Operations int              `json:"operations"`
	Chunks     int              `json:"chunks"`
	Replies    []map[string]any `json:"replies,omitempty"`
}

// ChunkError reports the chunk that failed and how much of the batch had
// already been committed. Committed chunks are not rolled back; the
// document stays partially mutated.
type ChunkError struct {
	Chunk     int // 0-based index of the failed chunk
	Chunks    int
	Committed int // operations applied by earlier chunks
	Err       error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("batch chunk %d/%d failed after %d operations were committed: %v",
		e.Chunk+1, e.Chunks, e.Committed, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// Sequencer applies operation batches through an Executor.
type Sequencer struct {
	exec      Executor
	chunkSize int
}

// NewSequencer creates a sequencer with the given per-call cap. A cap
// below 1 falls back to DefaultChunkSize.
func NewSequencer(exec Executor, chunkSize int) *Sequencer {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Sequencer{exec: exec, chunkSize: chunkSize}
}

// Chunk partitions operations into contiguous chunks of at most size
// elements, preserving order. The returned slices alias the input.
func Chunk(reqs []docops.Request, size int) [][]docops.Request {
	if len(reqs) == 0 {
		return nil
	}
	if size < 1 {
		size = DefaultChunkSize
	}
	chunks := make([][]docops.Request, 0, (len(reqs)+size-1)/size)
	for start := 0; start < len(reqs); start += size {
		end := min(start+size, len(reqs))
		chunks = append(chunks, reqs[start:end])
	}
	return chunks
}

// Apply validates the operations, splits them into chunks, and executes
// the chunks sequentially. The first failing chunk aborts the run: earlier
// chunks remain committed and the returned ChunkError says how many
// operations already landed. There are no retries.
func (s *Sequencer) Apply(ctx context.Context, documentID string, reqs []docops.Request) (*Result, error) {
	logger := logging.FromContext(ctx)

	if err := docops.ValidateAll(reqs); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return &Result{DocumentID: documentID}, nil
	}

	chunks := Chunk(reqs, s.chunkSize)
	result := &Result{
		DocumentID: documentID,
		Operations: len(reqs),
		Chunks:     len(chunks),
	}

	committed := 0
	for i, chunk := range chunks {
		logger.Debug("executing batch chunk",
			logging.FieldDocumentID, documentID,
			logging.FieldChunk, i+1,
			logging.FieldChunks, len(chunks),
			logging.FieldOperations, len(chunk))

		resp, err := s.exec.Execute(ctx, documentID, chunk)
		if err != nil {
			return nil, &ChunkError{Chunk: i, Chunks: len(chunks), Committed: committed, Err: err}
		}
		committed += len(chunk)
		if resp != nil {
			result.Replies = append(result.Replies, resp.Replies...)
			if resp.DocumentID != "" {
				result.DocumentID = resp.DocumentID
			}
		}
	}

	return result, nil
}
