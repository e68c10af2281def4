package cli

import (
	"errors"
	"io/fs"

	"github.com/docpatch/docpatch/internal/configloader"
	"github.com/docpatch/docpatch/pkg/batch"
	"github.com/docpatch/docpatch/pkg/docops"
)

// Exit codes for docpatch.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a run-time failure, including a partially
	// committed batch.
	ExitFailure = 1

	// ExitNotFound indicates the searched text has no mappable match.
	ExitNotFound = 3

	// ExitInvalidUsage indicates invalid command-line usage or input.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrTextNotFound is returned when locate finds no mappable match.
var ErrTextNotFound = errors.New("text not found")

// ExitCodeFromError maps an error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var configErr *configloader.ValidationError
	var inputErr *docops.InputError
	var opErr *docops.ValidationError

	switch {
	case errors.Is(err, ErrTextNotFound):
		return ExitNotFound
	case errors.As(err, &configErr):
		return ExitConfigError
	case errors.As(err, &inputErr), errors.As(err, &opErr):
		return ExitInvalidUsage
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		// Includes *batch.ChunkError: a partial commit is a plain failure.
		return ExitFailure
	}
}

// chunkError unwraps a batch chunk failure, if err contains one.
func chunkError(err error) *batch.ChunkError {
	var chunkErr *batch.ChunkError
	if errors.As(err, &chunkErr) {
		return chunkErr
	}
	return nil
}
