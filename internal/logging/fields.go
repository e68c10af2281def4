// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldFormat     = "format"
	FieldEndpoint   = "endpoint"
	FieldWorkingDir = "working_dir"

	// Document fields.
	FieldDocumentID = "document_id"
	FieldEndIndex   = "end_index"
	FieldBlocks     = "blocks"
	FieldText       = "text"
	FieldInstance   = "instance"
	FieldOffset     = "offset"

	// Batch fields.
	FieldOperations = "operations"
	FieldChunk      = "chunk"
	FieldChunks     = "chunks"
	FieldCommitted  = "committed"
	FieldReplace    = "replace"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
