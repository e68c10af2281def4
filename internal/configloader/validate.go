package configloader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/docpatch/docpatch/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "batch.chunk_size").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.API.Endpoint != "" {
		if u, err := url.Parse(cfg.API.Endpoint); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "api.endpoint",
				Value:   cfg.API.Endpoint,
				Message: fmt.Sprintf("invalid endpoint %q; must be an absolute http or https URL", cfg.API.Endpoint),
			})
		}
	}

	if cfg.API.TimeoutSeconds <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "api.timeout_seconds",
			Value:   cfg.API.TimeoutSeconds,
			Message: "timeout_seconds must be > 0",
		})
	}

	if cfg.Batch.ChunkSize < 1 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "batch.chunk_size",
			Value:   cfg.Batch.ChunkSize,
			Message: "chunk_size must be >= 1",
		})
	}

	if cfg.Image.WidthPT <= 0 || cfg.Image.HeightPT <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "image",
			Value:   fmt.Sprintf("%gx%g", cfg.Image.WidthPT, cfg.Image.HeightPT),
			Message: "image dimensions must be > 0",
		})
	}

	if !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, json, table", cfg.Format),
		})
	}

	if !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	return result
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
