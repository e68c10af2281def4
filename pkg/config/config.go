// Package config defines core configuration types for docpatch.
// These types are pure data structures; file discovery and environment
// handling live in internal/configloader.
package config

import "os"

// OutputFormat specifies the output format for command results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatJSON  OutputFormat = "json"
	FormatTable OutputFormat = "table"
)

// IsValid returns true if the output format is one docpatch can render.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatTable:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled terminal output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// APIConfig holds the document service connection settings.
type APIConfig struct {
	// Endpoint is the base URL of the document service.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`

	// Token authenticates batch update calls. Values of the form
	// ${VAR} are resolved from the environment at use time so the
	// secret never has to live in the config file.
	Token string `mapstructure:"token" yaml:"token"`

	// TimeoutSeconds bounds each batch update HTTP call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// ResolveToken returns the auth token with ${VAR} references expanded.
func (a APIConfig) ResolveToken() string {
	return os.ExpandEnv(a.Token)
}

// BatchConfig controls how operations are grouped for submission.
type BatchConfig struct {
	// ChunkSize is the maximum number of operations per batch call.
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
}

// ImageConfig sets the default rendered size for inline images.
type ImageConfig struct {
	WidthPT  float64 `mapstructure:"width_pt" yaml:"width_pt"`
	HeightPT float64 `mapstructure:"height_pt" yaml:"height_pt"`
}

// ExportConfig controls Markdown serialization of fetched documents.
type ExportConfig struct {
	// DetectLanguages annotates exported code fences with a guessed
	// language.
	DetectLanguages bool `mapstructure:"detect_languages" yaml:"detect_languages"`
}

// Config is the root configuration structure for docpatch.
type Config struct {
	// API configures the document service connection.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Batch configures operation batching.
	Batch BatchConfig `mapstructure:"batch" yaml:"batch"`

	// Image sets default inline image dimensions.
	Image ImageConfig `mapstructure:"image" yaml:"image"`

	// Export configures Markdown serialization.
	Export ExportConfig `mapstructure:"export" yaml:"export"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// Color controls styled terminal output.
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// CLI-level options (not persisted to config files).

	// Debug enables verbose logging.
	Debug bool `mapstructure:"-" yaml:"-"`

	// ReplaceAll clears existing document content before applying.
	ReplaceAll bool `mapstructure:"-" yaml:"-"`

	// DryRun prints the operations without submitting them.
	DryRun bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		API: APIConfig{
			Token:          "${DOCPATCH_TOKEN}",
			TimeoutSeconds: 60,
		},
		Batch: BatchConfig{
			ChunkSize: 50,
		},
		Image: ImageConfig{
			WidthPT:  300,
			HeightPT: 200,
		},
		Export: ExportConfig{
			DetectLanguages: true,
		},
		Format: FormatText,
		Color:  ColorAuto,
	}
}
