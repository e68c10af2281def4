package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template with every
// setting documented.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	return []byte(`# docpatch configuration
# See: https://github.com/docpatch/docpatch

# Document service connection
api:
  # Base URL of the positional document API
  endpoint: https://docs.example.com

  # Auth token; ${VAR} is expanded from the environment at use time
  token: ${DOCPATCH_TOKEN}

  # Timeout per batch update call, in seconds
  timeout_seconds: 60

# Operation batching
batch:
  # Maximum operations per batch update call
  chunk_size: 50

# Default inline image dimensions, in typographic points
image:
  width_pt: 300
  height_pt: 200

# Markdown export
export:
  # Annotate exported code fences with a guessed language
  detect_languages: true

# Output format: text, json, or table
format: text

# Styled terminal output: auto, always, or never
color: auto
`), nil
}

// templateToJSON renders the default configuration as indented JSON.
func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"api": map[string]any{
			"endpoint":        "https://docs.example.com",
			"token":           "${DOCPATCH_TOKEN}",
			"timeout_seconds": 60,
		},
		"batch": map[string]any{
			"chunk_size": 50,
		},
		"image": map[string]any{
			"width_pt":  300,
			"height_pt": 200,
		},
		"export": map[string]any{
			"detect_languages": true,
		},
		"format": "text",
		"color":  "auto",
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# docpatch configuration
# See: https://github.com/docpatch/docpatch`
}
