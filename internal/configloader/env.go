package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docpatch/docpatch/pkg/config"
)

// envVarPrefix is the prefix for all docpatch environment variables.
const envVarPrefix = "DOCPATCH_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with DOCPATCH_ (e.g., DOCPATCH_ENDPOINT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "ENDPOINT"); v != "" {
		cfg.API.Endpoint = v
	}
	if v := os.Getenv(envVarPrefix + "TOKEN"); v != "" {
		cfg.API.Token = v
	}
	if v := os.Getenv(envVarPrefix + "TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sTIMEOUT_SECONDS: %q", envVarPrefix, v)
		}
		cfg.API.TimeoutSeconds = seconds
	}
	if v := os.Getenv(envVarPrefix + "CHUNK_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sCHUNK_SIZE: %q", envVarPrefix, v)
		}
		cfg.Batch.ChunkSize = size
	}
	if v := os.Getenv(envVarPrefix + "DETECT_LANGUAGES"); v != "" {
		detect, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sDETECT_LANGUAGES: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.Export.DetectLanguages = detect
	}
	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"DOCPATCH_ENDPOINT":         "Base URL of the document service",
		"DOCPATCH_TOKEN":            "Auth token for batch update calls",
		"DOCPATCH_TIMEOUT_SECONDS":  "Timeout per batch update call, in seconds",
		"DOCPATCH_CHUNK_SIZE":       "Maximum operations per batch update call",
		"DOCPATCH_DETECT_LANGUAGES": "Annotate exported code fences: true or false",
		"DOCPATCH_FORMAT":           "Output format: text, json, or table",
		"DOCPATCH_COLOR":            "Styled terminal output: auto, always, or never",
	}
}
