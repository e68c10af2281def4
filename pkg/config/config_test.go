package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docpatch/docpatch/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, 50, cfg.Batch.ChunkSize)
	assert.Equal(t, 60, cfg.API.TimeoutSeconds)
	assert.Equal(t, float64(300), cfg.Image.WidthPT)
	assert.Equal(t, float64(200), cfg.Image.HeightPT)
	assert.True(t, cfg.Export.DetectLanguages)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, config.ColorAuto, cfg.Color)
}

func TestFromYAMLKeepsDefaultsForUnsetFields(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("api:\n  endpoint: https://docs.internal\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://docs.internal", cfg.API.Endpoint)
	assert.Equal(t, 50, cfg.Batch.ChunkSize)
	assert.True(t, cfg.Export.DetectLanguages)
}

func TestFromYAMLOverrides(t *testing.T) {
	t.Parallel()

	data := []byte(`
api:
  endpoint: https://docs.internal
  token: abc123
  timeout_seconds: 10
batch:
  chunk_size: 25
export:
  detect_languages: false
format: json
color: never
`)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.API.Token)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, 25, cfg.Batch.ChunkSize)
	assert.False(t, cfg.Export.DetectLanguages)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Equal(t, config.ColorNever, cfg.Color)
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("api: [not a mapping"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.API.Endpoint = "https://docs.internal"
	cfg.Batch.ChunkSize = 25

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	data, err := cfg.ToYAMLWithHeader(config.DefaultTemplateHeader())
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "# docpatch configuration"))
	assert.Contains(t, text, "chunk_size: 50")
}

func TestResolveToken(t *testing.T) {
	t.Setenv("DOCPATCH_TEST_TOKEN", "resolved-secret")

	api := config.APIConfig{Token: "${DOCPATCH_TEST_TOKEN}"}
	assert.Equal(t, "resolved-secret", api.ResolveToken())

	literal := config.APIConfig{Token: "plain-token"}
	assert.Equal(t, "plain-token", literal.ResolveToken())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	clone := cfg.Clone()
	clone.Batch.ChunkSize = 1

	assert.Equal(t, 50, cfg.Batch.ChunkSize)
	assert.Equal(t, 1, clone.Batch.ChunkSize)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	yamlTpl, err := config.GenerateTemplate(config.TemplateOptions{Format: "yaml"})
	require.NoError(t, err)
	parsed, err := config.FromYAML(yamlTpl)
	require.NoError(t, err)
	assert.Equal(t, 50, parsed.Batch.ChunkSize)

	jsonTpl, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
	require.NoError(t, err)
	assert.Contains(t, string(jsonTpl), `"chunk_size": 50`)
}

func TestOutputFormatValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.True(t, config.FormatTable.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())

	assert.True(t, config.ColorAuto.IsValid())
	assert.False(t, config.ColorMode("rainbow").IsValid())
}
