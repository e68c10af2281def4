package configloader

import "github.com/docpatch/docpatch/pkg/config"

// fileConfig mirrors config.Config with pointer fields so a loaded file
// only overrides the settings it actually names. In particular
// export.detect_languages defaults to true and must be disablable, which
// a plain bool cannot express.
type fileConfig struct {
	API struct {
		Endpoint       *string `yaml:"endpoint"`
		Token          *string `yaml:"token"`
		TimeoutSeconds *int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Batch struct {
		ChunkSize *int `yaml:"chunk_size"`
	} `yaml:"batch"`

	Image struct {
		WidthPT  *float64 `yaml:"width_pt"`
		HeightPT *float64 `yaml:"height_pt"`
	} `yaml:"image"`

	Export struct {
		DetectLanguages *bool `yaml:"detect_languages"`
	} `yaml:"export"`

	Format *string `yaml:"format"`
	Color  *string `yaml:"color"`
}

// apply overlays the file's set fields onto cfg.
func (f *fileConfig) apply(cfg *config.Config) {
	if f.API.Endpoint != nil {
		cfg.API.Endpoint = *f.API.Endpoint
	}
	if f.API.Token != nil {
		cfg.API.Token = *f.API.Token
	}
	if f.API.TimeoutSeconds != nil {
		cfg.API.TimeoutSeconds = *f.API.TimeoutSeconds
	}
	if f.Batch.ChunkSize != nil {
		cfg.Batch.ChunkSize = *f.Batch.ChunkSize
	}
	if f.Image.WidthPT != nil {
		cfg.Image.WidthPT = *f.Image.WidthPT
	}
	if f.Image.HeightPT != nil {
		cfg.Image.HeightPT = *f.Image.HeightPT
	}
	if f.Export.DetectLanguages != nil {
		cfg.Export.DetectLanguages = *f.Export.DetectLanguages
	}
	if f.Format != nil {
		cfg.Format = config.OutputFormat(*f.Format)
	}
	if f.Color != nil {
		cfg.Color = config.ColorMode(*f.Color)
	}
}
