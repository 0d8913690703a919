package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/julianshen/projinsight/internal/classify"
	"github.com/julianshen/projinsight/internal/content"
	"github.com/julianshen/projinsight/internal/detect"
	"github.com/julianshen/projinsight/internal/filetype"
	"github.com/julianshen/projinsight/internal/pipeline"
	"github.com/julianshen/projinsight/internal/scan"
)

// Config represents the top-level application configuration.
type Config struct {
	Scan       ScanConfig       `toml:"scan"`
	Classifier ClassifierConfig `toml:"classifier"`
	Content    ContentConfig    `toml:"content"`
	Resume     ResumeConfig     `toml:"resume"`
	Store      StoreConfig      `toml:"store"`
}

// ScanConfig controls how the tree is walked and read.
type ScanConfig struct {
	MaxTextBytes       int64    `toml:"max_text_bytes" validate:"gt=0"`
	ImportScanMaxBytes int64    `toml:"import_scan_max_bytes" validate:"gt=0"`
	IgnoreFile         string   `toml:"ignore_file" validate:"required"`
	Concurrency        int      `toml:"concurrency" validate:"gt=0,lte=256"`
	Exclude            []string `toml:"exclude"`
}

// ClassifierConfig holds the scoring weights and thresholds.
type ClassifierConfig struct {
	MinFilesForConfident int     `toml:"min_files_for_confident" validate:"gte=1"`
	MarginThreshold      float64 `toml:"margin_threshold" validate:"gt=0,lt=1"`
	FolderBonus          float64 `toml:"folder_bonus" validate:"gt=0"`
	CodeWeight           float64 `toml:"code_weight" validate:"gt=0"`
	TextWeight           float64 `toml:"text_weight" validate:"gt=0"`
	ImageWeight          float64 `toml:"image_weight" validate:"gt=0"`
}

// ContentConfig holds document analysis settings.
type ContentConfig struct {
	CacheSize int `toml:"cache_size" validate:"gt=0"`
}

// ResumeConfig identifies the user in contributor statistics.
type ResumeConfig struct {
	UserName  string `toml:"user_name"`
	UserEmail string `toml:"user_email" validate:"omitempty,email"`
}

// StoreConfig selects the database that keeps run history.
type StoreConfig struct {
	Driver string `toml:"driver" validate:"oneof=sqlite mysql pgx"`
	DSN    string `toml:"dsn" validate:"required"`
}

// Dir returns the directory holding the config file and the default
// history database.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".projinsight"
	}
	return filepath.Join(home, ".config", "projinsight")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	cls := classify.DefaultOptions()
	return &Config{
		Scan: ScanConfig{
			MaxTextBytes:       scan.DefaultMaxTextBytes,
			ImportScanMaxBytes: detect.DefaultImportScanMaxBytes,
			IgnoreFile:         filetype.DefaultIgnoreFile,
			Concurrency:        4,
		},
		Classifier: ClassifierConfig{
			MinFilesForConfident: cls.MinFilesForConfident,
			MarginThreshold:      cls.MarginThreshold,
			FolderBonus:          cls.FolderBonus,
			CodeWeight:           cls.CodeWeight,
			TextWeight:           cls.TextWeight,
			ImageWeight:          cls.ImageWeight,
		},
		Content: ContentConfig{
			CacheSize: content.DefaultCacheSize,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			DSN:    filepath.Join(Dir(), "history.db"),
		},
	}
}

// Load reads the TOML config at path. A missing file yields the defaults;
// fields left unset in the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := mergo.Merge(cfg, DefaultConfig()); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Pipeline converts the config into analyzer settings.
func (c *Config) Pipeline() pipeline.Config {
	return pipeline.Config{
		MaxTextBytes:       c.Scan.MaxTextBytes,
		ImportScanMaxBytes: c.Scan.ImportScanMaxBytes,
		IgnoreFile:         c.Scan.IgnoreFile,
		Exclude:            c.Scan.Exclude,
		Concurrency:        c.Scan.Concurrency,
		ContentCacheSize:   c.Content.CacheSize,
		Classifier: classify.Options{
			MinFilesForConfident: c.Classifier.MinFilesForConfident,
			MarginThreshold:      c.Classifier.MarginThreshold,
			FolderBonus:          c.Classifier.FolderBonus,
			CodeWeight:           c.Classifier.CodeWeight,
			TextWeight:           c.Classifier.TextWeight,
			ImageWeight:          c.Classifier.ImageWeight,
		},
	}
}
