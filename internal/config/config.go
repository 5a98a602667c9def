package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/michalsrutek/arrow"
	ftime "github.com/michalsrutek/arrow/format/time"
	"gopkg.in/yaml.v3"
)

// Config represents arrow CLI defaults
type Config struct {
	DateFormat       string `yaml:"date_format"`
	UseReferenceDate bool   `yaml:"use_reference_date"`
	ExactNumbers     bool   `yaml:"exact_numbers"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		DateFormat: ftime.DefaultDateFormat,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = ftime.DefaultDateFormat
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in dir and its parents
func FindConfigFile(dir string) string {
	configNames := []string{".arrow.yml", ".arrow.yaml", "arrow.yml", "arrow.yaml"}
	currentDir := dir
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return ""
}

// Options returns arrow config options
func (c *Config) Options() []arrow.Option {
	return []arrow.Option{
		arrow.WithDateFormat(c.DateFormat),
		arrow.WithReferenceDate(c.UseReferenceDate),
	}
}

// ArrowConfig creates arrow config
func (c *Config) ArrowConfig() *arrow.Config {
	return arrow.NewConfig(c.Options()...)
}
