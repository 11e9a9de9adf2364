package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".assetscan"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the on-disk YAML configuration.
// Every key is optional; zero values mean "keep the built-in default".
type File struct {
	// AssetTypes overrides the default extension allow-list entirely.
	AssetTypes []string `yaml:"asset_types"`

	// IgnorePatterns lists regex strings for source files to skip.
	IgnorePatterns []string `yaml:"ignore_patterns"`

	// CompressionQuality overrides the default quality (0-100).
	CompressionQuality *int `yaml:"compression_quality"`
}

// LoadConfigFile loads configuration overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .assetscan in the project root
// 3. Look for .assetscan in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath, projectRoot string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	projectConfig := filepath.Join(projectRoot, DefaultConfigFile)
	if _, err := os.Stat(projectConfig); err == nil {
		return projectConfig
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}

// Apply merges the file's overrides into the config.
// Only keys present in the file replace defaults; absent keys leave the
// config untouched. An out-of-range quality is ignored rather than
// propagated so that a malformed file degrades to defaults.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}

	if len(cf.AssetTypes) > 0 {
		c.AssetTypes = append([]string(nil), cf.AssetTypes...)
	}

	if len(cf.IgnorePatterns) > 0 {
		c.IgnorePatterns = append([]string(nil), cf.IgnorePatterns...)
	}

	if cf.CompressionQuality != nil {
		q := *cf.CompressionQuality
		if q >= 0 && q <= 100 {
			c.CompressionQuality = q
		}
	}
}
