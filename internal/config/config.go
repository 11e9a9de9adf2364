package config

import (
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultCompressionQuality balances visible quality against size.
	// 80 is the conventional "good enough" JPEG quality and maps to an
	// aggressive-but-not-maximal PNG compression level.
	DefaultCompressionQuality = 80

	// ManifestFile is the fixed name of the Flutter project manifest.
	ManifestFile = "pubspec.yaml"

	// SourceDir is the directory under the project root that is scanned
	// for asset references. "lib" is the Flutter source convention.
	SourceDir = "lib"

	// ReportFile is the fixed name of the persisted plain-text report,
	// written into the project root when --report is set.
	ReportFile = "assetscan_report.txt"

	// AppName is the application name used for XDG directory paths.
	AppName = "assetscan"
)

// DefaultAssetTypes lists the recognized asset extensions, covering image,
// font, data, and manifest formats. A config file may override this set
// entirely via the asset_types key.
var DefaultAssetTypes = []string{
	"png", "jpg", "jpeg", "gif", "webp", "bmp", "svg",
	"ttf", "otf",
	"json", "txt",
	"yaml", "yml",
}

// Config holds all configuration options for a single assetscan run.
// It is populated from CLI flags merged over the optional config file
// merged over built-in defaults, constructed once and passed by reference
// through the pipeline. There is no ambient global state.
type Config struct {
	// ProjectRoot is the Flutter project directory to scan.
	ProjectRoot string

	// AssetTypes is the extension allow-list (without leading dot) used to
	// filter manifest entries and the generic scanner pattern.
	AssetTypes []string

	// IgnorePatterns holds regular expressions matched case-insensitively
	// against source file paths relative to the source root. Matching
	// files are skipped by the reference scanner.
	IgnorePatterns []string

	// CompressionQuality is the 0-100 knob for recompression. Higher
	// quality means less aggressive compression.
	CompressionQuality int

	// Preview controls whether the human-readable summary is printed.
	// It defaults to true; optimize and report runs include it too.
	Preview bool

	// Optimize enables deletion of unused assets and recompression of
	// raster assets. Destructive; requires Confirm.
	Optimize bool

	// Confirm is the explicit opt-in gate for destructive actions.
	// Without it an optimize request degrades to a warning and no-op.
	Confirm bool

	// Report enables writing the persisted plain-text report file.
	Report bool

	// Markdown writes the persisted report in Markdown instead of plain text.
	Markdown bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is an explicit config file path. If empty, the tool
	// searches for .assetscan in the project root and the XDG config dir.
	ConfigFilePath string

	// DBDir is the directory for the scan-history SQLite database.
	// Defaults to the XDG data directory.
	DBDir string

	// SaveHistory indicates whether run summaries are recorded in the
	// history database.
	SaveHistory bool
}

// NewConfig creates a new Config with default values.
// Users override specific fields after creation; the defaults alone
// describe a preview-only run over the current directory.
func NewConfig() *Config {
	return &Config{
		ProjectRoot:        ".",
		AssetTypes:         append([]string(nil), DefaultAssetTypes...),
		CompressionQuality: DefaultCompressionQuality,
		Preview:            true,
	}
}

// XDGDataDir returns the XDG data directory for assetscan.
// On Linux: ~/.local/share/assetscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for assetscan.
// On Linux: ~/.config/assetscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found; fixing one error often makes the
// rest irrelevant.
func (c *Config) Validate() error {
	if c.ProjectRoot == "" {
		return ErrNoProjectRoot
	}

	if c.CompressionQuality < 0 || c.CompressionQuality > 100 {
		return ErrInvalidQuality
	}

	if len(c.AssetTypes) == 0 {
		return ErrNoAssetTypes
	}

	// Patterns must compile; a typo here would silently skip nothing.
	for _, pattern := range c.IgnorePatterns {
		if _, err := regexp.Compile("(?i)" + pattern); err != nil {
			return ErrInvalidIgnorePattern
		}
	}

	return nil
}

// CompiledIgnorePatterns compiles the ignore patterns case-insensitively.
// Validate must have been called first; invalid patterns are skipped here.
func (c *Config) CompiledIgnorePatterns() []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(c.IgnorePatterns))
	for _, pattern := range c.IgnorePatterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
