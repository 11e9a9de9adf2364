package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all keys", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `asset_types:
  - png
  - jpg
ignore_patterns:
  - "generated/.*"
compression_quality: 65
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("got %v, expected nil", err)
		}
		if len(cf.AssetTypes) != 2 {
			t.Errorf("got %d asset types, expected 2", len(cf.AssetTypes))
		}
		if len(cf.IgnorePatterns) != 1 {
			t.Errorf("got %d ignore patterns, expected 1", len(cf.IgnorePatterns))
		}
		if cf.CompressionQuality == nil || *cf.CompressionQuality != 65 {
			t.Errorf("got %v, expected compression_quality 65", cf.CompressionQuality)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("got %v, expected ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml returns error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("asset_types: [unterminated"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

// TestFindConfigFile tests the config file search order.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path, t.TempDir()); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})

	t.Run("missing explicit path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile("/nonexistent/custom.yaml", t.TempDir()); got != "" {
			t.Errorf("got %q, expected empty", got)
		}
	})

	t.Run("finds config in project root", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		path := filepath.Join(root, DefaultConfigFile)
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile("", root); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})
}

// TestConfigApply tests merging file overrides into the config.
func TestConfigApply(t *testing.T) {
	t.Parallel()

	t.Run("nil file keeps defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Apply(nil)
		if cfg.CompressionQuality != DefaultCompressionQuality {
			t.Errorf("got %d, expected %d", cfg.CompressionQuality, DefaultCompressionQuality)
		}
	})

	t.Run("overrides asset types entirely", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Apply(&File{AssetTypes: []string{"png"}})
		if len(cfg.AssetTypes) != 1 || cfg.AssetTypes[0] != "png" {
			t.Errorf("got %v, expected [png]", cfg.AssetTypes)
		}
	})

	t.Run("absent quality keeps default", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Apply(&File{AssetTypes: []string{"png"}})
		if cfg.CompressionQuality != DefaultCompressionQuality {
			t.Errorf("got %d, expected %d", cfg.CompressionQuality, DefaultCompressionQuality)
		}
	})

	t.Run("out-of-range quality ignored", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		q := 150
		cfg.Apply(&File{CompressionQuality: &q})
		if cfg.CompressionQuality != DefaultCompressionQuality {
			t.Errorf("got %d, expected default %d", cfg.CompressionQuality, DefaultCompressionQuality)
		}
	})

	t.Run("valid quality applied", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		q := 42
		cfg.Apply(&File{CompressionQuality: &q})
		if cfg.CompressionQuality != 42 {
			t.Errorf("got %d, expected 42", cfg.CompressionQuality)
		}
	})
}
