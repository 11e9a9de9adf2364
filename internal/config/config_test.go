package config

import (
	"errors"
	"testing"
)

// TestNewConfig tests the default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("defaults to current directory", func(t *testing.T) {
		t.Parallel()
		if cfg.ProjectRoot != "." {
			t.Errorf("got %q, expected %q", cfg.ProjectRoot, ".")
		}
	})

	t.Run("defaults to quality 80", func(t *testing.T) {
		t.Parallel()
		if cfg.CompressionQuality != 80 {
			t.Errorf("got %d, expected 80", cfg.CompressionQuality)
		}
	})

	t.Run("preview enabled by default", func(t *testing.T) {
		t.Parallel()
		if !cfg.Preview {
			t.Error("expected Preview to default to true")
		}
	})

	t.Run("optimize disabled by default", func(t *testing.T) {
		t.Parallel()
		if cfg.Optimize || cfg.Confirm {
			t.Error("expected Optimize and Confirm to default to false")
		}
	})

	t.Run("uses default asset types", func(t *testing.T) {
		t.Parallel()
		if len(cfg.AssetTypes) != len(DefaultAssetTypes) {
			t.Errorf("got %d asset types, expected %d", len(cfg.AssetTypes), len(DefaultAssetTypes))
		}
	})
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid default config", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("got %v, expected nil", err)
		}
	})

	t.Run("missing project root", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.ProjectRoot = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoProjectRoot) {
			t.Errorf("got %v, expected ErrNoProjectRoot", err)
		}
	})

	t.Run("quality above 100", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.CompressionQuality = 101
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("got %v, expected ErrInvalidQuality", err)
		}
	})

	t.Run("negative quality", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.CompressionQuality = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidQuality) {
			t.Errorf("got %v, expected ErrInvalidQuality", err)
		}
	})

	t.Run("empty asset types", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.AssetTypes = nil
		if err := cfg.Validate(); !errors.Is(err, ErrNoAssetTypes) {
			t.Errorf("got %v, expected ErrNoAssetTypes", err)
		}
	})

	t.Run("invalid ignore pattern", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.IgnorePatterns = []string{"[unclosed"}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidIgnorePattern) {
			t.Errorf("got %v, expected ErrInvalidIgnorePattern", err)
		}
	})
}

// TestCompiledIgnorePatterns tests pattern compilation.
func TestCompiledIgnorePatterns(t *testing.T) {
	t.Parallel()

	t.Run("compiles case-insensitively", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.IgnorePatterns = []string{`generated/.*\.dart`}

		compiled := cfg.CompiledIgnorePatterns()

		if len(compiled) != 1 {
			t.Fatalf("got %d patterns, expected 1", len(compiled))
		}
		if !compiled[0].MatchString("GENERATED/foo.dart") {
			t.Error("expected case-insensitive match")
		}
	})

	t.Run("skips invalid patterns", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.IgnorePatterns = []string{"[unclosed", "valid"}

		if got := len(cfg.CompiledIgnorePatterns()); got != 1 {
			t.Errorf("got %d patterns, expected 1", got)
		}
	})
}
