package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != configFileName {
			t.Errorf("expected default %q, got %q", configFileName, flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestRunInitCmd tests init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates configuration file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".assetscan")
		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		content, err := os.ReadFile(path) //nolint:gosec // Test file path
		if err != nil {
			t.Fatalf("failed to read generated file: %v", err)
		}
		if !strings.Contains(string(content), "asset_types") {
			t.Error("expected template to document asset_types")
		}
		if !strings.Contains(string(content), "compression_quality") {
			t.Error("expected template to document compression_quality")
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".assetscan")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		if err := cmd.Execute(); err == nil {
			t.Error("expected error when file exists")
		}

		content, err := os.ReadFile(path) //nolint:gosec // Test file path
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "existing" {
			t.Error("existing file should not be modified")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".assetscan")
		if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path, "-f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		content, err := os.ReadFile(path) //nolint:gosec // Test file path
		if err != nil {
			t.Fatal(err)
		}
		if string(content) == "existing" {
			t.Error("expected file to be overwritten")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute failed: %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file at %s: %v", path, err)
		}
	})
}
