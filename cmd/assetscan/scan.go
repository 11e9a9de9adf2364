package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/assetscan/assetscan/internal/config"
	"github.com/assetscan/assetscan/internal/database"
	"github.com/assetscan/assetscan/internal/log"
	"github.com/assetscan/assetscan/internal/model"
	"github.com/assetscan/assetscan/internal/pipeline"
	"github.com/assetscan/assetscan/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [project-dir]",
		Short: "Scan a Flutter project for unused assets",
		Long: `Scan reads the declared asset list from pubspec.yaml, searches the Dart
source tree for references, and reports the assets that are never used.

By default only a preview summary is printed; nothing is modified.
With --optimize, unused assets are deleted and PNG/JPEG assets are
recompressed in place. Optimization is destructive and requires the
explicit --confirm flag.

Examples:
  # Preview unused assets in the current directory
  assetscan scan

  # Preview a specific project and persist a report file
  assetscan scan --report ~/src/myapp

  # Delete unused assets and recompress images
  assetscan scan --optimize --confirm

  # Recompress more aggressively
  assetscan scan --optimize --confirm --quality 60

Configuration file (.assetscan) example:
  asset_types:
    - png
    - jpg
    - svg
  ignore_patterns:
    - "generated/.*"
  compression_quality: 80`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScanCmd,
	}

	// Run-mode flags
	cmd.Flags().BoolP("preview", "p", true,
		"Print a summary of unused assets and wasted bytes")
	cmd.Flags().BoolP("optimize", "o", false,
		"Delete unused assets and recompress images (requires --confirm)")
	cmd.Flags().BoolP("report", "r", false,
		"Write a persisted report file in addition to the preview")
	cmd.Flags().BoolP("confirm", "c", false,
		"Explicit opt-in for the destructive --optimize action")
	cmd.Flags().BoolP("markdown", "m", false,
		"Write the persisted report in Markdown instead of plain text")

	// Tuning flags
	cmd.Flags().IntP("quality", "q", config.DefaultCompressionQuality,
		"Compression quality 0-100 (overrides the config file)")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .assetscan in project root or XDG config dir)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	return runScan(cmd.Context(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file. Precedence: defaults < config file < flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.ProjectRoot = args[0]
	}
	if abs, err := filepath.Abs(cfg.ProjectRoot); err == nil {
		cfg.ProjectRoot = abs
	}

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// A missing or malformed config file silently falls back to defaults.
	if path := config.FindConfigFile(cfg.ConfigFilePath, cfg.ProjectRoot); path != "" {
		cf, err := config.LoadConfigFile(path)
		if err != nil {
			slog.Debug("ignoring unreadable config file", "path", path, "error", err)
		} else {
			cfg.Apply(cf)
		}
	}

	cfg.Preview, err = cmd.Flags().GetBool("preview")
	if err != nil {
		return nil, err
	}

	cfg.Optimize, err = cmd.Flags().GetBool("optimize")
	if err != nil {
		return nil, err
	}

	cfg.Report, err = cmd.Flags().GetBool("report")
	if err != nil {
		return nil, err
	}

	cfg.Confirm, err = cmd.Flags().GetBool("confirm")
	if err != nil {
		return nil, err
	}

	cfg.Markdown, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	// The quality flag overrides the config file only when set explicitly.
	if cmd.Flags().Changed("quality") {
		cfg.CompressionQuality, err = cmd.Flags().GetInt("quality")
		if err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Always record run summaries using the XDG data directory.
	cfg.SaveHistory = true
	cfg.DBDir = config.XDGDataDir()

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
// Paths under the project root are logged in project-relative form.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(log.NewRelPathHandler(handler, cfg.ProjectRoot))
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if info, err := os.Stat(cfg.ProjectRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", errNoProject, cfg.ProjectRoot)
	}

	logger.Info("starting scan",
		"project", cfg.ProjectRoot,
		"optimize", cfg.Optimize,
		"quality", cfg.CompressionQuality,
	)

	scanReport := model.NewScanReport(cfg.ProjectRoot)

	// Analysis: manifest, reference scan, size accounting.
	analysis := pipeline.New(pipeline.WithLogger(logger))
	analysis.AddSteps(
		pipeline.NewManifestStep(cfg),
		pipeline.NewReferenceScanStep(cfg, logger),
		pipeline.NewSizeStep(),
	)
	if err := analysis.Execute(ctx, scanReport); err != nil {
		return err
	}

	if len(scanReport.Declared) == 0 {
		fmt.Println("No assets declared in pubspec.yaml.")
		return nil
	}

	// Optimization: destructive, gated behind --confirm.
	if cfg.Optimize {
		if !cfg.Confirm {
			fmt.Println("Warning: --optimize requires --confirm; no files were modified.")
		} else {
			optimize := pipeline.New(pipeline.WithLogger(logger))
			optimize.AddSteps(
				pipeline.NewDeleteStep(cfg, os.Stdout, logger),
				pipeline.NewCompressStep(cfg, os.Stdout, logger),
			)
			if err := optimize.Execute(ctx, scanReport); err != nil {
				return err
			}
		}
	}

	if err := outputReport(cfg, scanReport); err != nil {
		return err
	}

	if err := saveScanReport(ctx, cfg, scanReport, logger); err != nil {
		logger.Error("failed to save scan history", "error", err)
	}

	return nil
}

// outputReport prints the preview and writes the persisted report file.
func outputReport(cfg *config.Config, scanReport *model.ScanReport) error {
	if cfg.Preview {
		if _, err := report.NewSimpleWriter(os.Stdout).Write(scanReport); err != nil {
			return err
		}
	}

	if !cfg.Report {
		return nil
	}

	name := config.ReportFile
	var writerFor func(f *os.File) report.Writer
	if cfg.Markdown {
		name = "assetscan_report.md"
		writerFor = func(f *os.File) report.Writer { return report.NewMarkdownWriter(f) }
	} else {
		writerFor = func(f *os.File) report.Writer { return report.NewTextWriter(f) }
	}

	path := filepath.Join(cfg.ProjectRoot, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // Report lands in the user's own project
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if _, err := writerFor(f).Write(scanReport); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	fmt.Printf("Report written to %s\n", path)
	return nil
}

// saveScanReport records the run in the history database.
// History is best-effort: a failure here never fails the scan.
func saveScanReport(ctx context.Context, cfg *config.Config, scanReport *model.ScanReport, logger *slog.Logger) error {
	if !cfg.SaveHistory {
		return nil
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if _, err := db.SaveScanReport(ctx, scanReport); err != nil {
		return err
	}

	logger.Debug("scan recorded in history", "project", scanReport.ProjectName)
	return nil
}

// errNoProject reports a usable error when the project root is not a
// directory. Checked up front so the manifest error does not confuse.
var errNoProject = errors.New("project directory not found")
