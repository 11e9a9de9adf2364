package pipeline

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/assetscan/assetscan/internal/config"
	"github.com/assetscan/assetscan/internal/manifest"
	"github.com/assetscan/assetscan/internal/model"
	"github.com/assetscan/assetscan/internal/optimizer"
	"github.com/assetscan/assetscan/internal/scanner"
)

// ManifestStep parses the project manifest and records the declared asset
// list on the report.
type ManifestStep struct {
	cfg *config.Config
}

// NewManifestStep creates a ManifestStep.
func NewManifestStep(cfg *config.Config) *ManifestStep {
	return &ManifestStep{cfg: cfg}
}

// Name returns the step's name for logging purposes.
func (s *ManifestStep) Name() string { return "manifest" }

// Do loads pubspec.yaml and fills in the project name and declared assets.
// An unreadable manifest aborts the run.
func (s *ManifestStep) Do(_ context.Context, report *model.ScanReport) error {
	m, err := manifest.Load(filepath.Join(s.cfg.ProjectRoot, config.ManifestFile))
	if err != nil {
		return err
	}

	report.ProjectName = m.Name
	report.Declared = m.DeclaredAssets(s.cfg.AssetTypes)
	return nil
}

// ReferenceScanStep scans the source tree for asset references.
type ReferenceScanStep struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewReferenceScanStep creates a ReferenceScanStep.
func NewReferenceScanStep(cfg *config.Config, logger *slog.Logger) *ReferenceScanStep {
	return &ReferenceScanStep{cfg: cfg, logger: logger}
}

// Name returns the step's name for logging purposes.
func (s *ReferenceScanStep) Name() string { return "reference-scan" }

// Do walks the Dart source tree and records the reference set.
func (s *ReferenceScanStep) Do(_ context.Context, report *model.ScanReport) error {
	sc := scanner.New(
		filepath.Join(s.cfg.ProjectRoot, config.SourceDir),
		s.cfg.CompiledIgnorePatterns(),
		s.cfg.AssetTypes,
		s.logger,
	)

	refs, err := sc.Scan()
	if err != nil {
		return err
	}

	report.References = refs
	return nil
}

// SizeStep derives the unused asset list and resolves sizes on disk.
type SizeStep struct{}

// NewSizeStep creates a SizeStep.
func NewSizeStep() *SizeStep { return &SizeStep{} }

// Name returns the step's name for logging purposes.
func (s *SizeStep) Name() string { return "size-accounting" }

// Do computes unused assets and the total/wasted byte figures.
func (s *SizeStep) Do(_ context.Context, report *model.ScanReport) error {
	report.ComputeUnused()
	return nil
}

// DeleteStep removes unused asset files from disk.
type DeleteStep struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
}

// NewDeleteStep creates a DeleteStep writing per-deletion lines to out.
func NewDeleteStep(cfg *config.Config, out io.Writer, logger *slog.Logger) *DeleteStep {
	return &DeleteStep{cfg: cfg, out: out, logger: logger}
}

// Name returns the step's name for logging purposes.
func (s *DeleteStep) Name() string { return "delete-unused" }

// Do deletes every unused asset that exists and records the bytes freed.
func (s *DeleteStep) Do(_ context.Context, report *model.ScanReport) error {
	o := optimizer.New(s.cfg.ProjectRoot, s.cfg.CompressionQuality,
		optimizer.WithOutput(s.out), optimizer.WithLogger(s.logger))

	freed, err := o.DeleteUnused(report.Unused)
	if err != nil {
		return err
	}

	report.BytesFreed = freed
	report.Optimized = true
	return nil
}

// CompressStep recompresses declared raster assets in place.
type CompressStep struct {
	cfg    *config.Config
	out    io.Writer
	logger *slog.Logger
}

// NewCompressStep creates a CompressStep.
func NewCompressStep(cfg *config.Config, out io.Writer, logger *slog.Logger) *CompressStep {
	return &CompressStep{cfg: cfg, out: out, logger: logger}
}

// Name returns the step's name for logging purposes.
func (s *CompressStep) Name() string { return "compress" }

// Do re-encodes PNG/JPEG assets at the configured quality and records the
// bytes saved. Runs over the full declared list; assets deleted by a prior
// step are skipped inside the optimizer.
func (s *CompressStep) Do(_ context.Context, report *model.ScanReport) error {
	o := optimizer.New(s.cfg.ProjectRoot, s.cfg.CompressionQuality,
		optimizer.WithOutput(s.out), optimizer.WithLogger(s.logger))

	saved, err := o.Compress(report.Declared)
	if err != nil {
		return err
	}

	report.BytesSaved = saved
	report.Optimized = true
	return nil
}
