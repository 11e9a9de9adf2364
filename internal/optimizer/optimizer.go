package optimizer

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/assetscan/assetscan/internal/model"
)

// pngLevelDivisor converts a 0-100 quality into a 0-9 compression level.
// Higher quality maps to a lower level, i.e. less aggressive lossless
// compression effort.
const pngLevelDivisor = 11

// Optimizer deletes unused assets and recompresses raster assets.
type Optimizer struct {
	// root is the project root; asset paths are resolved against it.
	root string

	// quality is the 0-100 compression knob.
	quality int

	// out receives one human-readable line per successful deletion,
	// in input-list order.
	out io.Writer

	// logger is used for structured debug logging.
	logger *slog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithOutput sets the destination for per-deletion output lines.
// Defaults to os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(o *Optimizer) {
		o.out = out
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Optimizer) {
		o.logger = logger
	}
}

// New creates an Optimizer for the given project root and quality.
func New(root string, quality int, opts ...Option) *Optimizer {
	o := &Optimizer{
		root:    root,
		quality: quality,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// DeleteUnused deletes each listed file that currently exists and returns
// the total bytes freed. Non-existent entries are skipped silently.
// Deletion is irreversible and unconditional once invoked; the --confirm
// gate lives in the CLI layer, not here.
func (o *Optimizer) DeleteUnused(unused []string) (int64, error) {
	var freed int64
	for _, asset := range unused {
		path := filepath.Join(o.root, asset)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		if err := os.Remove(path); err != nil {
			return freed, fmt.Errorf("failed to delete %s: %w", asset, err)
		}

		freed += info.Size()
		fmt.Fprintf(o.out, "Deleted %s (%s)\n", asset, model.FormatSize(info.Size()))
	}
	return freed, nil
}

// Compress re-encodes every PNG/JPEG asset in the declared list at the
// configured quality and returns the total bytes saved. A file is
// overwritten only when the re-encoded form is strictly smaller, so
// compression can never increase a file's size. Assets that are missing
// or fail to decode are skipped silently.
func (o *Optimizer) Compress(declared []string) (int64, error) {
	var saved int64
	for _, asset := range declared {
		n, err := o.compressOne(asset)
		if err != nil {
			return saved, err
		}
		saved += n
	}
	return saved, nil
}

// compressOne recompresses a single asset and returns the bytes saved,
// or zero when the asset was skipped or not smaller.
func (o *Optimizer) compressOne(asset string) (int64, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(asset), "."))
	isPNG := ext == "png"
	isJPEG := ext == "jpg" || ext == "jpeg" || ext == "jpe"
	if !isPNG && !isJPEG {
		return 0, nil
	}

	path := filepath.Join(o.root, asset)
	original, err := os.ReadFile(path) //nolint:gosec // Paths come from the user's own manifest
	if err != nil {
		// Missing asset files are expected (already deleted, bad manifest
		// entry) and silently skipped.
		return 0, nil
	}

	img, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		o.logger.Debug("skipping undecodable image", "asset", asset, "error", err)
		return 0, nil
	}

	var buf bytes.Buffer
	if isPNG {
		encoder := png.Encoder{CompressionLevel: pngCompressionLevel(o.quality)}
		err = encoder.Encode(&buf, img)
	} else {
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(o.quality))
	}
	if err != nil {
		return 0, fmt.Errorf("failed to re-encode %s: %w", asset, err)
	}

	if int64(buf.Len()) >= int64(len(original)) {
		o.logger.Debug("re-encode not smaller, keeping original",
			"asset", asset, "original", len(original), "reencoded", buf.Len())
		return 0, nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return 0, fmt.Errorf("failed to overwrite %s: %w", asset, err)
	}

	saved := int64(len(original)) - int64(buf.Len())
	o.logger.Debug("recompressed asset", "asset", asset, "saved", saved)
	return saved, nil
}

// pngCompressionLevel maps a 0-100 quality onto the PNG encoder's
// compression levels via the 0-9 zlib-style level clamp(0, 9, (100-q)/11).
// The standard encoder exposes four named levels, so the 0-9 value is
// bucketed onto them.
func pngCompressionLevel(quality int) png.CompressionLevel {
	level := (100 - quality) / pngLevelDivisor
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}

	switch {
	case level == 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
