package model

import "time"

// ScanReport accumulates the results of a single assetscan run.
// It is created empty by NewScanReport and filled in by the pipeline steps
// as they execute: manifest parsing populates Declared, reference scanning
// populates References, size accounting populates the size maps, and the
// optional optimizer steps populate BytesFreed and BytesSaved.
//
// Design decision: A single mutable aggregate passed through the pipeline
// mirrors how each run is strictly sequential. No step runs concurrently,
// so the report needs no locking.
type ScanReport struct {
	// ProjectName is the package name declared in the manifest.
	ProjectName string `json:"project_name"`

	// ProjectRoot is the absolute path to the scanned project.
	ProjectRoot string `json:"project_root"`

	// GeneratedAt is the timestamp when this report was created.
	GeneratedAt time.Time `json:"generated_at"`

	// Declared is the ordered asset list from the manifest, filtered to
	// recognized extensions. Immutable once computed.
	Declared []string `json:"declared"`

	// References is the set of asset paths found in source code.
	References map[string]struct{} `json:"-"`

	// Unused is Declared minus References, in declaration order.
	Unused []string `json:"unused"`

	// Sizes maps every declared asset that exists on disk to its byte size.
	Sizes SizeMap `json:"sizes"`

	// UnusedSizes maps every unused asset that exists on disk to its byte size.
	UnusedSizes SizeMap `json:"unused_sizes"`

	// TotalBytes is the sum of Sizes.
	TotalBytes int64 `json:"total_bytes"`

	// WastedBytes is the sum of UnusedSizes.
	WastedBytes int64 `json:"wasted_bytes"`

	// Optimized reports whether the delete/compress steps ran.
	Optimized bool `json:"optimized"`

	// BytesFreed is the total size of deleted unused assets.
	BytesFreed int64 `json:"bytes_freed"`

	// BytesSaved is the total size reduction from recompression.
	BytesSaved int64 `json:"bytes_saved"`
}

// NewScanReport creates an empty report for the given project root.
// The reference set is initialized so steps can insert without nil checks.
func NewScanReport(projectRoot string) *ScanReport {
	return &ScanReport{
		ProjectRoot: projectRoot,
		GeneratedAt: time.Now(),
		References:  make(map[string]struct{}),
		Sizes:       make(SizeMap),
		UnusedSizes: make(SizeMap),
	}
}

// ComputeUnused derives Unused and both size maps from the declared list
// and reference set collected so far.
func (r *ScanReport) ComputeUnused() {
	r.Unused = Unused(r.Declared, r.References)
	r.Sizes = Sizes(r.ProjectRoot, r.Declared)
	r.UnusedSizes = Sizes(r.ProjectRoot, r.Unused)
	r.TotalBytes = r.Sizes.Total()
	r.WastedBytes = r.UnusedSizes.Total()
}

// HasWaste reports whether any unused assets were found.
func (r *ScanReport) HasWaste() bool {
	return len(r.Unused) > 0
}
