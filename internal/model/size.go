package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// Binary size unit boundaries used by FormatSize.
const (
	kilobyte = 1024
	megabyte = 1024 * 1024
)

// SizeMap maps an asset path to its byte length on disk.
// It is computed per invocation and never persisted.
type SizeMap map[string]int64

// Sizes resolves the given paths (relative to root) to their byte sizes.
// Paths that do not exist on disk are silently omitted: a missing asset is
// an expected condition after deletion, not an error and not a zero entry.
func Sizes(root string, paths []string) SizeMap {
	sizes := make(SizeMap, len(paths))
	for _, p := range paths {
		info, err := os.Stat(filepath.Join(root, p))
		if err != nil || info.IsDir() {
			continue
		}
		sizes[p] = info.Size()
	}
	return sizes
}

// Total returns the sum of all sizes in the map.
func (s SizeMap) Total() int64 {
	var total int64
	for _, size := range s {
		total += size
	}
	return total
}

// FormatSize renders a byte count in human-readable form.
// Bytes below 1 KiB are shown as "<n> B", below 1 MiB as "<n.n> KB",
// and everything above as "<n.nn> MB".
func FormatSize(bytes int64) string {
	switch {
	case bytes < kilobyte:
		return fmt.Sprintf("%d B", bytes)
	case bytes < megabyte:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kilobyte)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/megabyte)
	}
}

// Unused returns the declared assets that do not appear in the reference
// set. The result preserves the declaration order of declared.
func Unused(declared []string, refs map[string]struct{}) []string {
	unused := make([]string, 0, len(declared))
	for _, asset := range declared {
		if _, ok := refs[asset]; !ok {
			unused = append(unused, asset)
		}
	}
	return unused
}
