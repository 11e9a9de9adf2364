package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/assetscan/assetscan/internal/model"
)

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display: a header, the unused
// assets with their sizes, and the aggregate figures.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeUnused(&sb, report)
	w.writeTotals(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with project information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                    ASSETSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	if report.ProjectName != "" {
		sb.WriteString(fmt.Sprintf("Project:         %s\n", report.ProjectName))
	}
	sb.WriteString(fmt.Sprintf("Scan Date:       %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Declared Assets: %d\n", len(report.Declared)))
	sb.WriteString(fmt.Sprintf("Unused Assets:   %d\n", len(report.Unused)))
	sb.WriteString("\n")
}

// writeUnused writes the unused asset list with formatted sizes.
func (w *SimpleWriter) writeUnused(sb *strings.Builder, report *model.ScanReport) {
	if !report.HasWaste() {
		sb.WriteString("No unused assets found.\n\n")
		return
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("UNUSED ASSETS\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	for _, asset := range report.Unused {
		if size, ok := report.UnusedSizes[asset]; ok {
			sb.WriteString(fmt.Sprintf("  - %s (%s)\n", asset, model.FormatSize(size)))
		} else {
			sb.WriteString(fmt.Sprintf("  - %s (missing)\n", asset))
		}
	}
	sb.WriteString("\n")
}

// writeTotals writes the aggregate size figures.
func (w *SimpleWriter) writeTotals(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(fmt.Sprintf("Total asset size:  %s\n", model.FormatSize(report.TotalBytes)))
	sb.WriteString(fmt.Sprintf("Wasted size:       %s\n", model.FormatSize(report.WastedBytes)))

	if report.Optimized {
		sb.WriteString(fmt.Sprintf("Bytes freed:       %s\n", model.FormatSize(report.BytesFreed)))
		sb.WriteString(fmt.Sprintf("Bytes saved:       %s\n", model.FormatSize(report.BytesSaved)))
	}
	sb.WriteString("\n")
}
