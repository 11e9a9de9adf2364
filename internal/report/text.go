package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/assetscan/assetscan/internal/model"
)

// TextWriter outputs the persisted plain-text report.
// The format is deliberately minimal: a header line with the generation
// timestamp, followed by one bullet line per unused asset with its
// formatted size.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in persisted plain-text format.
func (w *TextWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Unused assets report generated at %s\n",
		report.GeneratedAt.Format("2006-01-02 15:04:05")))

	for _, asset := range report.Unused {
		size := report.UnusedSizes[asset]
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", asset, model.FormatSize(size)))
	}

	return w.output.Write([]byte(sb.String()))
}
