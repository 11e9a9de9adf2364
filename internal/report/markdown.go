package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/assetscan/assetscan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, using the
// nao1215/markdown library for type-safe table and alert generation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeUnused(md, report)
	w.writeAlert(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with project information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Assetscan Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", "`" + report.ProjectName + "`"},
			{"Scan Date", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Declared Assets", strconv.Itoa(len(report.Declared))},
			{"Unused Assets", strconv.Itoa(len(report.Unused))},
			{"Total Size", model.FormatSize(report.TotalBytes)},
			{"Wasted Size", model.FormatSize(report.WastedBytes)},
		},
	})
	md.PlainText("")
}

// writeUnused writes the unused asset table.
func (w *MarkdownWriter) writeUnused(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Unused Assets")
	md.PlainText("")

	if !report.HasWaste() {
		md.PlainText("No unused assets found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Unused))
	for _, asset := range report.Unused {
		rows = append(rows, []string{
			"`" + asset + "`",
			model.FormatSize(report.UnusedSizes[asset]),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Asset", "Size"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the scan outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ScanReport) {
	switch {
	case report.Optimized:
		md.Note(fmt.Sprintf("Optimization freed %s and saved %s through recompression.",
			model.FormatSize(report.BytesFreed), model.FormatSize(report.BytesSaved)))
	case report.HasWaste():
		md.Warningf("%d unused asset(s) waste %s. Run with --optimize --confirm to remove them.",
			len(report.Unused), model.FormatSize(report.WastedBytes))
	default:
		md.Tip("Every declared asset is referenced from source.")
	}
	md.PlainText("")
}
