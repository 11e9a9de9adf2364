// Package report formats scan results for humans.
// It provides a terminal summary writer, a persisted plain-text report
// writer, and a Markdown writer for documentation and sharing.
package report
