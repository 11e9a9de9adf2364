// Package log provides logging utilities for assetscan.
// It contains a slog.Handler wrapper that rewrites absolute paths under
// the project root to project-relative form, so verbose logs pasted into
// bug reports do not leak the local directory layout.
package log
