// Package database provides SQLite-based storage for scan-run history.
// Each run's summary figures are recorded so that waste can be tracked
// over time; the history never feeds back into scanning itself.
package database
