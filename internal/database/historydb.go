package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/assetscan/assetscan/internal/model"
)

// dbFileName is the SQLite database file name inside the data directory.
const dbFileName = "assetscan.db"

// HistoryDB provides SQLite-based storage for scan-run summaries.
// It manages connection pooling and provides methods for recording and
// listing runs.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite: mode=rw prevents creating new files, mode=rwc
	// allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Scan runs store one summary row per assetscan invocation
	CREATE TABLE IF NOT EXISTS scan_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		declared_count INTEGER NOT NULL,
		unused_count INTEGER NOT NULL,
		total_bytes INTEGER NOT NULL,
		wasted_bytes INTEGER NOT NULL,
		bytes_freed INTEGER NOT NULL DEFAULT 0,
		bytes_saved INTEGER NOT NULL DEFAULT 0,
		optimized INTEGER NOT NULL DEFAULT 0,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_project ON scan_runs(project);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON scan_runs(timestamp);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// Run represents a stored scan-run summary.
type Run struct {
	ID            int64
	Project       string
	Timestamp     time.Time
	DeclaredCount int
	UnusedCount   int
	TotalBytes    int64
	WastedBytes   int64
	BytesFreed    int64
	BytesSaved    int64
	Optimized     bool
}

// SaveScanReport records a completed scan run.
// The full report is stored as JSON alongside the summary columns.
func (hdb *HistoryDB) SaveScanReport(ctx context.Context, report *model.ScanReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	project := report.ProjectName
	if project == "" {
		project = report.ProjectRoot
	}

	query := `
	INSERT INTO scan_runs (project, timestamp, declared_count, unused_count,
		total_bytes, wasted_bytes, bytes_freed, bytes_saved, optimized, report_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := hdb.db.ExecContext(ctx, query,
		project,
		report.GeneratedAt.UTC(),
		len(report.Declared),
		len(report.Unused),
		report.TotalBytes,
		report.WastedBytes,
		report.BytesFreed,
		report.BytesSaved,
		report.Optimized,
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert scan run: %w", err)
	}

	return result.LastInsertId()
}

// ListRuns returns the most recent runs for a project, newest first.
// An empty project lists runs across all projects. limit caps the number
// of rows; zero or negative means no cap.
func (hdb *HistoryDB) ListRuns(ctx context.Context, project string, limit int) ([]Run, error) {
	query := `
	SELECT id, project, timestamp, declared_count, unused_count,
		total_bytes, wasted_bytes, bytes_freed, bytes_saved, optimized
	FROM scan_runs
	`
	args := make([]any, 0, 2)
	if project != "" {
		query += " WHERE project = ?"
		args = append(args, project)
	}
	query += " ORDER BY timestamp DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Project, &r.Timestamp, &r.DeclaredCount,
			&r.UnusedCount, &r.TotalBytes, &r.WastedBytes, &r.BytesFreed,
			&r.BytesSaved, &r.Optimized); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}
