package database

import (
	"context"
	"testing"
	"time"

	"github.com/assetscan/assetscan/internal/model"
)

// openTestDB opens a HistoryDB in a temp directory.
func openTestDB(t *testing.T) *HistoryDB {
	t.Helper()
	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})
	return db
}

// testReport returns a report fixture for persistence tests.
func testReport(project string) *model.ScanReport {
	report := model.NewScanReport("/tmp/" + project)
	report.ProjectName = project
	report.Declared = []string{"assets/logo.png", "assets/icons/a.svg"}
	report.Unused = []string{"assets/icons/a.svg"}
	report.TotalBytes = 5000
	report.WastedBytes = 2000
	return report
}

// TestOpen tests database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database with default options", func(t *testing.T) {
		t.Parallel()
		db := openTestDB(t)
		if db.dbPath == "" {
			t.Error("expected dbPath to be set")
		}
	})

	t.Run("missing database without create option", func(t *testing.T) {
		t.Parallel()
		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})
}

// TestSaveScanReport tests recording a run.
func TestSaveScanReport(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	id, err := db.SaveScanReport(ctx, testReport("example_app"))
	if err != nil {
		t.Fatalf("got %v, expected nil", err)
	}
	if id <= 0 {
		t.Errorf("got id %d, expected positive", id)
	}

	runs, err := db.ListRuns(ctx, "example_app", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}

	run := runs[0]
	if run.DeclaredCount != 2 {
		t.Errorf("got declared count %d, expected 2", run.DeclaredCount)
	}
	if run.UnusedCount != 1 {
		t.Errorf("got unused count %d, expected 1", run.UnusedCount)
	}
	if run.WastedBytes != 2000 {
		t.Errorf("got wasted bytes %d, expected 2000", run.WastedBytes)
	}
	if run.Optimized {
		t.Error("expected non-optimized run")
	}
}

// TestListRuns tests history listing and filtering.
func TestListRuns(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	for i, project := range []string{"app_a", "app_a", "app_b"} {
		report := testReport(project)
		report.GeneratedAt = time.Date(2026, 8, 20+i, 0, 0, 0, 0, time.UTC)
		if _, err := db.SaveScanReport(ctx, report); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("filters by project", func(t *testing.T) {
		t.Parallel()
		runs, err := db.ListRuns(ctx, "app_a", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 2 {
			t.Errorf("got %d runs, expected 2", len(runs))
		}
	})

	t.Run("empty project lists all", func(t *testing.T) {
		t.Parallel()
		runs, err := db.ListRuns(ctx, "", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 3 {
			t.Errorf("got %d runs, expected 3", len(runs))
		}
	})

	t.Run("newest first", func(t *testing.T) {
		t.Parallel()
		runs, err := db.ListRuns(ctx, "app_a", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) == 2 && runs[0].Timestamp.Before(runs[1].Timestamp) {
			t.Error("expected newest run first")
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()
		runs, err := db.ListRuns(ctx, "", 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 1 {
			t.Errorf("got %d runs, expected 1", len(runs))
		}
	})

	t.Run("unknown project yields empty", func(t *testing.T) {
		t.Parallel()
		runs, err := db.ListRuns(ctx, "nope", 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(runs) != 0 {
			t.Errorf("got %d runs, expected 0", len(runs))
		}
	})
}
