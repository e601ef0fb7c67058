package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tavlaboard/tavla/internal/models"
)

// SQLiteStore persists the task collection in a local SQLite database.
// Save rewrites the whole collection in one transaction so the stored
// order always matches the in-memory order.
type SQLiteStore struct {
	db *sql.DB
}

const taskSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY AUTOINCREMENT,
	id          TEXT NOT NULL UNIQUE,
	project_id  TEXT NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	priority    TEXT NOT NULL,
	status      TEXT NOT NULL,
	start_date  TEXT,
	due_date    TEXT,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);`

// OpenSQLite opens (or creates) the database at path and prepares the schema
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			closeQuietly(db)
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, taskSchema); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the persisted collection in stored order. Rows with unknown
// enum values are skipped rather than aborting the load.
func (s *SQLiteStore) Load() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, project_id, title, description, priority, status,
		       start_date, due_date, created_at, updated_at
		FROM tasks
		ORDER BY position`)
	if err != nil {
		return []models.Task{}, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var r taskRecord
		var start, due sql.NullString
		var created, updated string
		if err := rows.Scan(&r.ID, &r.ProjectID, &r.Title, &r.Description,
			&r.Priority, &r.Status, &start, &due, &created, &updated); err != nil {
			return []models.Task{}, fmt.Errorf("failed to scan task row: %w", err)
		}

		r.StartDate = parseStoredDate(start)
		r.DueDate = parseStoredDate(due)
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		r.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)

		task, err := r.toTask()
		if err != nil {
			slog.Warn("Skipping malformed task row", "id", r.ID, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return []models.Task{}, fmt.Errorf("failed to iterate task rows: %w", err)
	}
	return tasks, nil
}

// Save rewrites the full collection atomically
func (s *SQLiteStore) Save(tasks []models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, project_id, title, description, priority, status,
		                   start_date, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		if _, err := stmt.Exec(
			t.ID, t.ProjectID, t.Title, t.Description,
			string(t.Priority), string(t.Status),
			formatStoredDate(t.StartDate), formatStoredDate(t.DueDate),
			t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("failed to insert task %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tasks: %w", err)
	}
	return nil
}

func parseStoredDate(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	d, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil
	}
	return &d
}

func formatStoredDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(time.RFC3339Nano)
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
