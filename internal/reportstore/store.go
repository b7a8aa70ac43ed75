// Package reportstore persists the artifacts produced by the report.*
// commands (generate/export/summarize/list). It is scoped narrowly to
// those per-invocation artifacts; the core otherwise holds no durable
// state beyond monitor JSONL files and confirmation-request files.
package reportstore

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Report is one generated report artifact.
type Report struct {
	ID            int64
	Kind          string
	Format        string
	Content       string
	Summary       *string
	SourceCommand string
	CreatedAt     time.Time
}

// Store wraps a SQLite-backed report archive.
type Store struct {
	conn *sql.DB
}

// Open connects to path (use ":memory:" for ephemeral/test stores) and
// applies all pending migrations.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	migrationsFS, err := fs.Sub(MigrationFS, "migrations")
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrations sub-fs: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, migrationsFS)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create migration provider: %w", err)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) Close() error { return s.conn.Close() }

// Insert stores a new report and returns its id.
func (s *Store) Insert(kind, format, content, sourceCommand string) (int64, error) {
	res, err := s.conn.Exec(
		`INSERT INTO reports (kind, format, content, source_command, created_at) VALUES (?, ?, ?, ?, ?)`,
		kind, format, content, sourceCommand, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	return res.LastInsertId()
}

func scanReport(scanner interface{ Scan(...any) error }) (*Report, error) {
	var r Report
	var createdAt string
	if err := scanner.Scan(&r.ID, &r.Kind, &r.Format, &r.Content, &r.Summary, &r.SourceCommand, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = parsed
	return &r, nil
}

// Get fetches a single report by id.
func (s *Store) Get(id int64) (*Report, error) {
	row := s.conn.QueryRow(`SELECT id, kind, format, content, summary, source_command, created_at FROM reports WHERE id = ?`, id)
	r, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found: report %d", id)
		}
		return nil, err
	}
	return r, nil
}

// List returns the most recently created reports, newest first, up to
// limit entries.
func (s *Store) List(limit int) ([]*Report, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.conn.Query(`SELECT id, kind, format, content, summary, source_command, created_at FROM reports ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []*Report
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SetSummary stores a generated summary for an existing report.
func (s *Store) SetSummary(id int64, summary string) error {
	res, err := s.conn.Exec(`UPDATE reports SET summary = ? WHERE id = ?`, summary, id)
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("not found: report %d", id)
	}
	return nil
}
