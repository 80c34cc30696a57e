// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a local history of render runs in a SQLite
// database, so earlier tablatures can be found again.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "kalimbatab.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	source       TEXT NOT NULL,
	title        TEXT NOT NULL,
	note_count   INTEGER NOT NULL,
	mapped_count INTEGER NOT NULL,
	svg_path     TEXT NOT NULL,
	pdf_path     TEXT NOT NULL,
	created_at   TIMESTAMP NOT NULL
);`

// Run is one recorded render: where the score came from, how many notes
// survived mapping, and where the artifacts went.
type Run struct {
	ID          int64
	Source      string
	Title       string
	NoteCount   int
	MappedCount int
	SVGPath     string
	PDFPath     string
	CreatedAt   time.Time
}

// Store manages the render history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database under dir, creating the
// schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}
	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a run and returns its row ID. A zero CreatedAt is filled
// with the current time.
func (s *Store) Record(r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (source, title, note_count, mapped_count, svg_path, pdf_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Source, r.Title, r.NoteCount, r.MappedCount, r.SVGPath, r.PDFPath, r.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, source, title, note_count, mapped_count, svg_path, pdf_path, created_at
		 FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.Title, &r.NoteCount, &r.MappedCount,
			&r.SVGPath, &r.PDFPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
