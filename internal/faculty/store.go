// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package faculty persists the faculty registry and imports merged
// publication reports into it. Imported rows match existing members by
// case-insensitively normalized name; unmatched rows create new members.
package faculty

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubmerge/internal/mergepub"
	"github.com/pdiddy/pubmerge/pkg/types"
)

// Store manages the faculty registry SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the registry database at path, creating the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS faculty (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			name_key TEXT NOT NULL UNIQUE,
			department TEXT NOT NULL DEFAULT 'Unknown',
			email TEXT,
			scopus_id TEXT,
			publication_count INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_faculty_department ON faculty(department)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from one report import.
type ImportSummary struct {
	Updated int
	Created int
}

// Total returns the number of report rows applied.
func (s ImportSummary) Total() int {
	return s.Updated + s.Created
}

// Import applies author reports to the registry inside one transaction.
// A report matching an existing member updates its publication count, and
// its department when the report carries a real one; unmatched reports
// create new members. Per-row status goes to w.
func (s *Store) Import(ctx context.Context, reports []types.AuthorReport, w io.Writer) (ImportSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var summary ImportSummary
	now := time.Now().UTC().Format(time.RFC3339)

	for _, r := range reports {
		key := mergepub.AuthorKey(r.AuthorName)
		if key == "" {
			continue
		}

		var id int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM faculty WHERE name_key = ?`, key,
		).Scan(&id)

		switch {
		case err == sql.ErrNoRows:
			dept := r.Department
			if dept == "" {
				dept = "Unknown"
			}
			_, err := tx.ExecContext(ctx,
				`INSERT INTO faculty (name, name_key, department, publication_count, updated_at)
				 VALUES (?, ?, ?, ?, ?)`,
				r.AuthorName, key, dept, r.PublicationCount, now,
			)
			if err != nil {
				return summary, fmt.Errorf("creating %s: %w", r.AuthorName, err)
			}
			fmt.Fprintf(w, "created %s (%d publications)\n", r.AuthorName, r.PublicationCount)
			summary.Created++

		case err != nil:
			return summary, fmt.Errorf("looking up %s: %w", r.AuthorName, err)

		default:
			query := `UPDATE faculty SET publication_count = ?, updated_at = ? WHERE id = ?`
			args := []any{r.PublicationCount, now, id}
			if r.Department != "" && r.Department != "Unknown" {
				query = `UPDATE faculty SET publication_count = ?, department = ?, updated_at = ? WHERE id = ?`
				args = []any{r.PublicationCount, r.Department, now, id}
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return summary, fmt.Errorf("updating %s: %w", r.AuthorName, err)
			}
			fmt.Fprintf(w, "updated %s (%d publications)\n", r.AuthorName, r.PublicationCount)
			summary.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}
	fmt.Fprintf(w, "\nImport summary: %d updated, %d created (total: %d)\n",
		summary.Updated, summary.Created, summary.Total())
	return summary, nil
}

// List returns all registry members ordered by name.
func (s *Store) List(ctx context.Context) ([]types.Faculty, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, department, COALESCE(email, ''), COALESCE(scopus_id, ''),
		        publication_count, updated_at
		 FROM faculty ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("querying faculty: %w", err)
	}
	defer rows.Close()

	var members []types.Faculty
	for rows.Next() {
		var f types.Faculty
		var updated string
		if err := rows.Scan(&f.ID, &f.Name, &f.Department, &f.Email, &f.ScopusID,
			&f.PublicationCount, &updated); err != nil {
			return nil, fmt.Errorf("scanning faculty row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, updated); parseErr == nil {
			f.UpdatedAt = t
		}
		members = append(members, f)
	}
	return members, rows.Err()
}

// RegistryStats summarizes the registry contents.
type RegistryStats struct {
	TotalFaculty      int `json:"total_faculty" yaml:"total_faculty"`
	TotalPublications int `json:"total_publications" yaml:"total_publications"`
	Departments       int `json:"departments" yaml:"departments"`
}

// Stats computes registry-level totals.
func (s *Store) Stats(ctx context.Context) (RegistryStats, error) {
	var st RegistryStats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(publication_count), 0),
		        COUNT(DISTINCT department)
		 FROM faculty`,
	).Scan(&st.TotalFaculty, &st.TotalPublications, &st.Departments)
	if err != nil {
		return RegistryStats{}, fmt.Errorf("computing registry stats: %w", err)
	}
	return st, nil
}
