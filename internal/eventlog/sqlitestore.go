package eventlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/receiptkeeper/assetkit/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// the assets table and its indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS assets (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT    NOT NULL,
    kind      INTEGER NOT NULL,
    density   TEXT    NOT NULL DEFAULT '',
    size      INTEGER NOT NULL DEFAULT 0,
    bytes     INTEGER NOT NULL DEFAULT 0,
    sha256    TEXT    NOT NULL DEFAULT '',
    path      TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assets_timestamp ON assets(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_assets_path      ON assets(path);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Record(e Entry) error {
	e = stamp(e)
	_, err := s.db.Exec(
		`INSERT INTO assets (timestamp, kind, density, size, bytes, sha256, path)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Time.Format(time.RFC3339), int(e.Kind), e.Density, e.Size, e.Bytes, e.SHA256, e.Path,
	)
	return err
}

func (s *SQLiteStore) Entries() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT timestamp, kind, density, size, bytes, sha256, path
		 FROM assets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var tsStr string
		var kind int
		var e Entry
		if err := rows.Scan(&tsStr, &kind, &e.Density, &e.Size, &e.Bytes, &e.SHA256, &e.Path); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		e.Time = ts
		e.Kind = EntryKind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM assets`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
