// Package eventlog records which assets a run generated, with their size
// and content hash, in a flat log file or a SQLite database.
package eventlog

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"
)

// sqliteExts selects SQLiteStore in Open.
var sqliteExts = map[string]bool{".db": true, ".sqlite": true, ".sqlite3": true}

// Open returns the store for path: SQLite for .db/.sqlite/.sqlite3, a flat
// log file otherwise.
func Open(path string) (Store, error) {
	if sqliteExts[strings.ToLower(filepath.Ext(path))] {
		return NewSQLiteStore(path)
	}
	return NewFileStore(path), nil
}

// NewEntry builds an entry for data written to path.
func NewEntry(kind EntryKind, path string, data []byte) Entry {
	sum := sha256.Sum256(data)
	return Entry{
		Time:   time.Now(),
		Kind:   kind,
		Bytes:  len(data),
		SHA256: hex.EncodeToString(sum[:]),
		Path:   path,
	}
}

func stamp(e Entry) Entry {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	return e
}
