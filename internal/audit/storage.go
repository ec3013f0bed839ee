// storage.go implements SQLite-based persistent audit logging.
//
// Separated from audit.go to isolate database concerns: audit.go owns
// the fluent API, this file owns persistence. The account column stores
// a hash of the account identity so logs can be grouped per account
// without recording the API host or token material.
//
// Errors during logging are reported to stderr but otherwise ignored
// (best-effort). A tool call must succeed even when the audit database
// is unavailable.

package audit

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, account, source, action, target, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.account, e.Source, e.Action,
		nilIfEmpty(e.Target), success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "stash-mcp: audit log write failed: %v\n", err)
	}
}

// dbPathFunc returns the database path. Tests override it to use a temp
// directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory in unusual environments
		// (containers, restricted accounts) rather than silently failing.
		return filepath.Join(".stash-mcp", "log", "stash-log.db")
	}
	return filepath.Join(home, ".stash-mcp", "log", "stash-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the audit database.
func DBPath() string {
	return dbPath()
}

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// hash creates an account identifier from the identity string, enabling
// per-account grouping while keeping host and token material out of the
// database.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			account TEXT NOT NULL,
			source  TEXT NOT NULL,
			action  TEXT NOT NULL,
			target  TEXT,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_account ON log(account);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
