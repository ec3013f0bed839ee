// Package audit provides centralised audit logging for stash-mcp tool
// invocations. Entries are stored in ~/.stash-mcp/log/stash-log.db and
// track every MCP tool call and CLI command.
//
// # Fluent API
//
// Use the fluent builder API to construct and write entries:
//
//	audit.Event("mcp:stash_get", "read").
//		Target(id).
//		Write(err)
//
//	audit.Event("mcp:stash_import", "import").
//		Detail("urls", len(urls)).
//		Detail("failed", len(result.Failed)).
//		Write(nil)
//
// The source parameter follows the format "mcp:{tool}" for MCP tools and
// "cli:{command}" for CLI commands.
package audit

import (
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single audit entry.
type Entry struct {
	Source string // e.g. "mcp:stash_get", "cli:auth"
	Action string // verb: read, search, save, import, ...
	Target string // article or suggestion id the operation acted on

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string         // error message if failed
	Detail  map[string]any // operation-specific data (query, counts, ...)
}

// Builder constructs an entry using a fluent API. Create with [Event],
// chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new audit entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Target sets the entity id this operation acted on. Leave unset for
// operations that don't target a single entity (list, search, import).
func (b *Builder) Target(id string) *Builder {
	b.entry.Target = id
	return b
}

// Detail adds a key-value pair to the entry's detail map. Can be called
// multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	db, err := openDB(dbPath())
	if err != nil {
		return err
	}
	global = &Logger{db: db}
	return nil
}

// SetAccount sets the account identifier for subsequent entries. The
// identity is hashed before storage; see hash.
func SetAccount(identity string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.account = hash(identity)
	}
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// Logger writes audit entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	account string
}
