package audit

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetAccount("https://api.stashreader.com/v1")

		Log(Entry{
			Source:  "mcp:stash_get",
			Action:  "read",
			Target:  "a42",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, target string
		var success int
		err = db.QueryRow("SELECT source, action, target, success FROM log WHERE id = 1").
			Scan(&source, &action, &target, &success)
		require.NoError(t, err)
		assert.Equal(t, "mcp:stash_get", source)
		assert.Equal(t, "read", action)
		assert.Equal(t, "a42", target)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent builder records failure", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		Event("mcp:stash_save", "save").
			Detail("url", "https://x.test/1").
			Write(errors.New("boom"))

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg, detail string
		err = db.QueryRow("SELECT success, error, detail FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &detail)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "boom", errMsg)
		assert.Contains(t, detail, "https://x.test/1")
	})

	t.Run("log without open is a no-op", func(t *testing.T) {
		Close()
		// Must not panic.
		Log(Entry{Source: "mcp:stash_list", Action: "list"})
		Event("mcp:stash_list", "list").Write(nil)
	})
}

func TestHashIsStableAndOpaque(t *testing.T) {
	a := hash("https://api.stashreader.com/v1")
	b := hash("https://api.stashreader.com/v1")
	c := hash("https://other.test/v1")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
	assert.NotContains(t, a, "stashreader")
}
