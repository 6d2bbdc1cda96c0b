package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// chromiumSchema is a trimmed copy of the tables Chromium's History file
// carries, enough for the export query.
var chromiumSchema = []string{
	`CREATE TABLE urls (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		url             LONGVARCHAR,
		title           LONGVARCHAR,
		visit_count     INTEGER DEFAULT 0 NOT NULL,
		typed_count     INTEGER DEFAULT 0 NOT NULL,
		last_visit_time INTEGER NOT NULL DEFAULT 0,
		hidden          INTEGER DEFAULT 0 NOT NULL
	)`,
	`CREATE TABLE visits (
		id             INTEGER PRIMARY KEY,
		url            INTEGER NOT NULL,
		visit_time     INTEGER NOT NULL,
		from_visit     INTEGER,
		transition     INTEGER DEFAULT 0 NOT NULL,
		segment_id     INTEGER,
		visit_duration INTEGER DEFAULT 0 NOT NULL
	)`,
	`CREATE INDEX visits_url_index ON visits (url)`,
	`CREATE INDEX visits_time_index ON visits (visit_time)`,
}

// createHistoryDB writes an empty Chromium-style History database to
// dir/History and returns an open read-write handle plus its path.
func createHistoryDB(t *testing.T, dir string, stmts []string) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(dir, "History")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db, path
}

func insertURL(t *testing.T, db *sql.DB, id int64, url string, title any) {
	t.Helper()
	_, err := db.Exec("INSERT INTO urls (id, url, title) VALUES (?, ?, ?)", id, url, title)
	require.NoError(t, err)
}

func insertVisit(t *testing.T, db *sql.DB, urlID, visitTime, transition int64) {
	t.Helper()
	_, err := db.Exec("INSERT INTO visits (url, visit_time, transition) VALUES (?, ?, ?)", urlID, visitTime, transition)
	require.NoError(t, err)
}
