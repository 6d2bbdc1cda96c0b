package cli

import (
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/chromium-export/internal/config"
	"github.com/runnerr0/chromium-export/internal/output"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = io.Copy(&buf, r)
		close(done)
	}()

	fn()

	w.Close()
	os.Stdout = old
	<-done
	return buf.String()
}

const historySchema = `
CREATE TABLE urls (id INTEGER PRIMARY KEY AUTOINCREMENT, url LONGVARCHAR, title LONGVARCHAR,
	visit_count INTEGER DEFAULT 0 NOT NULL, last_visit_time INTEGER NOT NULL DEFAULT 0);
CREATE TABLE visits (id INTEGER PRIMARY KEY, url INTEGER NOT NULL, visit_time INTEGER NOT NULL,
	from_visit INTEGER, transition INTEGER DEFAULT 0 NOT NULL);
`

// testVisit is one row for the fixture database.
type testVisit struct {
	URL        string
	Title      string
	VisitTime  int64
	Transition int64
}

// writeHistoryDB creates dir/History with the given schema and visits and
// returns its path. Each visit gets its own urls row.
func writeHistoryDB(t *testing.T, dir, schema string, visits []testVisit) string {
	t.Helper()
	path := filepath.Join(dir, "History")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(schema)
	require.NoError(t, err)

	tx, err := db.Begin()
	require.NoError(t, err)
	for i, v := range visits {
		id := int64(i + 1)
		_, err := tx.Exec("INSERT INTO urls (id, url, title) VALUES (?, ?, ?)", id, v.URL, v.Title)
		require.NoError(t, err)
		_, err = tx.Exec("INSERT INTO visits (url, visit_time, transition) VALUES (?, ?, ?)", id, v.VisitTime, v.Transition)
		require.NoError(t, err)
	}
	require.NoError(t, tx.Commit())

	return path
}

// testEnv is an isolated config plus buffered output for one export.
type testEnv struct {
	cfg     *config.Config
	out     *output.Writer
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	tempDir string
	outBase string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	outBase, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &testEnv{
		cfg:     config.DefaultConfig(),
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		tempDir: t.TempDir(),
		outBase: outBase,
	}
	env.cfg.Snapshot.TempDir = env.tempDir
	env.cfg.Export.OutputDir = env.outBase
	env.out = &output.Writer{Stdout: env.stdout, Stderr: env.stderr}
	return env
}

func (env *testEnv) exporter(now time.Time) *Exporter {
	e := NewExporter(env.cfg, env.out)
	e.now = func() time.Time { return now }
	return e
}
