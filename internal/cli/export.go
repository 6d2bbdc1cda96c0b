package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runnerr0/chromium-export/internal/config"
	"github.com/runnerr0/chromium-export/internal/export"
	"github.com/runnerr0/chromium-export/internal/history"
	"github.com/runnerr0/chromium-export/internal/output"
)

// displayTime is the layout for dates shown to the user.
const displayTime = "2006-01-02 15:04:05"

// Exporter runs one export: snapshot, validate, extract, write, report.
type Exporter struct {
	cfg *config.Config
	out *output.Writer
	now func() time.Time
}

// Result describes a finished export.
type Result struct {
	Source    string
	OutputDir string
	Cutoff    time.Time
	Stats     *history.Stats
	Files     []export.FileResult
}

// NewExporter creates an Exporter using cfg for output and snapshot locations.
func NewExporter(cfg *config.Config, out *output.Writer) *Exporter {
	return &Exporter{cfg: cfg, out: out, now: time.Now}
}

// Run exports the last days days of history from the database at rawPath.
// Zero days starts the window at the current instant; a negative count puts
// the cutoff in the future and yields an empty export.
func (e *Exporter) Run(ctx context.Context, rawPath string, days int) (*Result, error) {
	start := e.now()
	src := config.ResolvePath(rawPath)
	if err := checkSource(src); err != nil {
		return nil, err
	}

	cutoff := start.AddDate(0, 0, -days)
	res := &Result{
		Source:    src,
		OutputDir: filepath.Join(config.ResolvePath(e.cfg.Export.OutputDir), export.DirName(start)),
		Cutoff:    cutoff,
	}

	snap, err := history.NewSnapshot(src, e.cfg.SnapshotDir(), e.cfg.Snapshot.Prefix)
	if err != nil {
		return nil, fmt.Errorf("snapshot database: %w", err)
	}
	defer func() {
		if err := snap.Remove(); err != nil {
			e.out.Error(err)
		}
	}()
	e.out.Debugf("Snapshot: %s (%s)", snap.Path, output.Size(snap.Size))

	e.out.Section(fmt.Sprintf("Chromium History Export (Last %d Days)", days))
	e.out.Printf("Cutoff date: %s\n", cutoff.Format(displayTime))
	e.out.Println()

	db, err := history.Open(snap.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := history.ValidateSchema(ctx, db); err != nil {
		return nil, err
	}

	reader := history.NewReader(db, history.FromTime(cutoff))

	res.Stats, err = reader.Stats(ctx)
	if err != nil {
		return nil, err
	}

	e.out.Println("Exporting history...")
	records, err := reader.Visits(ctx)
	if err != nil {
		return nil, err
	}

	pageSize := e.cfg.Export.PageSize
	numFiles := export.FileCount(len(records), pageSize)
	e.out.Printf("Splitting JSON files (max %d records per file)...\n", pageSize)
	e.out.Printf("  Total records: %s\n", output.Count(int64(len(records))))
	e.out.Printf("  Will be split into %d files\n", numFiles)

	w := &export.Writer{
		Dir:      res.OutputDir,
		PageSize: pageSize,
		Progress: func(f export.FileResult) {
			e.out.Printf("  -> %s: %d records\n", f.Name, f.Records)
		},
	}
	res.Files, err = w.Write(records)
	if err != nil {
		return nil, err
	}

	printSummary(e.out, res, days)

	return res, nil
}

// checkSource confirms src is an existing regular file.
func checkSource(src string) error {
	info, err := os.Stat(src)
	if errors.Is(err, os.ErrNotExist) {
		return inputErr(
			errors.New("Chromium History database not found"),
			"Path: "+src,
			"",
			"Hint: If your path contains spaces, use quotes or backslash escapes:",
			`  --path "/Users/.../Application Support/.../History"`,
			`  --path ~/Library/Application\ Support/.../History`,
		)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	if info.IsDir() {
		return inputErr(
			errors.New("path is a directory, not a file"),
			"Path: "+src,
			"Hint: Please specify the full path to the History file, e.g.:",
			"  "+filepath.Join(src, "History"),
		)
	}

	return nil
}
