package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runnerr0/chromium-export/internal/history"
)

// DocumentKey is the single top-level field of every output file.
const DocumentKey = "Browser History"

// document is the on-disk shape of one output file.
type document struct {
	Records []history.VisitRecord `json:"Browser History"`
}

// FileResult describes one written output file.
type FileResult struct {
	Name     string
	Path     string
	Records  int
	Reported bool
}

// ProgressFunc is called for each sampled file after it is written.
type ProgressFunc func(f FileResult)

// Writer writes paginated visit records into a single output directory.
type Writer struct {
	Dir      string
	PageSize int
	Progress ProgressFunc
}

// DirName returns the per-run output directory name for start, in local time.
func DirName(start time.Time) string {
	return "output_" + start.Local().Format("20060102_150405")
}

// FileName returns the name of the 0-based index-th output file.
func FileName(index int) string {
	return fmt.Sprintf("BrowserHistory_%03d.json", index+1)
}

// Write creates the output directory and writes one file per page. It
// returns every written file in sequence order.
func (w *Writer) Write(records []history.VisitRecord) ([]FileResult, error) {
	if w.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", w.PageSize)
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	pages := Paginate(records, w.PageSize)
	sampled := SampleIndices(len(pages))

	results := make([]FileResult, 0, len(pages))
	for i, page := range pages {
		name := FileName(i)
		path := filepath.Join(w.Dir, name)

		if err := writeDocument(path, page); err != nil {
			return results, fmt.Errorf("write %s: %w", name, err)
		}

		res := FileResult{Name: name, Path: path, Records: len(page), Reported: sampled[i]}
		results = append(results, res)

		if res.Reported && w.Progress != nil {
			w.Progress(res)
		}
	}

	return results, nil
}

// writeDocument writes records to path as UTF-8 JSON. Non-ASCII text and
// HTML characters are written literally.
func writeDocument(path string, records []history.VisitRecord) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(document{Records: records}); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
