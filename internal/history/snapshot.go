package history

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Snapshot is a private copy of a History database. The browser keeps the
// live file locked while running, so all reads go through a copy.
type Snapshot struct {
	Path string
	Size int64
}

// NewSnapshot copies the database at src into dir under a name made of
// prefix and a random UUID. File mode and modification time are preserved.
// The caller must call Remove when done.
func NewSnapshot(src, dir, prefix string) (*Snapshot, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open source database: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source database: %w", err)
	}

	path := filepath.Join(dir, prefix+uuid.NewString()+".db")
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("copy database: %w", err)
	}

	if err := os.Chtimes(path, info.ModTime(), info.ModTime()); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("preserve modification time: %w", err)
	}

	return &Snapshot{Path: path, Size: n}, nil
}

// Remove deletes the snapshot file. Removing an already-deleted snapshot
// is not an error.
func (s *Snapshot) Remove() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}
