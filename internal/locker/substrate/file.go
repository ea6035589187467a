package substrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const snapshotFile = "locker.db"

// File stores the snapshot as a plain file in the data directory. Writes go
// through a temp file and rename so a crash mid-save leaves the previous
// snapshot intact.
type File struct {
	dir string
}

// NewFile creates a file substrate rooted at dir. It fails when the
// directory cannot be created or written to, which lets the probe fall
// through to the next substrate.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("file substrate: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return nil, fmt.Errorf("file substrate: %w", err)
	}
	os.Remove(probe)
	return &File{dir: dir}, nil
}

func (f *File) Name() string { return "file" }

func (f *File) Load(_ context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("file substrate: load: %w", err)
	}
	return data, true, nil
}

func (f *File) Save(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, snapshotFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("file substrate: save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("file substrate: save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file substrate: save: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path()); err != nil {
		return fmt.Errorf("file substrate: save: %w", err)
	}
	return nil
}

func (f *File) Drop(_ context.Context) error {
	err := os.Remove(f.path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file substrate: drop: %w", err)
	}
	return nil
}

func (f *File) path() string {
	return filepath.Join(f.dir, snapshotFile)
}
