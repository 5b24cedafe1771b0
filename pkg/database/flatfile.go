package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FlatFile is a whole-file store: reads return the full content and
// writes truncate and replace it.
type FlatFile struct {
	Path string
}

func NewFlatFile(path string) *FlatFile {
	return &FlatFile{Path: path}
}

// Exists reports whether the backing file is present.
func (f *FlatFile) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}

// Read returns the file content. A missing file yields os.ErrNotExist.
func (f *FlatFile) Read() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	return data, nil
}

// Write truncates the file and writes data. There is no temp-file swap,
// so a crash mid-write can leave a partial file.
func (f *FlatFile) Write(data []byte) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(f.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("cannot open %s for writing: %w", f.Path, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}

	return nil
}
