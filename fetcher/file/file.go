package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements the conf.DataFetcher interface for file-based
// configuration. The path is cleaned at construction; the file itself
// is read on each Fetch.
type Fetcher struct {
	filepath string
}

// NewFetcher creates a Fetcher for the given path. The path is not
// checked until Fetch, so construction never fails.
func NewFetcher(fpath string) *Fetcher {
	return &Fetcher{filepath: filepath.Clean(fpath)}
}

// Fetch reads and returns the file contents. It returns an error if
// the file cannot be read or the path points to a directory.
func (f *Fetcher) Fetch() ([]byte, error) {
	stat, err := os.Stat(f.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", f.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", f.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(f.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", f.filepath, err)
	}

	return data, nil
}
