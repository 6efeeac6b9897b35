package conf

import (
	"errors"
	"fmt"
	"log/slog"

	filefetcher "github.com/0xalexb/hjarta-conf/fetcher/file"

	"go.uber.org/multierr"
)

// Parser defines an interface for lowering raw configuration data into
// a flat record stream. Implementations never fail: every problem in
// the input becomes a Diagnostic and parsing continues, so callers see
// all problems at once.
//
// The built-in LineParser handles the native format; parser/yaml and
// parser/toml provide alternate frontends.
type Parser interface {
	Parse(data []byte) (records []Record, diagnostics []Diagnostic)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// stringFetcher serves in-memory text, for NewFromString.
type stringFetcher string

func (s stringFetcher) Fetch() ([]byte, error) {
	return []byte(s), nil
}

// File is the caller-facing configuration surface. It ties a
// DataFetcher and a Parser to a lookup Tree and collects diagnostics
// across the load. Lookup methods are nil-safe before a load: they
// fall back to preloaded defaults.
//
// A File is not safe for concurrent mutation (Load, Reset, Preload),
// but once loaded the lookup surface is read-only and safe to share.
type File struct {
	fetcher DataFetcher
	parser  Parser

	defaults map[string][]string

	loaded      bool
	diagnostics []Diagnostic
	tree        *Tree
}

// New creates a File backed by the file at path. Nothing is read until
// Load is called.
func New(path string, opts ...Option) *File {
	opts = append([]Option{WithFetcher(filefetcher.NewFetcher(path))}, opts...)

	return newFile(opts)
}

// NewFromString creates a File backed by in-memory text.
func NewFromString(text string, opts ...Option) *File {
	opts = append([]Option{WithFetcher(stringFetcher(text))}, opts...)

	return newFile(opts)
}

func newFile(opts []Option) *File {
	file := &File{
		parser:   NewLineParser(),
		defaults: make(map[string][]string),
	}

	for _, apply := range opts {
		apply(file)
	}

	return file
}

// Load fetches and parses the configuration and builds the tree. It
// reports true when the load produced no diagnostics. A failed load
// still builds a tree from whatever parsed cleanly; callers must check
// Errors before trusting lookups. A successful load is sticky: calling
// Load again is a no-op until Reset.
func (f *File) Load() bool {
	if f.loaded {
		return true
	}

	f.diagnostics = nil

	data, err := f.fetcher.Fetch()
	if err != nil {
		f.diagnostics = append(f.diagnostics, Diagnostic{Line: 0, Message: fmt.Sprintf("cannot read config: %v", err)})

		return false
	}

	records, diagnostics := f.parser.Parse(data)
	f.diagnostics = diagnostics
	f.tree = NewTree(records)

	if len(diagnostics) > 0 {
		slog.Warn("config parsed with problems",
			slog.Int("records", len(records)),
			slog.Int("diagnostics", len(diagnostics)))

		return false
	}

	slog.Debug("config loaded", slog.Int("records", len(records)))

	f.loaded = true

	return true
}

// Reset unloads the file so the next Load re-reads the source.
// Preloaded defaults survive a reset.
func (f *File) Reset() {
	f.loaded = false
	f.diagnostics = nil
	f.tree = nil
}

// Errors returns the diagnostics collected by the last Load, in
// arrival order. It is empty iff the last load succeeded.
func (f *File) Errors() []Diagnostic {
	return f.diagnostics
}

// Err aggregates the diagnostics of the last Load into a single error,
// or nil when there are none.
func (f *File) Err() error {
	var err error

	for _, d := range f.diagnostics {
		err = multierr.Append(err, errors.New(d.String()))
	}

	return err
}

// Preload registers default values consulted only when a lookup
// misses. Parsed values always win; preloading never mutates the tree
// and may happen before or after Load.
func (f *File) Preload(defaults map[string]string) {
	for path, value := range defaults {
		if _, exists := f.defaults[path]; !exists {
			f.defaults[path] = []string{value}
		}
	}
}

// Lookup resolves a dotted path against the loaded tree, falling back
// to preloaded defaults on a miss.
func (f *File) Lookup(path string) Result {
	result := f.tree.Lookup(path)
	if result.Kind() != Absent {
		return result
	}

	if values, exists := f.defaults[path]; exists {
		kind := Value
		if len(values) > 1 {
			kind = List
		}

		return Result{kind: kind, values: values}
	}

	return result
}

// Get returns the first value at path and true, or "" and false when
// the path is absent or names a section.
func (f *File) Get(path string) (string, bool) {
	return f.Lookup(path).Value()
}

// GetDefault returns the first value at path, or def unchanged when
// the path cannot be resolved to a value.
func (f *File) GetDefault(path, def string) string {
	if value, ok := f.Get(path); ok {
		return value
	}

	return def
}

// GetList returns all values at path in file order, or an empty list
// when the path is absent or names a section.
func (f *File) GetList(path string) []string {
	return f.Lookup(path).Values()
}

// Sub returns the section at path, or nil when the path is absent or
// names a key. Lookups on the returned tree are relative to it and do
// not see preloaded defaults.
func (f *File) Sub(path string) *Tree {
	return f.tree.Sub(path)
}
