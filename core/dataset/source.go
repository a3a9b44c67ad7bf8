package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Source gives access to dataset documents by slash-separated name.
type Source interface {
	// ReadFile returns the content of the named document.
	// A missing document yields an error wrapping ErrNotFound.
	ReadFile(name string) ([]byte, error)

	// WriteFile replaces the content of the named document, creating parents as needed.
	WriteFile(name string, data []byte) error

	// Exists reports whether the named document is present.
	Exists(name string) (bool, error)

	// List returns the names of the JSON documents directly under dir, sorted,
	// relative to dir and without the ".json" extension.
	List(dir string) ([]string, error)

	// Walk calls fn with the name of every document in the source.
	Walk(fn func(name string) error) error

	// Location returns a human-readable location of the named document, used in errors.
	Location(name string) string
}

// DirSource reads documents from a local directory.
type DirSource struct {
	root string
}

// NewDirSource creates a source rooted at dir. The path is made absolute.
func NewDirSource(dir string) (*DirSource, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dataset directory %q: %w", dir, err)
	}
	return &DirSource{root: abs}, nil
}

// Root returns the absolute dataset directory.
func (s *DirSource) Root() string {
	return s.root
}

// Location returns the absolute file path of the named document.
func (s *DirSource) Location(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

// ReadFile reads the named document from disk.
func (s *DirSource) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Location(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// WriteFile writes the named document, creating parent directories.
func (s *DirSource) WriteFile(name string, data []byte) error {
	p := s.Location(name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Exists reports whether the named document is a regular file.
func (s *DirSource) Exists(name string) (bool, error) {
	info, err := os.Stat(s.Location(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// List returns the JSON document keys directly under dir.
func (s *DirSource) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(s.Location(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), jsonExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), jsonExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Walk visits every file under the root in lexical order.
func (s *DirSource) Walk(fn func(name string) error) error {
	return filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel))
	})
}

// Remove deletes the named documents. Missing documents are ignored.
func (s *DirSource) Remove(names ...string) error {
	for _, name := range names {
		if err := os.Remove(s.Location(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

const jsonExt = ".json"

// DocumentName joins a directory and a key into a document name ("pokemon/pikachu.json").
func DocumentName(dir, key string) string {
	return path.Join(dir, key+jsonExt)
}

// decodeDocument reads and parses a JSON document into a value of type T.
func decodeDocument[T any](src Source, kind, key, name string) (T, error) {
	var out T

	data, err := src.ReadFile(name)
	if err != nil {
		return out, &DocumentError{Kind: kind, Key: key, Path: src.Location(name), Err: err}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &DocumentError{
			Kind: kind,
			Key:  key,
			Path: src.Location(name),
			Err:  fmt.Errorf("%w: %v", ErrMalformed, err),
		}
	}
	return out, nil
}
