package dataset

import (
	"path"
	"strings"
	"sync"
)

// Keyed is implemented by every record that has a primary key.
type Keyed interface {
	Key() string
}

// Collection is a flat keyed collection backed by one JSON document holding an array.
// The document is parsed on first access and kept for the lifetime of the collection.
type Collection[T Keyed] struct {
	src  Source
	name string
	file string

	mu      sync.Mutex
	loaded  bool
	records []T
	index   map[string]int
}

// NewCollection creates a collection named name, backed by the document file.
func NewCollection[T Keyed](src Source, name, file string) *Collection[T] {
	return &Collection[T]{
		src:  src,
		name: name,
		file: file,
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// File returns the backing document name.
func (c *Collection[T]) File() string {
	return c.file
}

func (c *Collection[T]) load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}

	key := strings.TrimSuffix(path.Base(c.file), jsonExt)
	records, err := decodeDocument[[]T](c.src, "collection", key, c.file)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(records))
	for i, r := range records {
		// first occurrence wins; duplicates are reported by the integrity checks
		if _, exists := index[r.Key()]; !exists {
			index[r.Key()] = i
		}
	}

	c.records = records
	c.index = index
	c.loaded = true
	return nil
}

// All returns every record in on-file order.
// The returned slice is shared and must not be modified.
func (c *Collection[T]) All() ([]T, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return c.records, nil
}

// ByKey returns the record with the given key. The boolean is false when absent.
func (c *Collection[T]) ByKey(id string) (T, bool, error) {
	var zero T
	if err := c.load(); err != nil {
		return zero, false, err
	}
	i, ok := c.index[id]
	if !ok {
		return zero, false, nil
	}
	return c.records[i], true, nil
}

// Reload drops the parsed records so the next access re-reads the document.
func (c *Collection[T]) Reload() {
	c.mu.Lock()
	c.loaded = false
	c.records = nil
	c.index = nil
	c.mu.Unlock()
}

// Records returns every record as untyped values.
func (c *Collection[T]) Records() ([]any, error) {
	records, err := c.All()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out, nil
}

// Record returns one record as an untyped value.
func (c *Collection[T]) Record(id string) (any, bool, error) {
	r, ok, err := c.ByKey(id)
	if err != nil || !ok {
		return nil, ok, err
	}
	return r, true, nil
}

// Listing is the untyped view of a collection.
type Listing interface {
	Name() string
	Records() ([]any, error)
	Record(id string) (any, bool, error)
}
