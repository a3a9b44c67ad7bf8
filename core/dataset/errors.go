package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a document absent from the source.
	ErrNotFound = errors.New("document not found")
	// ErrMalformed reports a document that is not valid JSON for the expected shape.
	ErrMalformed = errors.New("malformed document")
	// ErrReadOnly reports a write attempted while writes are disabled.
	ErrReadOnly = errors.New("dataset is read-only")
)

// DocumentError describes a document that could not be loaded.
type DocumentError struct {
	// Kind is the collection or document kind (e.g. "pokemon", "index").
	Kind string
	// Key is the record key or index name.
	Key string
	// Path is the resolved location of the document.
	Path string
	// Err is the underlying cause, wrapping ErrNotFound or ErrMalformed.
	Err error
}

func (e *DocumentError) Error() string {
	if errors.Is(e.Err, ErrNotFound) {
		return fmt.Sprintf("%s %s not found at %s", e.Kind, e.Key, e.Path)
	}
	return fmt.Sprintf("%s %s could not be loaded from %s: %v", e.Kind, e.Key, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err was caused by a missing document.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
