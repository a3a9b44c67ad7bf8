package dataset

import (
	"fmt"

	"go.uber.org/zap"
)

// RemovableSource is a source whose documents can be deleted.
type RemovableSource interface {
	Source
	Remove(names ...string) error
}

// Mirror copies every document of src into dst and returns the number of documents copied.
func Mirror(dst, src Source, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	copied := 0
	err := src.Walk(func(name string) error {
		data, err := src.ReadFile(name)
		if err != nil {
			return err
		}
		if err := dst.WriteFile(name, data); err != nil {
			return err
		}
		copied++
		logger.Debug("Mirrored document", zap.String("name", name), zap.String("to", dst.Location(name)))
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("mirror stopped after %d documents: %w", copied, err)
	}
	return copied, nil
}

// Prune deletes the documents of dst that src does not hold and returns their names.
func Prune(dst RemovableSource, src Source, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	keep := make(map[string]bool)
	if err := src.Walk(func(name string) error {
		keep[name] = true
		return nil
	}); err != nil {
		return nil, err
	}

	stale := []string{}
	if err := dst.Walk(func(name string) error {
		if !keep[name] {
			stale = append(stale, name)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := dst.Remove(stale...); err != nil {
		return nil, err
	}
	for _, name := range stale {
		logger.Info("Pruned document", zap.String("name", name), zap.String("at", dst.Location(name)))
	}
	return stale, nil
}
