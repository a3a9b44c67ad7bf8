package catalog

import (
	"errors"
	"fmt"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/feature/catalog/models"

	"go.uber.org/zap"
)

// ErrUnknownCollection reports a collection name the catalog does not serve.
var ErrUnknownCollection = errors.New("unknown collection")

// ErrReadOnly reports a write attempted while the server is read-only.
var ErrReadOnly = dataset.ErrReadOnly

// GameSummary is a game with its computed description.
type GameSummary struct {
	models.Game
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Service exposes catalog queries to the HTTP layer.
type Service struct {
	catalog  *Catalog
	logger   *zap.Logger
	readOnly bool
}

// NewService creates a new catalog service.
func NewService(catalog *Catalog, logger *zap.Logger, readOnly bool) *Service {
	return &Service{
		catalog:  catalog,
		logger:   logger,
		readOnly: readOnly,
	}
}

// Collections returns the served collection names.
func (s *Service) Collections() []string {
	return s.catalog.CollectionNames()
}

// List returns every record of the named collection.
func (s *Service) List(name string) ([]any, error) {
	l, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return l.Records()
}

// Get returns one record of the named collection.
func (s *Service) Get(name, id string) (any, bool, error) {
	l, ok := s.catalog.Lookup(name)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrUnknownCollection, name)
	}
	return l.Record(id)
}

// GameSets returns the top-level game sets with their descriptions.
func (s *Service) GameSets() ([]GameSummary, error) {
	sets, err := s.catalog.GameSets()
	if err != nil {
		return nil, err
	}
	out := make([]GameSummary, len(sets))
	for i, g := range sets {
		label := GameCategoryLabel(g)
		out[i] = GameSummary{Game: g, Category: label, Description: GameDescription(g, label)}
	}
	return out, nil
}

// BoxPresets returns the box presets of a variant grouped by game set.
func (s *Service) BoxPresets(variant string) ([]models.BoxPresetGroup, error) {
	return s.catalog.BoxPresets(variant)
}

// RegeneratePokemonIndex rewrites the pokemon index.
func (s *Service) RegeneratePokemonIndex() ([]string, error) {
	if s.readOnly {
		return nil, ErrReadOnly
	}
	return s.catalog.RegeneratePokemonIndex()
}
