package pokemon

import (
	"errors"
	"time"

	"pokepc-dataset/core/cache"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/i18n"
	"pokepc-dataset/core/metrics"
	"pokepc-dataset/feature/catalog"

	"go.uber.org/zap"
)

// Service serves translated pokemon and searches over them.
type Service struct {
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new pokemon service. m may be nil.
func NewService(cat *catalog.Catalog, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog: cat,
		metrics: m,
		logger:  logger,
	}
}

// List returns every pokemon translated to lang, in index order.
// The list is cached per language.
func (s *Service) List(lang i18n.Code) ([]Translated, error) {
	return cache.Cached(s.catalog.Cache(), catalog.DerivedKeyPrefix+string(lang), func() ([]Translated, error) {
		all, err := s.catalog.Pokemon()
		if err != nil {
			var de *dataset.DocumentError
			if s.metrics != nil && errors.As(err, &de) {
				s.metrics.ObserveLoadError(de.Kind)
			}
			return nil, err
		}
		base := CreateSearchableList(all)
		out := make([]Translated, len(base))
		for i, p := range base {
			out[i] = Translate(p, lang)
		}
		s.logger.Debug("Built searchable pokemon list", zap.String("lang", string(lang)), zap.Int("total", len(out)))
		return out, nil
	})
}

// Search runs f over the list of f.Lang. The minimum query length is only
// enforced when f.RequiresQuery.
func (s *Service) Search(f Filter) (Result, error) {
	start := time.Now()
	if f.Lang == "" {
		f.Lang = i18n.Base
	}

	list, err := s.List(f.Lang)
	if err != nil {
		s.observe(start, Result{}, err)
		return Result{}, err
	}

	res := Search(list, f, f.RequiresQuery())
	s.observe(start, res, nil)
	return res, nil
}

// Get returns one pokemon translated to lang.
func (s *Service) Get(id string, lang i18n.Code) (Translated, bool, error) {
	list, err := s.List(lang)
	if err != nil {
		return Translated{}, false, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, true, nil
		}
	}
	return Translated{}, false, nil
}

// Name resolves the display names of one pokemon.
func (s *Service) Name(id, nickname string, lang i18n.Code) (NameInfo, bool, error) {
	p, ok, err := s.Get(id, lang)
	if err != nil || !ok {
		return NameInfo{}, ok, err
	}
	return ResolveName(p, nickname, ""), true, nil
}

func (s *Service) observe(start time.Time, res Result, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveSearch(time.Since(start), len(res.Records), res.Meta.Skipped, err)
}
