package integrity

import (
	"context"
	"sync"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/reconcile"
	"pokepc-dataset/feature/catalog"
	"pokepc-dataset/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrReadOnly reports an index fix attempted while the server is read-only.
var ErrReadOnly = dataset.ErrReadOnly

// Report is the combined outcome of every check. A check that could not run
// is absent and its error is listed under Errors.
type Report struct {
	Structure  *checks.StructureReport `json:"structure,omitempty"`
	Indices    []*reconcile.Plan       `json:"indices,omitempty"`
	Uniqueness *checks.Report          `json:"uniqueness,omitempty"`
	References *checks.Report          `json:"references,omitempty"`
	Errors     map[string]string       `json:"errors,omitempty"`
	OK         bool                    `json:"ok"`
}

// Service runs integrity checks over the catalog's dataset.
type Service struct {
	catalog  *catalog.Catalog
	logger   *zap.Logger
	readOnly bool
}

// NewService creates a new integrity service.
func NewService(cat *catalog.Catalog, logger *zap.Logger, readOnly bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:  cat,
		logger:   logger,
		readOnly: readOnly,
	}
}

// CheckStructure returns the required documents missing from the dataset.
func (s *Service) CheckStructure() (checks.StructureReport, error) {
	return checks.CheckStructure(s.catalog.Source(), s.catalog.Documents())
}

// Adapters returns one reconcile adapter per sharded collection.
func (s *Service) Adapters() []*checks.ShardAdapter {
	adapters := make([]*checks.ShardAdapter, len(catalog.Sharded))
	for i, sc := range catalog.Sharded {
		var derive checks.DeriveFunc
		if sc.Name == catalog.Pokemon {
			derive = checks.DerivePokemon
		}
		adapters[i] = checks.NewShardAdapter(s.catalog.Source(), sc.Name, sc.Index, sc.Dir, derive, s.logger)
	}
	return adapters
}

// CheckIndices reconciles every index against its shards.
func (s *Service) CheckIndices(ctx context.Context) ([]*reconcile.Plan, error) {
	return s.planIndices(ctx, reconcile.Options{})
}

// FixIndices rewrites every index that lists missing shards or misses present
// ones, then drops the catalog's cached data. It returns the plans and the
// number of edits applied.
func (s *Service) FixIndices(ctx context.Context) ([]*reconcile.Plan, int, error) {
	if s.readOnly {
		return nil, 0, ErrReadOnly
	}

	opts := reconcile.Options{DoFix: true, Confirmed: true}
	plans, err := s.planIndices(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	executed := 0
	for i, adapter := range s.Adapters() {
		n, err := reconcile.ApplyPlan(ctx, adapter, plans[i], opts)
		executed += n
		if err != nil {
			return plans, executed, err
		}
		if n > 0 {
			s.logger.Info("Rewrote index", zap.String("collection", adapter.Name()), zap.Int("edits", n))
		}
	}
	if executed > 0 {
		s.catalog.Reload()
	}
	return plans, executed, nil
}

func (s *Service) planIndices(ctx context.Context, opts reconcile.Options) ([]*reconcile.Plan, error) {
	adapters := s.Adapters()
	plans := make([]*reconcile.Plan, len(adapters))
	for i, adapter := range adapters {
		plan, err := reconcile.BuildPlan(ctx, adapter, opts)
		if err != nil {
			return nil, err
		}
		plans[i] = plan
	}
	return plans, nil
}

// CheckUniqueness reports duplicate ids and game name slugs in every collection.
func (s *Service) CheckUniqueness() (checks.Report, error) {
	names := s.catalog.CollectionNames()
	listings := make([]dataset.Listing, 0, len(names))
	for _, name := range names {
		if l, ok := s.catalog.Lookup(name); ok {
			listings = append(listings, l)
		}
	}
	return checks.CheckUniqueness(listings)
}

// CheckReferences reports cross-collection references that do not resolve.
func (s *Service) CheckReferences() (checks.Report, error) {
	var (
		d   checks.ReferenceData
		err error
	)
	if d.Pokemon, err = s.catalog.Pokemon(); err != nil {
		return checks.Report{}, err
	}
	if d.Games, err = s.catalog.Games(); err != nil {
		return checks.Report{}, err
	}
	if d.Pokedexes, err = s.catalog.Pokedexes(); err != nil {
		return checks.Report{}, err
	}
	if d.Abilities, err = s.catalog.Abilities(); err != nil {
		return checks.Report{}, err
	}
	if d.Regions, err = s.catalog.Regions(); err != nil {
		return checks.Report{}, err
	}
	if d.OriginMarks, err = s.catalog.OriginMarks(); err != nil {
		return checks.Report{}, err
	}
	return checks.CheckReferences(d), nil
}

// RunAll runs every check concurrently and combines the reports.
func (s *Service) RunAll(ctx context.Context) *Report {
	var (
		report Report
		mu     sync.Mutex
		g      errgroup.Group
	)
	fail := func(check string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if report.Errors == nil {
			report.Errors = make(map[string]string)
		}
		report.Errors[check] = err.Error()
		s.logger.Warn("Integrity check failed", zap.String("check", check), zap.Error(err))
	}

	g.Go(func() error {
		r, err := s.CheckStructure()
		if err != nil {
			fail("structure", err)
			return nil
		}
		report.Structure = &r
		return nil
	})
	g.Go(func() error {
		plans, err := s.CheckIndices(ctx)
		if err != nil {
			fail("indices", err)
			return nil
		}
		report.Indices = plans
		return nil
	})
	g.Go(func() error {
		r, err := s.CheckUniqueness()
		if err != nil {
			fail("uniqueness", err)
			return nil
		}
		report.Uniqueness = &r
		return nil
	})
	g.Go(func() error {
		r, err := s.CheckReferences()
		if err != nil {
			fail("references", err)
			return nil
		}
		report.References = &r
		return nil
	})
	_ = g.Wait()

	report.OK = report.ok()
	return &report
}

func (r *Report) ok() bool {
	if len(r.Errors) > 0 {
		return false
	}
	if r.Structure != nil && len(r.Structure.Missing) > 0 {
		return false
	}
	for _, p := range r.Indices {
		if !p.Summary.Consistent() {
			return false
		}
	}
	if r.Uniqueness != nil && !r.Uniqueness.OK() {
		return false
	}
	if r.References != nil && !r.References.OK() {
		return false
	}
	return true
}
