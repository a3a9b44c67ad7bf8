package cmd

import (
	"fmt"

	"pokepc-dataset/core/cache"
	"pokepc-dataset/core/config"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/logger"
	"pokepc-dataset/core/storage"
	"pokepc-dataset/feature/catalog"

	"go.uber.org/zap"
)

// runtime is the dependency graph shared by every command.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   storage.Client
	source  dataset.Source
	cache   *cache.Cache
	catalog *catalog.Catalog
}

// bootstrap loads the configuration and opens the dataset.
// The storage client is only created when the dataset lives in a bucket.
func bootstrap() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var store storage.Client
	if cfg.Dataset.Source == dataset.SourceBucket {
		store, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	src, err := dataset.Open(cfg.Dataset, store, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	c := cache.New(cfg.Cache.TTL)
	return &runtime{
		cfg:     cfg,
		logger:  logg,
		store:   store,
		source:  src,
		cache:   c,
		catalog: catalog.New(src, c, logg),
	}, nil
}
