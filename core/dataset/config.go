package dataset

import (
	"fmt"
	"time"

	"pokepc-dataset/core/storage"
)

const (
	SourceDir    = "dir"
	SourceBucket = "bucket"
)

// Config locates the dataset documents.
type Config struct {
	// Dir is the dataset root directory when Source is "dir".
	Dir string `mapstructure:"dir" default:"./data"`
	// Source selects the backend (dir, bucket).
	Source string `mapstructure:"source" default:"dir"`
	// Prefix is the object key prefix when Source is "bucket".
	Prefix string `mapstructure:"prefix" default:""`
	// TimeoutSeconds bounds each bucket request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Open builds the configured source. client and bucket are only used by the bucket backend.
func Open(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceDir, "":
		if cfg.Dir == "" {
			return nil, fmt.Errorf("dataset directory is not configured")
		}
		return NewDirSource(cfg.Dir)
	case SourceBucket:
		if client == nil {
			return nil, fmt.Errorf("dataset source %q requires a storage client", cfg.Source)
		}
		return NewBucketSource(client, bucket, cfg.Prefix, time.Duration(cfg.TimeoutSeconds)*time.Second), nil
	default:
		return nil, fmt.Errorf("unknown dataset source %q", cfg.Source)
	}
}
