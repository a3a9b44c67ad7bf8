package cmd

import (
	"context"
	"fmt"
	"time"

	"pokepc-dataset/core/config"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/logger"
	"pokepc-dataset/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	publishPrune bool
	publishDir   string
)

// publishCmd uploads a local dataset directory to the configured bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the local dataset to object storage",
	Long: `Copies every document of the local dataset directory into the configured
bucket under dataset.prefix, creating the bucket if needed. With --prune,
objects that no longer exist locally are deleted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		l, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		dir := publishDir
		if dir == "" {
			dir = cfg.Dataset.Dir
		}
		src, err := dataset.NewDirSource(dir)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		timeout := time.Duration(cfg.Storage.TimeoutSeconds) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		created, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			return err
		}
		if created {
			l.Info("Created bucket", zap.String("bucket", cfg.Storage.Bucket))
		}

		dst := dataset.NewBucketSource(client, cfg.Storage.Bucket, cfg.Dataset.Prefix, timeout)
		start := time.Now()
		n, err := dataset.Mirror(dst, src, l)
		if err != nil {
			return err
		}

		removed := 0
		if publishPrune {
			stale, err := dataset.Prune(dst, src, l)
			if err != nil {
				return fmt.Errorf("failed to prune: %w", err)
			}
			removed = len(stale)
		}

		l.Info("Dataset published",
			zap.String("from", src.Root()),
			zap.String("to", dst.Location("")),
			zap.Int("documents", n),
			zap.Int("pruned", removed),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)

	publishCmd.Flags().BoolVar(&publishPrune, "prune", false, "Delete bucket objects missing from the local dataset")
	publishCmd.Flags().StringVar(&publishDir, "dir", "", "Dataset directory (defaults to dataset.dir)")
}
