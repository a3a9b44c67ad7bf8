package dataset_test

import (
	"testing"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("Dir", func(t *testing.T) {
		dir := t.TempDir()
		src, err := dataset.Open(dataset.Config{Source: dataset.SourceDir, Dir: dir}, nil, "")
		require.NoError(t, err)
		assert.IsType(t, &dataset.DirSource{}, src)
	})

	t.Run("DirNotConfigured", func(t *testing.T) {
		_, err := dataset.Open(dataset.Config{Source: dataset.SourceDir}, nil, "")
		assert.Error(t, err)
	})

	t.Run("Bucket", func(t *testing.T) {
		src, err := dataset.Open(dataset.Config{Source: dataset.SourceBucket, Prefix: "v2"}, new(mocks.Client), "dex")
		require.NoError(t, err)
		assert.Equal(t, "s3://dex/v2/items.json", src.Location("items.json"))
	})

	t.Run("BucketWithoutClient", func(t *testing.T) {
		_, err := dataset.Open(dataset.Config{Source: dataset.SourceBucket}, nil, "dex")
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := dataset.Open(dataset.Config{Source: "ftp"}, nil, "")
		assert.ErrorContains(t, err, "unknown dataset source")
	})
}
