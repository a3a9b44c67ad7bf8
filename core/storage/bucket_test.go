package storage_test

import (
	"context"
	"errors"
	"testing"

	"pokepc-dataset/core/storage"
	"pokepc-dataset/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "pokepc-dataset").Return(true, nil)

		created, err := storage.EnsureBucket(ctx, client, "pokepc-dataset", "")
		assert.NoError(t, err)
		assert.False(t, created)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "pokepc-dataset").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "pokepc-dataset", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		created, err := storage.EnsureBucket(ctx, client, "pokepc-dataset", "eu-west-1")
		assert.NoError(t, err)
		assert.True(t, created)
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "pokepc-dataset").Return(false, errors.New("denied"))

		_, err := storage.EnsureBucket(ctx, client, "pokepc-dataset", "")
		assert.ErrorContains(t, err, "failed to check bucket pokepc-dataset: denied")
	})

	t.Run("CreateFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "pokepc-dataset").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "pokepc-dataset", mock.Anything).Return(errors.New("quota"))

		_, err := storage.EnsureBucket(ctx, client, "pokepc-dataset", "")
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}
