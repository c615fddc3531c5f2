package repository_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdevrajsinh/totalenc/internal/domain"
	"github.com/rdevrajsinh/totalenc/internal/metrics"
	"github.com/rdevrajsinh/totalenc/internal/repository"
)

func storageCount(entity, op, result string) float64 {
	return testutil.ToFloat64(metrics.StorageOperationsTotal.WithLabelValues(repository.BackendMemory, entity, op, result))
}

func TestInstrumentedStore_RecordsResults(t *testing.T) {
	ctx := context.Background()
	s := repository.Instrument(repository.NewMemoryStore(repository.WithSeedData(false)))
	assert.Equal(t, repository.BackendMemory, s.Backend())

	created := storageCount("product", "create", metrics.ResultSuccess)
	conflict := storageCount("product", "create", metrics.ResultConflict)
	notFound := storageCount("product", "get", metrics.ResultNotFound)
	deleteMiss := storageCount("product", "delete", metrics.ResultNotFound)

	_, err := s.CreateProduct(ctx, domain.NewProduct{Name: "Box", Slug: "box", Description: "d"})
	require.NoError(t, err)
	_, err = s.CreateProduct(ctx, domain.NewProduct{Name: "Box", Slug: "box", Description: "d"})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)

	p, err := s.GetProduct(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)

	ok, err := s.DeleteProduct(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, created+1, storageCount("product", "create", metrics.ResultSuccess))
	assert.Equal(t, conflict+1, storageCount("product", "create", metrics.ResultConflict))
	assert.Equal(t, notFound+1, storageCount("product", "get", metrics.ResultNotFound))
	assert.Equal(t, deleteMiss+1, storageCount("product", "delete", metrics.ResultNotFound))
}

func TestInstrumentedStoreContract(t *testing.T) {
	runStoreContract(t, func(t *testing.T) repository.Store {
		return repository.Instrument(repository.NewMemoryStore(repository.WithSeedData(false)))
	})
}
