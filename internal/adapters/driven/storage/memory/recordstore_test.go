package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

func TestNewRecordStorage(t *testing.T) {
	store := NewRecordStorage()
	require.NotNil(t, store)
	assert.Equal(t, 0, store.Len())
}

func TestRecordStorage_AddAndGet(t *testing.T) {
	store := NewRecordStorage()
	ctx := context.Background()

	records := &domain.Records{
		Items: []domain.Record{{ID: "r1", DatasetID: "ds1"}},
		Total: 42,
	}

	err := store.Add(ctx, "ds1", records)
	require.NoError(t, err)

	got, err := store.Get(ctx, "ds1")
	require.NoError(t, err)
	assert.Equal(t, 42, got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "r1", got.Items[0].ID)
}

func TestRecordStorage_Add_ReplacesPreviousPage(t *testing.T) {
	store := NewRecordStorage()
	ctx := context.Background()

	first := &domain.Records{Items: []domain.Record{{ID: "r1"}, {ID: "r2"}}, Total: 2}
	second := &domain.Records{Items: []domain.Record{{ID: "r3"}}, Total: 9}

	require.NoError(t, store.Add(ctx, "ds1", first))
	require.NoError(t, store.Add(ctx, "ds1", second))

	got, err := store.Get(ctx, "ds1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "r3", got.Items[0].ID)
	assert.Equal(t, 9, got.Total)
}

func TestRecordStorage_Get_NotFound(t *testing.T) {
	store := NewRecordStorage()

	_, err := store.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStorage_Clear(t *testing.T) {
	store := NewRecordStorage()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "ds1", &domain.Records{Total: 1}))
	require.NoError(t, store.Clear(ctx, "ds1"))

	_, err := store.Get(ctx, "ds1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordStorage_DatasetsAreIndependent(t *testing.T) {
	store := NewRecordStorage()
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "ds1", &domain.Records{Total: 1}))
	require.NoError(t, store.Add(ctx, "ds2", &domain.Records{Total: 2}))

	require.NoError(t, store.Clear(ctx, "ds1"))

	got, err := store.Get(ctx, "ds2")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
}
