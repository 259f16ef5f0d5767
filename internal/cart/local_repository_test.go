package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dudhiya-app/internal/catalog"
	"dudhiya-app/internal/utils"
)

// memStore is an in-memory store.Store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

const owner = "guest:device-1"

func milkSnapshot() *catalog.ProductSnapshot {
	return &catalog.ProductSnapshot{
		ProductID: "prod-milk",
		Name:      "Full Cream Milk",
		MRP:       70,
		SalePrice: 66,
		Sizes: []catalog.Size{
			{ID: "s-500", MRP: 38, SalePrice: 35},
			{ID: "s-1000", MRP: 70, SalePrice: 64},
		},
	}
}

func TestLocalRepository_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("Repeated adds of the same variant merge into one item", func(t *testing.T) {
		repo := NewLocalRepository(newMemStore())

		c, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", Quantity: 2, Snapshot: milkSnapshot(),
		})
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.Equal(t, 2*66.0, c.SubTotal)

		// Merge does not need a snapshot again.
		c, err = repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", Quantity: 3,
		})
		require.NoError(t, err)
		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, 5, c.TotalItems)
	})

	t.Run("Different sizes are distinct items", func(t *testing.T) {
		repo := NewLocalRepository(newMemStore())

		_, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", SizeID: utils.StrPtr("s-500"),
			Quantity: 1, Snapshot: milkSnapshot(),
		})
		require.NoError(t, err)

		c, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", SizeID: utils.StrPtr("s-1000"),
			Quantity: 1, Snapshot: milkSnapshot(),
		})
		require.NoError(t, err)

		require.Len(t, c.Items, 2)
		assert.Equal(t, 35.0+64.0, c.SubTotal)
	})

	t.Run("New item without snapshot is rejected", func(t *testing.T) {
		repo := NewLocalRepository(newMemStore())

		_, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", Quantity: 1,
		})
		assert.ErrorIs(t, err, ErrSnapshotRequired)

		c, err := repo.Fetch(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("Zero quantity is rejected", func(t *testing.T) {
		repo := NewLocalRepository(newMemStore())

		_, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", Quantity: 0, Snapshot: milkSnapshot(),
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Size price resolved from snapshot", func(t *testing.T) {
		repo := NewLocalRepository(newMemStore())

		c, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", SizeID: utils.StrPtr("s-1000"),
			Quantity: 2, Snapshot: milkSnapshot(),
		})
		require.NoError(t, err)
		assert.Equal(t, 64.0, c.Items[0].UnitPrice)
		assert.Equal(t, 70.0, c.Items[0].OriginalUnitPrice)
		assert.Equal(t, 128.0, c.SubTotal)
	})
}

func TestLocalRepository_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*LocalRepository, string) {
		t.Helper()
		repo := NewLocalRepository(newMemStore())
		c, err := repo.Add(ctx, owner, AddItemParams{
			ProductID: "prod-milk", Quantity: 2, Snapshot: milkSnapshot(),
		})
		require.NoError(t, err)
		return repo, c.Items[0].ID
	}

	t.Run("Sets exact quantity", func(t *testing.T) {
		repo, itemID := seed(t)

		c, err := repo.Update(ctx, owner, itemID, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, c.Items[0].Quantity)
		assert.Equal(t, 7*66.0, c.SubTotal)
	})

	t.Run("Zero quantity removes the item", func(t *testing.T) {
		repo, itemID := seed(t)

		c, err := repo.Update(ctx, owner, itemID, 0)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Equal(t, 0.0, c.SubTotal)
	})

	t.Run("Negative quantity removes the item", func(t *testing.T) {
		repo, itemID := seed(t)

		c, err := repo.Update(ctx, owner, itemID, -5)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("Unknown item", func(t *testing.T) {
		repo, _ := seed(t)

		_, err := repo.Update(ctx, owner, "nope", 3)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestLocalRepository_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalRepository(newMemStore())

	c, err := repo.Add(ctx, owner, AddItemParams{
		ProductID: "prod-milk", Quantity: 2, Snapshot: milkSnapshot(),
	})
	require.NoError(t, err)
	itemID := c.Items[0].ID

	t.Run("Removes by id", func(t *testing.T) {
		c, err := repo.Remove(ctx, owner, itemID)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.Equal(t, 0, c.TotalItems)
	})

	t.Run("Unknown id leaves state intact", func(t *testing.T) {
		before, err := repo.Fetch(ctx, owner)
		require.NoError(t, err)

		_, err = repo.Remove(ctx, owner, "nope")
		assert.ErrorIs(t, err, ErrItemNotFound)

		after, err := repo.Fetch(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(before, after))
	})
}

func TestLocalRepository_Clear(t *testing.T) {
	ctx := context.Background()
	ms := newMemStore()
	repo := NewLocalRepository(ms)

	_, err := repo.Add(ctx, owner, AddItemParams{
		ProductID: "prod-milk", Quantity: 2, Snapshot: milkSnapshot(),
	})
	require.NoError(t, err)

	t.Run("Deletes the record outright", func(t *testing.T) {
		require.NoError(t, repo.Clear(ctx, owner))

		ms.mu.Lock()
		_, exists := ms.data[cartKey(owner)]
		ms.mu.Unlock()
		assert.False(t, exists)

		c, err := repo.Fetch(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
	})

	t.Run("Second clear is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Clear(ctx, owner))
	})
}

func TestLocalRepository_Count(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalRepository(newMemStore())

	count, err := repo.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.Add(ctx, owner, AddItemParams{
		ProductID: "prod-milk", Quantity: 2, Snapshot: milkSnapshot(),
	})
	require.NoError(t, err)
	_, err = repo.Add(ctx, owner, AddItemParams{
		ProductID: "prod-milk", SizeID: utils.StrPtr("s-500"),
		Quantity: 1, Snapshot: milkSnapshot(),
	})
	require.NoError(t, err)

	count, err = repo.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
