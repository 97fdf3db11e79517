package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_SeedOrder(t *testing.T) {
	repo := NewMemoryRepository(Seed())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, "FP00012345", orders[0].AWB)
	assert.Equal(t, "FP00012346", orders[1].AWB)
	assert.Equal(t, "FP00012347", orders[2].AWB)
}

func TestMemoryRepository_CreatePrepends(t *testing.T) {
	repo := NewMemoryRepository(Seed())

	o := Order{ID: "new", AWB: "FP555555", Service: "Fast Parcel Priority", Status: StatusBooked, CostCents: 24900, Origin: "Pune, IN", Destination: "Goa, IN", Date: "2025-10-10"}
	require.NoError(t, repo.Create(context.Background(), o))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 4)
	assert.Equal(t, "FP555555", orders[0].AWB)
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := NewMemoryRepository(Seed())

	o, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "FP00012346", o.AWB)
	assert.Equal(t, StatusInTransit, o.Status)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryRepository_Remove(t *testing.T) {
	repo := NewMemoryRepository(Seed())

	require.NoError(t, repo.Remove(context.Background(), "2"))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "FP00012345", orders[0].AWB)
	assert.Equal(t, "FP00012347", orders[1].AWB)

	assert.ErrorIs(t, repo.Remove(context.Background(), "2"), ErrOrderNotFound)
}

func TestMemoryRepository_ListReturnsSnapshot(t *testing.T) {
	repo := NewMemoryRepository(Seed())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	orders[0].AWB = "mutated"

	again, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FP00012345", again[0].AWB)
}
