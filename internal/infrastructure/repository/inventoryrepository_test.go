package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehq/shopapi/internal/domain/inventory"
)

func TestInventoryRepository_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.createPart(t, "Brake pad", 24.5)
	require.NoError(t, p.UpdatePrice(0))
	require.NoError(t, f.parts.Update(ctx, p))

	got, err := f.parts.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Brake pad", got.Name())
	assert.Zero(t, got.Price())

	list, total, err := f.parts.List(ctx, inventory.ListFilter{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	require.NoError(t, f.parts.Delete(ctx, p.ID()))
	got, err = f.parts.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Nil(t, got)
}
