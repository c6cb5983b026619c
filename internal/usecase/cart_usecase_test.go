package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, price string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     "Produto " + id,
		Price:    decimal.RequireFromString(price),
		Category: domain.CategorySweets,
		Active:   true,
	}
}

func TestCart_AddSameProductTwiceMerges(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())

	p := testProduct("1", "45.90")
	require.NoError(t, cart.Add(ctx, p))
	require.NoError(t, cart.Add(ctx, p))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.Count())
}

func TestCart_SetQuantityNonPositiveRemoves(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())

	require.NoError(t, cart.Add(ctx, testProduct("1", "10.00")))
	require.NoError(t, cart.Add(ctx, testProduct("2", "10.00")))

	require.NoError(t, cart.SetQuantity(ctx, "1", 0))
	require.NoError(t, cart.SetQuantity(ctx, "2", -1))

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.Count())
}

func TestCart_SetQuantity(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())

	require.NoError(t, cart.Add(ctx, testProduct("1", "10.00")))
	require.NoError(t, cart.SetQuantity(ctx, "1", 5))
	require.NoError(t, cart.SetQuantity(ctx, "missing", 3))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCart_Total(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())

	require.NoError(t, cart.Add(ctx, testProduct("1", "45.90")))
	require.NoError(t, cart.Add(ctx, testProduct("1", "45.90")))
	require.NoError(t, cart.Add(ctx, testProduct("3", "28.50")))

	assert.True(t, decimal.RequireFromString("120.30").Equal(cart.Total()), cart.Total().String())
	assert.Equal(t, 3, cart.Count())
}

func TestCart_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())

	require.NoError(t, cart.Add(ctx, testProduct("1", "1.00")))
	require.NoError(t, cart.Add(ctx, testProduct("2", "1.00")))

	require.NoError(t, cart.Remove(ctx, "missing"))
	require.NoError(t, cart.Remove(ctx, "1"))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "2", cart.Items()[0].Product.ID)

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Items())
	assert.True(t, cart.Total().IsZero())
}

func TestCart_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	first := NewCartUC(ctx, store, logger.NewDiscardLogger())
	require.NoError(t, first.Add(ctx, testProduct("7", "42.00")))
	require.NoError(t, first.Add(ctx, testProduct("7", "42.00")))

	second := NewCartUC(ctx, store, logger.NewDiscardLogger())
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("84").Equal(second.Total()))
}

func TestCart_WriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())
	require.NoError(t, cart.Add(ctx, testProduct("1", "1.00")))

	repo.failPut = true
	assert.ErrorIs(t, cart.Add(ctx, testProduct("1", "1.00")), errBackendDown)
	assert.ErrorIs(t, cart.Clear(ctx), errBackendDown)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_ItemsIsDeepCopy(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	cart := NewCartUC(ctx, store, logger.NewDiscardLogger())
	require.NoError(t, cart.Add(ctx, testProduct("1", "1.00")))

	items := cart.Items()
	items[0].Quantity = 99
	items[0].Product.Name = "changed"

	got := cart.Items()
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, "Produto 1", got[0].Product.Name)
}
