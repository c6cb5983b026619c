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

func newTestCatalog(t *testing.T) (*CatalogUseCase, *flakyRepo, *recordingPublisher) {
	t.Helper()

	store, repo := newTestStore(t)
	pub := &recordingPublisher{}
	return NewCatalogUC(context.Background(), store, pub, logger.NewDiscardLogger()), repo, pub
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCatalog_SeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	c, repo, _ := newTestCatalog(t)

	all := c.ListAll()
	require.Len(t, all, 8)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, productIDs(all))

	raw, err := repo.Get(ctx, "bakery-products")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"1"`)

	for _, p := range all {
		require.NoError(t, c.Delete(ctx, p.ID))
	}

	assert.Empty(t, c.ListAll())
	raw, err = repo.Get(ctx, "bakery-products")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCatalog_LoadsPersistedProducts(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	stored := []domain.Product{{ID: "x", Name: "Torta", Price: decimal.RequireFromString("10.00"), Category: domain.CategorySweets, Active: true}}
	require.NoError(t, store.Write(ctx, KeyProducts, stored))

	c := NewCatalogUC(ctx, store, nil, logger.NewDiscardLogger())
	assert.Equal(t, []string{"x"}, productIDs(c.ListAll()))
}

func TestCatalog_PersistedEmptyCatalogIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	first, repo, _ := newTestCatalog(t)
	for _, p := range first.ListAll() {
		require.NoError(t, first.Delete(ctx, p.ID))
	}

	store := NewStateStore(repo, "bakery", logger.NewDiscardLogger())
	second := NewCatalogUC(ctx, store, nil, logger.NewDiscardLogger())

	assert.NotNil(t, second.ListAll())
	assert.Empty(t, second.ListAll())
	raw, err := repo.Get(ctx, "bakery-products")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCatalog_CorruptCatalogIsReseeded(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)
	require.NoError(t, repo.Put(ctx, "bakery-products", []byte("{broken")))

	c := NewCatalogUC(ctx, store, nil, logger.NewDiscardLogger())
	assert.Len(t, c.ListAll(), 8)
}

func TestCatalog_AddGeneratesUniqueID(t *testing.T) {
	ctx := context.Background()
	c, _, pub := newTestCatalog(t)
	c.newID = sequenceIDs("1", "2", "new-id")

	p, err := c.Add(ctx, domain.ProductData{
		Name:     "Brigadeiro",
		Price:    decimal.RequireFromString("3.50"),
		Category: domain.CategorySweets,
		Active:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "new-id", p.ID)
	assert.Len(t, c.ListAll(), 9)
	assert.Equal(t, "new-id", c.ListAll()[8].ID)
	assert.Equal(t, []EventType{EventProductCreated}, pub.types())
}

func TestCatalog_UpdateAndToggle(t *testing.T) {
	ctx := context.Background()
	c, _, pub := newTestCatalog(t)

	p, ok := c.Get("3")
	require.True(t, ok)

	p.Name = "Brigadeiros Gourmet (50 un)"
	require.NoError(t, c.Update(ctx, p))

	got, _ := c.Get("3")
	assert.Equal(t, "Brigadeiros Gourmet (50 un)", got.Name)

	require.NoError(t, c.ToggleActive(ctx, got))
	got, _ = c.Get("3")
	assert.False(t, got.Active)
	assert.NotContains(t, productIDs(c.ListActive()), "3")
	assert.Len(t, c.ListAll(), 8)

	assert.Equal(t, []EventType{EventProductUpdated, EventProductUpdated}, pub.types())
}

func TestCatalog_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	c, repo, pub := newTestCatalog(t)
	before := c.ListAll()

	require.NoError(t, c.Update(ctx, domain.Product{ID: "missing", Name: "X"}))
	require.NoError(t, c.Delete(ctx, "missing"))

	repo.failPut = true
	require.NoError(t, c.Update(ctx, domain.Product{ID: "missing"}))

	assert.Equal(t, productIDs(before), productIDs(c.ListAll()))
	assert.Empty(t, pub.types())
}

func TestCatalog_ListByCategory(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCatalog(t)

	assert.Equal(t, []string{"2", "5", "8"}, productIDs(c.ListByCategory(domain.CategoryWedding)))
	assert.Len(t, c.ListByCategory(domain.CategoryAll), 8)

	p, _ := c.Get("5")
	require.NoError(t, c.ToggleActive(ctx, p))
	assert.Equal(t, []string{"2", "8"}, productIDs(c.ListByCategory(domain.CategoryWedding)))
	assert.Empty(t, c.ListByCategory(domain.Category("vegan")))
}

func TestCatalog_Featured(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCatalog(t)

	p, _ := c.Get("2")
	require.NoError(t, c.ToggleActive(ctx, p))

	assert.Equal(t, []string{"1", "3", "4"}, productIDs(c.Featured(3)))
	assert.Len(t, c.Featured(100), 7)
	assert.Empty(t, c.Featured(0))
}

func TestCatalog_WriteFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	c, repo, pub := newTestCatalog(t)
	repo.failPut = true

	_, err := c.Add(ctx, domain.ProductData{Name: "Novo"})
	assert.ErrorIs(t, err, errBackendDown)

	err = c.Delete(ctx, "1")
	assert.ErrorIs(t, err, errBackendDown)

	assert.Len(t, c.ListAll(), 8)
	assert.Empty(t, pub.types())
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c, _, _ := newTestCatalog(t)

	all := c.ListAll()
	all[0].Name = "changed"

	got, _ := c.Get(all[0].ID)
	assert.NotEqual(t, "changed", got.Name)
}
