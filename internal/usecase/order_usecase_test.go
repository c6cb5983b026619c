package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCustomer = domain.Customer{
	Name:  "Ana Souza",
	Phone: "(11) 98888-7777",
	Email: "ana@example.com",
	Address: domain.Address{
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Jardim",
		City:         "Campinas",
		ZipCode:      "13000-000",
	},
}

func newTestOrders(t *testing.T) (*OrderUseCase, *flakyRepo, *recordingPublisher) {
	t.Helper()

	store, repo := newTestStore(t)
	pub := &recordingPublisher{}
	o := NewOrderUC(context.Background(), store, pub, logger.NewDiscardLogger())
	o.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.FixedZone("BRT", -3*3600)) }

	return o, repo, pub
}

func TestOrders_PlaceCreatesPendingOrder(t *testing.T) {
	ctx := context.Background()
	o, _, pub := newTestOrders(t)

	items := []domain.CartItem{
		{Product: testProduct("1", "45.90"), Quantity: 2},
		{Product: testProduct("3", "28.50"), Quantity: 1},
	}

	first, err := o.Place(ctx, testCustomer, items, domain.PaymentPix)
	require.NoError(t, err)
	second, err := o.Place(ctx, testCustomer, items, domain.PaymentCash)
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.StatusPending, first.Status)
	assert.True(t, decimal.RequireFromString("120.30").Equal(first.Total))
	assert.Equal(t, time.UTC, first.CreatedAt.Location())
	assert.Equal(t, 12, first.CreatedAt.Hour())

	all := o.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	require.Len(t, pub.events, 2)
	assert.Equal(t, EventOrderPlaced, pub.events[0].Type)
	assert.Equal(t, first.ID, pub.events[0].AggregateID)
	assert.Equal(t, "120.30", pub.events[0].Total)
	assert.Equal(t, "pending", pub.events[0].Status)
}

func TestOrders_SnapshotIsolatedFromLaterChanges(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	log := logger.NewDiscardLogger()

	catalog := NewCatalogUC(ctx, store, nil, log)
	cart := NewCartUC(ctx, store, log)
	orders := NewOrderUC(ctx, store, nil, log)

	p, _ := catalog.Get("1")
	require.NoError(t, cart.Add(ctx, p))

	order, err := orders.Place(ctx, testCustomer, cart.Items(), domain.PaymentCredit)
	require.NoError(t, err)

	p.Price = decimal.RequireFromString("99.99")
	p.Name = "Renamed"
	require.NoError(t, catalog.Update(ctx, p))
	require.NoError(t, cart.SetQuantity(ctx, "1", 7))

	got, ok := orders.Get(order.ID)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.Equal(t, "Bolo de Chocolate Tradicional", got.Items[0].Product.Name)
	assert.True(t, decimal.RequireFromString("45.90").Equal(got.Total))
}

func TestOrders_UpdateStatusChangesOnlyStatus(t *testing.T) {
	ctx := context.Background()
	o, _, pub := newTestOrders(t)

	placed, err := o.Place(ctx, testCustomer, []domain.CartItem{{Product: testProduct("1", "10.00"), Quantity: 1}}, domain.PaymentPix)
	require.NoError(t, err)

	require.NoError(t, o.UpdateStatus(ctx, placed.ID, domain.StatusDelivered))

	got, ok := o.Get(placed.ID)
	require.True(t, ok)
	assert.Equal(t, domain.StatusDelivered, got.Status)
	assert.Equal(t, placed.Customer, got.Customer)
	assert.Equal(t, placed.PaymentMethod, got.PaymentMethod)
	assert.True(t, placed.Total.Equal(got.Total))
	assert.True(t, placed.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, placed.Items, got.Items)

	require.NoError(t, o.UpdateStatus(ctx, placed.ID, domain.StatusPending))
	got, _ = o.Get(placed.ID)
	assert.Equal(t, domain.StatusPending, got.Status)

	assert.Equal(t, []EventType{EventOrderPlaced, EventOrderStatusChanged, EventOrderStatusChanged}, pub.types())
}

func TestOrders_UpdateStatusUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	o, _, pub := newTestOrders(t)

	require.NoError(t, o.UpdateStatus(ctx, "nonexistent", domain.StatusDelivered))
	assert.Empty(t, o.ListAll())
	assert.Empty(t, pub.types())

	_, ok := o.Get("nonexistent")
	assert.False(t, ok)
}

func TestOrders_PersistAcrossInstances(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	log := logger.NewDiscardLogger()

	first := NewOrderUC(ctx, store, nil, log)
	placed, err := first.Place(ctx, testCustomer, []domain.CartItem{{Product: testProduct("2", "65.00"), Quantity: 3}}, domain.PaymentCash)
	require.NoError(t, err)

	second := NewOrderUC(ctx, store, nil, log)
	got, ok := second.Get(placed.ID)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("195").Equal(got.Total))
	assert.Equal(t, domain.PaymentCash, got.PaymentMethod)
}

func TestOrders_WriteFailure(t *testing.T) {
	ctx := context.Background()
	o, repo, pub := newTestOrders(t)
	repo.failPut = true

	_, err := o.Place(ctx, testCustomer, []domain.CartItem{{Product: testProduct("1", "1.00"), Quantity: 1}}, domain.PaymentPix)
	assert.ErrorIs(t, err, errBackendDown)
	assert.Empty(t, o.ListAll())
	assert.Empty(t, pub.types())
}

func TestOrders_PublishFailureDoesNotFailPlacement(t *testing.T) {
	ctx := context.Background()
	o, _, pub := newTestOrders(t)
	pub.err = errBackendDown

	_, err := o.Place(ctx, testCustomer, []domain.CartItem{{Product: testProduct("1", "1.00"), Quantity: 1}}, domain.PaymentPix)
	require.NoError(t, err)
	assert.Len(t, o.ListAll(), 1)
}
