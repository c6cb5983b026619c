package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckout(t *testing.T) (*CheckoutUseCase, *CartUseCase, *OrderUseCase) {
	t.Helper()

	ctx := context.Background()
	store, _ := newTestStore(t)
	log := logger.NewDiscardLogger()

	cart := NewCartUC(ctx, store, log)
	orders := NewOrderUC(ctx, store, nil, log)

	return NewCheckoutUC(cart, orders, log), cart, orders
}

func TestCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	ctx := context.Background()
	checkout, cart, orders := newTestCheckout(t)

	require.NoError(t, cart.Add(ctx, testProduct("1", "45.90")))
	require.NoError(t, cart.Add(ctx, testProduct("1", "45.90")))
	require.NoError(t, cart.Add(ctx, testProduct("3", "28.50")))

	order, err := checkout.Checkout(ctx, NewPlaceOrderReq(testCustomer, domain.PaymentCredit))
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("120.30").Equal(order.Total))
	assert.Len(t, order.Items, 2)
	assert.Empty(t, cart.Items())
	assert.Len(t, orders.ListAll(), 1)
}

func TestCheckout_EmptyCart(t *testing.T) {
	checkout, _, orders := newTestCheckout(t)

	_, err := checkout.Checkout(context.Background(), NewPlaceOrderReq(testCustomer, domain.PaymentPix))
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Empty(t, orders.ListAll())
}

func TestCheckout_Validation(t *testing.T) {
	ctx := context.Background()
	checkout, cart, orders := newTestCheckout(t)
	require.NoError(t, cart.Add(ctx, testProduct("1", "1.00")))

	noCity := testCustomer
	noCity.Address.City = ""

	_, err := checkout.Checkout(ctx, NewPlaceOrderReq(noCity, domain.PaymentPix))
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = checkout.Checkout(ctx, NewPlaceOrderReq(testCustomer, domain.PaymentMethod("boleto")))
	assert.ErrorIs(t, err, e.ErrUnknownPaymentMethod)

	assert.Empty(t, orders.ListAll())
	assert.Len(t, cart.Items(), 1)
}
