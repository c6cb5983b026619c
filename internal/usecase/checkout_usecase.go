package usecase

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

// CheckoutUseCase оформляет заказ из текущей корзины.
type CheckoutUseCase struct {
	cart   CartUC
	orders OrderUC
	logger logger.Logger
}

func NewCheckoutUC(cart CartUC, orders OrderUC, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		cart:   cart,
		orders: orders,
		logger: logger,
	}
}

// Checkout создаёт заказ из снимка корзины и очищает корзину.
// Если корзину очистить не удалось, заказ всё равно считается оформленным.
func (c *CheckoutUseCase) Checkout(ctx context.Context, req *PlaceOrderReq) (domain.Order, error) {
	const op = "CheckoutUseCase.Checkout"

	if err := validateCustomer(req.Customer); err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}
	if !req.PaymentMethod.IsKnown() {
		return domain.Order{}, e.Wrap(op, e.ErrUnknownPaymentMethod)
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return domain.Order{}, e.Wrap(op, e.ErrEmptyCart)
	}

	order, err := c.orders.Place(ctx, req.Customer, items, req.PaymentMethod)
	if err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}

	if err := c.cart.Clear(ctx); err != nil {
		c.logger.Errorf(e.Wrap(op, err), "failed to clear cart after order %s", order.ID)
	}

	return order, nil
}

func validateCustomer(c domain.Customer) error {
	if c.Name == "" || c.Phone == "" || c.Email == "" {
		return e.ErrMissingFields
	}

	a := c.Address
	if a.Street == "" || a.Number == "" || a.Neighborhood == "" || a.City == "" || a.ZipCode == "" {
		return e.ErrMissingFields
	}

	return nil
}
