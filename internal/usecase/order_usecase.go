package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase хранит историю заказов, новые заказы идут первыми.
// Заказы не удаляются, после создания меняется только статус.
type OrderUseCase struct {
	mu        sync.RWMutex
	orders    []domain.Order
	state     *StateStore
	publisher EventPublisher
	logger    logger.Logger
	newID     func() string
	now       func() time.Time
}

func NewOrderUC(ctx context.Context, state *StateStore, publisher EventPublisher, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:    ReadState(ctx, state, KeyOrders, []domain.Order{}),
		state:     state,
		publisher: publisher,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

func (o *OrderUseCase) ListAll() []domain.Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]domain.Order, len(o.orders))
	for i, order := range o.orders {
		out[i] = order.Clone()
	}

	return out
}

func (o *OrderUseCase) Get(id string) (domain.Order, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if idx := o.indexOf(id); idx >= 0 {
		return o.orders[idx].Clone(), true
	}

	return domain.Order{}, false
}

// Place фиксирует снимок позиций и итоговую сумму и создаёт заказ в статусе pending.
func (o *OrderUseCase) Place(ctx context.Context, customer domain.Customer, items []domain.CartItem, method domain.PaymentMethod) (domain.Order, error) {
	const op = "OrderUseCase.Place"

	o.mu.Lock()
	defer o.mu.Unlock()

	id := uniqueID(o.newID, func(id string) bool { return o.indexOf(id) >= 0 })
	order := domain.NewOrder(id, customer, items, method, o.now().UTC())

	next := make([]domain.Order, 0, len(o.orders)+1)
	next = append(next, order)
	next = append(next, o.orders...)

	if err := o.commit(ctx, next); err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}

	event := NewEvent(uuid.NewString(), EventOrderPlaced, order.ID, order.CreatedAt)
	event.Status = string(order.Status)
	event.Total = order.Total.StringFixed(2)
	publish(ctx, o.publisher, o.logger, event)

	o.logger.Infof("order placed, id: %s, total: %s", order.ID, order.Total.StringFixed(2))

	return order.Clone(), nil
}

// UpdateStatus меняет статус заказа. Допустим переход из любого статуса в любой,
// неизвестный ID игнорируется.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const op = "OrderUseCase.UpdateStatus"

	o.mu.Lock()
	defer o.mu.Unlock()

	idx := o.indexOf(id)
	if idx < 0 {
		o.logger.Debugf("status update skipped, order %s not found", id)
		return nil
	}

	next := make([]domain.Order, len(o.orders))
	copy(next, o.orders)
	next[idx].Status = status

	if err := o.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	event := NewEvent(uuid.NewString(), EventOrderStatusChanged, id, o.now().UTC())
	event.Status = string(status)
	publish(ctx, o.publisher, o.logger, event)

	return nil
}

func (o *OrderUseCase) commit(ctx context.Context, next []domain.Order) error {
	if err := o.state.Write(ctx, KeyOrders, next); err != nil {
		return err
	}
	o.orders = next

	return nil
}

func (o *OrderUseCase) indexOf(id string) int {
	for i, order := range o.orders {
		if order.ID == id {
			return i
		}
	}

	return -1
}
