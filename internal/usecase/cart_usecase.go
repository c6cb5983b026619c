package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// CartUseCase владеет корзиной текущей сессии. Товар в корзине встречается
// не более одного раза, повторное добавление увеличивает количество.
type CartUseCase struct {
	mu     sync.RWMutex
	items  []domain.CartItem
	state  *StateStore
	logger logger.Logger
}

func NewCartUC(ctx context.Context, state *StateStore, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		items:  domain.CloneItems(ReadState(ctx, state, KeyCart, []domain.CartItem{})),
		state:  state,
		logger: logger,
	}
}

func (c *CartUseCase) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CloneItems(c.items)
}

// Add добавляет товар с количеством 1 или увеличивает количество на 1.
func (c *CartUseCase) Add(ctx context.Context, product domain.Product) error {
	const op = "CartUseCase.Add"

	c.mu.Lock()
	defer c.mu.Unlock()

	next := domain.CloneItems(c.items)
	if idx := c.indexOf(product.ID); idx >= 0 {
		next[idx].Quantity++
	} else {
		next = append(next, domain.CartItem{Product: product, Quantity: 1})
	}

	if err := c.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// SetQuantity задаёт количество позиции. Количество <= 0 удаляет позицию.
func (c *CartUseCase) SetQuantity(ctx context.Context, productID string, quantity int) error {
	const op = "CartUseCase.SetQuantity"

	if quantity <= 0 {
		return c.Remove(ctx, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(productID)
	if idx < 0 {
		return nil
	}

	next := domain.CloneItems(c.items)
	next[idx].Quantity = quantity

	if err := c.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) Remove(ctx context.Context, productID string) error {
	const op = "CartUseCase.Remove"

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(productID)
	if idx < 0 {
		return nil
	}

	next := make([]domain.CartItem, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)

	if err := c.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) Clear(ctx context.Context) error {
	const op = "CartUseCase.Clear"

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.commit(ctx, []domain.CartItem{}); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Count возвращает общее количество единиц товара в корзине.
func (c *CartUseCase) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CountItems(c.items)
}

func (c *CartUseCase) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.SumItems(c.items)
}

func (c *CartUseCase) commit(ctx context.Context, next []domain.CartItem) error {
	if err := c.state.Write(ctx, KeyCart, next); err != nil {
		return err
	}
	c.items = next

	return nil
}

func (c *CartUseCase) indexOf(productID string) int {
	for i, item := range c.items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}
