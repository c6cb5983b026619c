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

// CatalogUseCase владеет списком товаров. Все изменения сначала сохраняются
// в StateStore и только после успешной записи становятся видны читателям.
type CatalogUseCase struct {
	mu        sync.RWMutex
	products  []domain.Product
	state     *StateStore
	publisher EventPublisher
	logger    logger.Logger
	newID     func() string
	now       func() time.Time
}

// NewCatalogUC загружает каталог из хранилища. Пустой каталог при загрузке
// заполняется фиксированным набором товаров.
func NewCatalogUC(ctx context.Context, state *StateStore, publisher EventPublisher, logger logger.Logger) *CatalogUseCase {
	c := &CatalogUseCase{
		state:     state,
		publisher: publisher,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
	c.load(ctx)

	return c
}

func (c *CatalogUseCase) load(ctx context.Context) {
	const op = "CatalogUseCase.load"

	products, ok := LookupState[[]domain.Product](ctx, c.state, KeyProducts)
	if !ok {
		products = domain.SeedProducts()
		if err := c.state.Write(ctx, KeyProducts, products); err != nil {
			c.logger.Warnf("failed to persist seed catalog: %v", e.Wrap(op, err))
		}
		c.logger.Infof("catalog seeded with %d products", len(products))
	}
	if products == nil {
		products = []domain.Product{}
	}

	c.products = products
}

func (c *CatalogUseCase) ListAll() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(domain.Product) bool { return true })
}

func (c *CatalogUseCase) ListActive() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter(func(p domain.Product) bool { return p.Active })
}

// ListByCategory возвращает активные товары категории. CategoryAll и пустая
// строка означают все активные товары.
func (c *CatalogUseCase) ListByCategory(category domain.Category) []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if category == domain.CategoryAll || category == "" {
		return c.filter(func(p domain.Product) bool { return p.Active })
	}

	return c.filter(func(p domain.Product) bool { return p.Active && p.Category == category })
}

// Featured возвращает первые n активных товаров для главной страницы.
func (c *CatalogUseCase) Featured(n int) []domain.Product {
	active := c.ListActive()
	if n < 0 {
		n = 0
	}
	if len(active) > n {
		active = active[:n]
	}

	return active
}

func (c *CatalogUseCase) Get(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}

	return domain.Product{}, false
}

func (c *CatalogUseCase) Add(ctx context.Context, data domain.ProductData) (domain.Product, error) {
	const op = "CatalogUseCase.Add"

	c.mu.Lock()
	defer c.mu.Unlock()

	id := uniqueID(c.newID, c.exists)
	product := domain.NewProduct(id, data)

	next := make([]domain.Product, 0, len(c.products)+1)
	next = append(next, c.products...)
	next = append(next, product)

	if err := c.commit(ctx, next); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	c.publishProduct(ctx, EventProductCreated, product.ID)
	c.logger.Infof("product added, id: %s, name: %s", product.ID, product.Name)

	return product, nil
}

// Update заменяет товар с тем же ID. Неизвестный ID игнорируется.
func (c *CatalogUseCase) Update(ctx context.Context, product domain.Product) error {
	const op = "CatalogUseCase.Update"

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(product.ID)
	if idx < 0 {
		c.logger.Debugf("update skipped, product %s not found", product.ID)
		return nil
	}

	next := make([]domain.Product, len(c.products))
	copy(next, c.products)
	next[idx] = product

	if err := c.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	c.publishProduct(ctx, EventProductUpdated, product.ID)

	return nil
}

// Delete удаляет товар. Неизвестный ID игнорируется.
func (c *CatalogUseCase) Delete(ctx context.Context, id string) error {
	const op = "CatalogUseCase.Delete"

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		c.logger.Debugf("delete skipped, product %s not found", id)
		return nil
	}

	next := make([]domain.Product, 0, len(c.products)-1)
	next = append(next, c.products[:idx]...)
	next = append(next, c.products[idx+1:]...)

	if err := c.commit(ctx, next); err != nil {
		return e.Wrap(op, err)
	}

	c.publishProduct(ctx, EventProductDeleted, id)
	c.logger.Infof("product deleted, id: %s", id)

	return nil
}

// ToggleActive сохраняет переданный товар с инвертированным признаком Active.
func (c *CatalogUseCase) ToggleActive(ctx context.Context, product domain.Product) error {
	return c.Update(ctx, product.WithActive(!product.Active))
}

func (c *CatalogUseCase) commit(ctx context.Context, next []domain.Product) error {
	if err := c.state.Write(ctx, KeyProducts, next); err != nil {
		return err
	}
	c.products = next

	return nil
}

func (c *CatalogUseCase) filter(keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

func (c *CatalogUseCase) indexOf(id string) int {
	for i, p := range c.products {
		if p.ID == id {
			return i
		}
	}

	return -1
}

func (c *CatalogUseCase) exists(id string) bool {
	return c.indexOf(id) >= 0
}

func (c *CatalogUseCase) publishProduct(ctx context.Context, eventType EventType, productID string) {
	publish(ctx, c.publisher, c.logger, NewEvent(uuid.NewString(), eventType, productID, c.now().UTC()))
}
