package usecase

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type CatalogUC interface {
	ListAll() []domain.Product
	ListActive() []domain.Product
	ListByCategory(category domain.Category) []domain.Product
	Featured(n int) []domain.Product
	Get(id string) (domain.Product, bool)
	Add(ctx context.Context, data domain.ProductData) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
	ToggleActive(ctx context.Context, product domain.Product) error
}

type CartUC interface {
	Items() []domain.CartItem
	Add(ctx context.Context, product domain.Product) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Count() int
	Total() decimal.Decimal
}

type OrderUC interface {
	ListAll() []domain.Order
	Get(id string) (domain.Order, bool)
	Place(ctx context.Context, customer domain.Customer, items []domain.CartItem, method domain.PaymentMethod) (domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type CheckoutUC interface {
	Checkout(ctx context.Context, req *PlaceOrderReq) (domain.Order, error)
}

type NavigatorUC interface {
	Navigate(view domain.View) error
	Current() domain.View
	Screen() domain.View
	Login(username, password string) bool
	Logout()
	IsAdmin() bool
}

type DashboardUC interface {
	Stats() DashboardStats
}

type ImageUC interface {
	UploadProductImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error)
}
