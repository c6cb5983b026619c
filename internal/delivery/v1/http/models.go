package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
)

// REQUESTS

type ProductRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price" swaggertype:"string" example:"45.90"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
	Active      *bool       `json:"active"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type CheckoutRequest struct {
	Customer      domain.Customer `json:"customer"`
	PaymentMethod string          `json:"paymentMethod"`
}

type NavigateRequest struct {
	View string `json:"view"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RESPONSES

type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	Image         string `json:"image"`
	Category      string `json:"category"`
	CategoryLabel string `json:"categoryLabel"`
	Active        bool   `json:"active"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal string          `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total string             `json:"total"`
}

type OrderResponse struct {
	ID                 string             `json:"id"`
	Customer           domain.Customer    `json:"customer"`
	Items              []CartItemResponse `json:"items"`
	Total              string             `json:"total"`
	PaymentMethod      string             `json:"paymentMethod"`
	PaymentMethodLabel string             `json:"paymentMethodLabel"`
	Status             string             `json:"status"`
	StatusLabel        string             `json:"statusLabel"`
	CreatedAt          time.Time          `json:"createdAt"`
}

type ViewResponse struct {
	View   string `json:"view"`
	Screen string `json:"screen"`
	Admin  bool   `json:"admin"`
}

type DashboardResponse struct {
	TotalProducts  int             `json:"totalProducts"`
	ActiveProducts int             `json:"activeProducts"`
	TotalOrders    int             `json:"totalOrders"`
	PendingOrders  int             `json:"pendingOrders"`
	Revenue        string          `json:"revenue"`
	RecentOrders   []OrderResponse `json:"recentOrders"`
}

type ImageUploadResponse struct {
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url"`
}

// MAPPERS

func NewProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.StringFixed(2),
		Image:         p.Image,
		Category:      string(p.Category),
		CategoryLabel: p.Category.Label(),
		Active:        p.Active,
	}
}

func NewProductsResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}

func NewCartItemsResponse(items []domain.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, CartItemResponse{
			Product:  NewProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal().StringFixed(2),
		})
	}
	return out
}

func NewCartResponse(cart usecase.CartUC) CartResponse {
	return CartResponse{
		Items: NewCartItemsResponse(cart.Items()),
		Count: cart.Count(),
		Total: cart.Total().StringFixed(2),
	}
}

func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		Customer:           o.Customer,
		Items:              NewCartItemsResponse(o.Items),
		Total:              o.Total.StringFixed(2),
		PaymentMethod:      string(o.PaymentMethod),
		PaymentMethodLabel: o.PaymentMethod.Label(),
		Status:             string(o.Status),
		StatusLabel:        o.Status.Label(),
		CreatedAt:          o.CreatedAt,
	}
}

func NewOrdersResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}

func NewViewResponse(nav usecase.NavigatorUC) ViewResponse {
	return ViewResponse{
		View:   string(nav.Current()),
		Screen: string(nav.Screen()),
		Admin:  nav.IsAdmin(),
	}
}

func NewDashboardResponse(stats usecase.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalProducts:  stats.TotalProducts,
		ActiveProducts: stats.ActiveProducts,
		TotalOrders:    stats.TotalOrders,
		PendingOrders:  stats.PendingOrders,
		Revenue:        stats.Revenue.StringFixed(2),
		RecentOrders:   NewOrdersResponse(stats.RecentOrders),
	}
}
