package usecase

import (
	"time"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// EVENTS

// EventType - тип доменного события.
type EventType string

const (
	EventOrderPlaced        EventType = "order.placed"
	EventOrderStatusChanged EventType = "order.status_changed"
	EventProductCreated     EventType = "product.created"
	EventProductUpdated     EventType = "product.updated"
	EventProductDeleted     EventType = "product.deleted"
)

// Event - уведомление об изменении каталога или заказа.
type Event struct {
	EventID     string    `json:"eventId"`
	Type        EventType `json:"type"`
	AggregateID string    `json:"aggregateId"`
	Status      string    `json:"status,omitempty"`
	Total       string    `json:"total,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// CHECKOUT

// PlaceOrderReq - данные формы оформления заказа.
type PlaceOrderReq struct {
	Customer      domain.Customer
	PaymentMethod domain.PaymentMethod
}

// DASHBOARD

// DashboardStats - сводка для админ-панели.
type DashboardStats struct {
	TotalProducts  int
	ActiveProducts int
	TotalOrders    int
	PendingOrders  int
	Revenue        decimal.Decimal // сумма доставленных заказов
	RecentOrders   []domain.Order
}

// IMAGES

// UploadImageReq - изображение, загруженное через multipart/form-data.
type UploadImageReq struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string // оригинальное имя файла (для логов)
}

// UploadImageRes - ключ объекта и публичный URL загруженного изображения.
type UploadImageRes struct {
	ObjectKey string
	URL       string
}

// MAPPERS

func NewEvent(id string, eventType EventType, aggregateID string, occurredAt time.Time) *Event {
	return &Event{
		EventID:     id,
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  occurredAt,
	}
}

func NewPlaceOrderReq(customer domain.Customer, method domain.PaymentMethod) *PlaceOrderReq {
	return &PlaceOrderReq{
		Customer:      customer,
		PaymentMethod: method,
	}
}

func NewUploadImageReq(data []byte, mimeType string, size int64, name string) *UploadImageReq {
	return &UploadImageReq{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageRes(objectKey, url string) *UploadImageRes {
	return &UploadImageRes{
		ObjectKey: objectKey,
		URL:       url,
	}
}
