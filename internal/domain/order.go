package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod - способ оплаты заказа
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentPix    PaymentMethod = "pix"
	PaymentCash   PaymentMethod = "cash"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentCredit: "Cartão de Crédito",
	PaymentPix:    "PIX",
	PaymentCash:   "Dinheiro",
}

func (m PaymentMethod) IsKnown() bool {
	_, ok := paymentLabels[m]
	return ok
}

func (m PaymentMethod) Label() string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}

// OrderStatus - статус заказа. Переход возможен из любого статуса в любой.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusAccepted   OrderStatus = "accepted"
	StatusRejected   OrderStatus = "rejected"
	StatusProduction OrderStatus = "production"
	StatusDelivery   OrderStatus = "delivery"
	StatusDelivered  OrderStatus = "delivered"
)

var statusLabels = map[OrderStatus]string{
	StatusPending:    "Pendente",
	StatusAccepted:   "Aceito",
	StatusRejected:   "Recusado",
	StatusProduction: "Em Produção",
	StatusDelivery:   "Saiu para Entrega",
	StatusDelivered:  "Entregue",
}

// OrderStatuses возвращает статусы в порядке жизненного цикла заказа.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending, StatusAccepted, StatusRejected,
		StatusProduction, StatusDelivery, StatusDelivered,
	}
}

func (s OrderStatus) IsKnown() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Order описывает оформленный заказ. Позиции и итог фиксируются в момент оформления,
// после создания меняется только Status.
type Order struct {
	ID            string          `json:"id"`
	Customer      Customer        `json:"customer"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewOrder(id string, customer Customer, items []CartItem, method PaymentMethod, createdAt time.Time) Order {
	snapshot := CloneItems(items)

	return Order{
		ID:            id,
		Customer:      customer,
		Items:         snapshot,
		Total:         SumItems(snapshot),
		PaymentMethod: method,
		Status:        StatusPending,
		CreatedAt:     createdAt,
	}
}

// Clone возвращает копию заказа с собственным списком позиций.
func (o Order) Clone() Order {
	o.Items = CloneItems(o.Items)
	return o
}
