package domain

import "github.com/shopspring/decimal"

// Product описывает товар кондитерской
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"` // URI изображения
	Category    Category        `json:"category"`
	Active      bool            `json:"active"`
}

// ProductData - поля товара без идентификатора, из них создаётся новый Product.
type ProductData struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    Category
	Active      bool
}

func NewProduct(id string, data ProductData) Product {
	return Product{
		ID:          id,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.Image,
		Category:    data.Category,
		Active:      data.Active,
	}
}

// WithActive возвращает копию товара с заданным признаком активности.
func (p Product) WithActive(active bool) Product {
	p.Active = active
	return p
}
