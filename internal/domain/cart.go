package domain

import "github.com/shopspring/decimal"

// CartItem - позиция корзины. Товар хранится по значению,
// поэтому последующие правки каталога её не меняют.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal возвращает price × quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems возвращает сумму price × quantity по всем позициям.
func SumItems(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CountItems возвращает суммарное количество единиц товара.
func CountItems(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// CloneItems возвращает независимую копию списка позиций.
func CloneItems(items []CartItem) []CartItem {
	if items == nil {
		return []CartItem{}
	}
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
