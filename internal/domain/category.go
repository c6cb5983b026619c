package domain

// Category - категория товара. Набор значений фиксирован, но хранится как строка.
type Category string

const (
	CategoryBirthday Category = "birthday"
	CategoryWedding  Category = "wedding"
	CategorySweets   Category = "sweets"
	CategoryDiet     Category = "diet"

	// CategoryAll - фильтр каталога без ограничения по категории.
	CategoryAll Category = "all"
)

var categoryLabels = map[Category]string{
	CategoryBirthday: "Aniversário",
	CategoryWedding:  "Casamento",
	CategorySweets:   "Doces",
	CategoryDiet:     "Diet",
}

// Categories возвращает известные категории в порядке отображения.
func Categories() []Category {
	return []Category{CategoryBirthday, CategoryWedding, CategorySweets, CategoryDiet}
}

// IsKnown сообщает, входит ли категория в фиксированный набор.
func (c Category) IsKnown() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label возвращает название категории для витрины, либо саму строку для неизвестных значений.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}
