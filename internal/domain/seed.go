package domain

import "github.com/shopspring/decimal"

// SeedProducts возвращает каталог, которым заполняется пустое хранилище при первом запуске.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Bolo de Chocolate Tradicional",
			Description: "Delicioso bolo de chocolate com cobertura cremosa, massa fofinha e recheio especial. Perfeito para aniversários e comemorações.",
			Price:       decimal.RequireFromString("45.90"),
			Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryBirthday,
			Active:      true,
		},
		{
			ID:          "2",
			Name:        "Torta de Morango Premium",
			Description: "Torta artesanal com morangos frescos, creme chantilly e massa crocante. Uma explosão de sabor e frescor.",
			Price:       decimal.RequireFromString("65.00"),
			Image:       "https://images.pexels.com/photos/1070850/pexels-photo-1070850.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryWedding,
			Active:      true,
		},
		{
			ID:          "3",
			Name:        "Brigadeiros Gourmet",
			Description: "Caixa com 12 brigadeiros artesanais em sabores variados: tradicional, beijinho, casadinho e pistache.",
			Price:       decimal.RequireFromString("28.50"),
			Image:       "https://images.pexels.com/photos/8828464/pexels-photo-8828464.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategorySweets,
			Active:      true,
		},
		{
			ID:          "4",
			Name:        "Bolo Diet de Cenoura",
			Description: "Bolo especial sem açúcar, feito com cenoura fresca e cobertura diet de chocolate. Sabor sem culpa.",
			Price:       decimal.RequireFromString("38.90"),
			Image:       "https://images.pexels.com/photos/6210745/pexels-photo-6210745.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryDiet,
			Active:      true,
		},
		{
			ID:          "5",
			Name:        "Torta Holandesa",
			Description: "Clássica torta holandesa com biscoito, creme de baunilha e cobertura de chocolate belga.",
			Price:       decimal.RequireFromString("55.00"),
			Image:       "https://images.pexels.com/photos/5490800/pexels-photo-5490800.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryWedding,
			Active:      true,
		},
		{
			ID:          "6",
			Name:        "Cupcakes Decorados",
			Description: "Kit com 6 cupcakes artesanais decorados à mão, sabores variados: baunilha, chocolate e morango.",
			Price:       decimal.RequireFromString("24.90"),
			Image:       "https://images.pexels.com/photos/1028714/pexels-photo-1028714.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryBirthday,
			Active:      true,
		},
		{
			ID:          "7",
			Name:        "Pavê de Chocolate",
			Description: "Tradicional pavê com camadas de biscoito champagne, creme de chocolate e cobertura especial.",
			Price:       decimal.RequireFromString("42.00"),
			Image:       "https://images.pexels.com/photos/806363/pexels-photo-806363.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategorySweets,
			Active:      true,
		},
		{
			ID:          "8",
			Name:        "Bolo Red Velvet",
			Description: "Sofisticado bolo red velvet com cream cheese, perfeito para ocasiões especiais.",
			Price:       decimal.RequireFromString("58.90"),
			Image:       "https://images.pexels.com/photos/4110463/pexels-photo-4110463.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    CategoryWedding,
			Active:      true,
		},
	}
}
