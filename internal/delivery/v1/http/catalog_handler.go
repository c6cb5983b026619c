package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const defaultFeaturedLimit = 3

type CatalogHandler struct {
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewCatalogHandler(catalog usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Возвращает активные товары, опционально отфильтрованные по категории
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"birthday, wedding, sweets, diet или all"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Неизвестная категория"
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && category != domain.CategoryAll && !category.IsKnown() {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrUnknownCategory.Error(), category)
		WriteError(w, e.ErrUnknownCategory)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductsResponse(h.catalog.ListByCategory(category)))
}

// featuredProducts
//
//	@Summary		Товары для главной страницы
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Количество товаров (по умолчанию 3)"
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/featured [get]
func (h *CatalogHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeaturedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, e.Wrap("limit", e.ErrStatusBadRequest))
			return
		}
		limit = n
	}

	WriteSuccess(w, http.StatusOK, NewProductsResponse(h.catalog.Featured(limit)))
}

// getProduct
//
//	@Summary		Товар по ID
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse	"Товар не найден или скрыт"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.catalog.Get(chi.URLParam(r, "id"))
	if !ok || !product.Active {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}
