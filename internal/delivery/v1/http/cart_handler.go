package http

import (
	"net/http"

	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cart    usecase.CartUC
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewCartHandler(cart usecase.CartUC, catalog usecase.CatalogUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, logger: logger}
}

// getCart
//
//	@Summary	Содержимое корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	CartResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cart))
}

// addItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Повторное добавление увеличивает количество на 1
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddToCartRequest	true	"ID товара"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ProductID == "" {
		WriteError(w, e.Wrap("productId", e.ErrMissingFields))
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok || !product.Active {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	if err := h.cart.Add(r.Context(), product); err != nil {
		h.logger.Errorf(err, "failed to add product %s to cart", product.ID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cart))
}

// setQuantity
//
//	@Summary		Изменить количество
//	@Description	Количество 0 или меньше удаляет позицию
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		string				true	"ID товара"
//	@Param			request		body		SetQuantityRequest	true	"Количество"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/items/{productId} [put]
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrInvalidQuantity))
		return
	}
	if req.Quantity == nil {
		WriteError(w, e.ErrInvalidQuantity)
		return
	}

	if err := h.cart.SetQuantity(r.Context(), chi.URLParam(r, "productId"), *req.Quantity); err != nil {
		h.logger.Errorf(err, "failed to set cart quantity")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cart))
}

// removeItem
//
//	@Summary	Удалить позицию из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		productId	path		string	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/items/{productId} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.Context(), chi.URLParam(r, "productId")); err != nil {
		h.logger.Errorf(err, "failed to remove cart item")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(h.cart))
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		cart
//	@Success	204
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.logger.Errorf(err, "failed to clear cart")
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
