package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// AdminHandler обслуживает панель администратора. Изменения по неизвестному
// ID не считаются ошибкой и отвечают 204, как и успешные.
type AdminHandler struct {
	catalog   usecase.CatalogUC
	orders    usecase.OrderUC
	dashboard usecase.DashboardUC
	logger    logger.Logger
}

func NewAdminHandler(catalog usecase.CatalogUC, orders usecase.OrderUC, dashboard usecase.DashboardUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{
		catalog:   catalog,
		orders:    orders,
		dashboard: dashboard,
		logger:    logger,
	}
}

// listProducts
//
//	@Summary	Все товары, включая скрытые
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/products [get]
func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewProductsResponse(h.catalog.ListAll()))
}

// createProduct
//
//	@Summary	Добавить товар
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Товар"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	401		{object}	ErrorResponse
//	@Router		/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	data, err := parseProductRequest(&req)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalog.Add(r.Context(), data)
	if err != nil {
		h.logger.Errorf(err, "failed to add product %s", data.Name)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// updateProduct
//
//	@Summary		Изменить товар
//	@Description	Если active не передан, сохраняется текущее значение
//	@Tags			admin
//	@Accept			json
//	@Param			id		path		string			true	"ID товара"
//	@Param			request	body		ProductRequest	true	"Товар"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		401	{object}	ErrorResponse
//	@Router			/admin/products/{id} [put]
func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	data, err := parseProductRequest(&req)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if current, ok := h.catalog.Get(id); ok && req.Active == nil {
		data.Active = current.Active
	}

	if err := h.catalog.Update(r.Context(), domain.NewProduct(id, data)); err != nil {
		h.logger.Errorf(err, "failed to update product %s", id)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteProduct
//
//	@Summary	Удалить товар
//	@Tags		admin
//	@Param		id	path	string	true	"ID товара"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		h.logger.Errorf(err, "failed to delete product %s", id)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toggleProduct
//
//	@Summary	Показать или скрыть товар
//	@Tags		admin
//	@Param		id	path	string	true	"ID товара"
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/products/{id}/toggle [post]
func (h *AdminHandler) toggleProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, ok := h.catalog.Get(id)
	if ok {
		if err := h.catalog.ToggleActive(r.Context(), product); err != nil {
			h.logger.Errorf(err, "failed to toggle product %s", id)
			WriteError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// listOrders
//
//	@Summary	Все заказы, новые первыми
//	@Tags		admin
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/orders [get]
func (h *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewOrdersResponse(h.orders.ListAll()))
}

// updateOrderStatus
//
//	@Summary		Изменить статус заказа
//	@Description	Допустим переход из любого статуса в любой
//	@Tags			admin
//	@Accept			json
//	@Param			id		path	string				true	"ID заказа"
//	@Param			request	body	UpdateStatusRequest	true	"pending, accepted, rejected, production, delivery, delivered"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/admin/orders/{id}/status [put]
func (h *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.IsKnown() {
		WriteError(w, e.ErrUnknownOrderStatus)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), id, status); err != nil {
		h.logger.Errorf(err, "failed to update order %s status", id)
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getDashboard
//
//	@Summary	Сводка для панели администратора
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	DashboardResponse
//	@Failure	401	{object}	ErrorResponse
//	@Router		/admin/dashboard [get]
func (h *AdminHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewDashboardResponse(h.dashboard.Stats()))
}

func parseProductRequest(req *ProductRequest) (domain.ProductData, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ProductData{}, e.ErrProductNameRequired
	}

	price, err := parsePrice(req.Price.String())
	if err != nil {
		return domain.ProductData{}, err
	}

	category := domain.Category(req.Category)
	if !category.IsKnown() {
		return domain.ProductData{}, e.Wrap(req.Category, e.ErrUnknownCategory)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return domain.ProductData{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		Image:       strings.TrimSpace(req.Image),
		Category:    category,
		Active:      active,
	}, nil
}
