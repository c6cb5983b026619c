package http

import (
	"net/http"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUC
	logger   logger.Logger
}

func NewCheckoutHandler(checkout usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

// placeOrder
//
//	@Summary		Оформить заказ
//	@Description	Создаёт заказ из текущей корзины и очищает её
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	true	"Данные покупателя и способ оплаты (credit, pix, cash)"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или пустая корзина"
//	@Router			/checkout [post]
func (h *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.IsKnown() {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrUnknownPaymentMethod.Error(), req.PaymentMethod)
		WriteError(w, e.ErrUnknownPaymentMethod)
		return
	}

	order, err := h.checkout.Checkout(r.Context(), usecase.NewPlaceOrderReq(req.Customer, method))
	if err != nil {
		h.logger.Warnf("checkout failed: %v", err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}
