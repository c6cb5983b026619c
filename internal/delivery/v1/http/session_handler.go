package http

import (
	"net/http"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

type SessionHandler struct {
	nav    usecase.NavigatorUC
	logger logger.Logger
}

func NewSessionHandler(nav usecase.NavigatorUC, logger logger.Logger) *SessionHandler {
	return &SessionHandler{nav: nav, logger: logger}
}

// getView
//
//	@Summary		Текущий экран
//	@Description	view - запрошенный экран, screen - экран, который нужно показать
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	ViewResponse
//	@Router			/view [get]
func (h *SessionHandler) getView(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, NewViewResponse(h.nav))
}

// navigate
//
//	@Summary	Перейти на экран
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		NavigateRequest	true	"home, catalog, cart, checkout, admin, login"
//	@Success	200		{object}	ViewResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/view [put]
func (h *SessionHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.nav.Navigate(domain.View(req.View)); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewViewResponse(h.nav))
}

// login
//
//	@Summary	Вход в панель администратора
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Учётные данные"
//	@Success	200		{object}	ViewResponse
//	@Failure	401		{object}	ErrorResponse	"Неверный логин или пароль"
//	@Router		/session/login [post]
func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if !h.nav.Login(req.Username, req.Password) {
		WriteError(w, e.ErrInvalidCredentials)
		return
	}

	WriteSuccess(w, http.StatusOK, NewViewResponse(h.nav))
}

// logout
//
//	@Summary	Выход из панели администратора
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	ViewResponse
//	@Router		/session/logout [post]
func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.nav.Logout()
	WriteSuccess(w, http.StatusOK, NewViewResponse(h.nav))
}
