package http

import (
	"net/http"

	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
)

// requireAdmin пропускает запрос только при активной админ-сессии.
func requireAdmin(nav usecase.NavigatorUC) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !nav.IsAdmin() {
				WriteError(w, e.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
