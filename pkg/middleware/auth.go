package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// AuthMiddleware barra rotas protegidas quando não há sessão ativa.
// Login, cadastro e healthcheck ficam de fora do bloqueio; todo o resto
// só responde com uma sessão autenticada.
func AuthMiddleware(session sessioning.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" || r.URL.Path == "/v1/register" {
				next.ServeHTTP(w, r)
				return
			}

			if !session.IsAuthenticated() {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
