package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(session sessioning.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := session.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func Register(session sessioning.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := session.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			handleSessionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(result)
	}
}

func Logout(session sessioning.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session.Logout()
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe revalida a sessão atual e retorna o perfil do usuário logado
func GetMe(session sessioning.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := session.Me(r.Context())
		if err != nil {
			handleSessionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// handleSessionError traduz o erro da camada de sessão para a resposta HTTP
func handleSessionError(w http.ResponseWriter, err error) {
	var sessionErr *sessioning.SessionError
	if errors.As(err, &sessionErr) {
		apiErrors.WriteError(w, sessionErr.Code, sessionErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a sessão", nil)
}
