package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/composing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type SidenavRequest struct {
	Open bool `json:"open"`
}

// GetFilters retorna o filtro de período vigente
func GetFilters(store *filtering.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Filters())
	}
}

// PutFilters substitui o filtro por inteiro; limites ausentes desativam o filtro
func PutFilters(store *filtering.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filters domain.DateRange
		if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if _, err := utils.ParseDate(filters.From); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use YYYY-MM-DD", nil)
			return
		}
		if _, err := utils.ParseDate(filters.To); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use YYYY-MM-DD", nil)
			return
		}

		store.SetFilters(filters)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(store.Filters())
	}
}

// GetLayout retorna o layout persistido, ou a grade padrão na sua ausência
func GetLayout(dashboard composing.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard.Layout())
	}
}

// PutLayout persiste a grade enviada por inteiro
func PutLayout(dashboard composing.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []domain.DashboardItem
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		dashboard.SaveLayout(items)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// DeleteLayout descarta o layout persistido e devolve a grade padrão
func DeleteLayout(dashboard composing.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard.ResetLayout())
	}
}

// GetSidenav retorna o estado persistido do menu lateral (aberto por padrão)
func GetSidenav(store *filtering.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SidenavRequest{Open: store.SidenavOpen(true)})
	}
}

// PutSidenav persiste o estado aberto/fechado do menu lateral
func PutSidenav(store *filtering.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SidenavRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		store.SetSidenavOpen(req.Open)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(req)
	}
}
