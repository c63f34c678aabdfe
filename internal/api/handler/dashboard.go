package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/composing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// GetDashboard retorna a visão derivada atual: total, séries, breakdown e tabela
func GetDashboard(dashboard composing.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard.View()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// ExportDashboard devolve a projeção tabular da visão atual como CSV,
// respeitando o filtro vigente no momento da exportação.
func ExportDashboard(dashboard composing.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dashboard.ExportFilename()))

		if err := dashboard.ExportCSV(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar o dashboard")
		}
	}
}

// RefreshSales força a atualização imediata dos dados de vendas
func RefreshSales(sales salesdata.SalesRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sales.Refresh(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao atualizar os dados de vendas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao atualizar os dados de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"rows":              len(sales.Rows()),
			"last_refreshed_at": sales.LastRefreshedAt(),
		})
	}
}
