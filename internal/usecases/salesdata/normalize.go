package salesdata

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// normalize converte a linha crua do backend para o registro canônico.
// O backend atual envia _id/date/total; fontes antigas enviam id/amount,
// então cada campo tem o seu fallback. Valores não numéricos viram zero
// para que uma linha suja não derrube o conjunto inteiro.
func normalize(raw salesapi.RawSaleRow) domain.SaleRecord {
	id := raw.ID
	if id == "" {
		id = asString(raw.LegacyID)
	}

	amount, ok := asFloat(raw.Total)
	if !ok {
		amount, _ = asFloat(raw.Amount)
	}

	return domain.SaleRecord{
		ID:      id,
		Date:    normalizeDate(raw.Date),
		Amount:  amount,
		Country: raw.Country,
		User:    raw.User,
	}
}

// normalizeDate reduz a data para o dia de calendário em YYYY-MM-DD.
// Timestamps ISO completos são truncados; formatos irreconhecíveis são
// mantidos como vieram, e a linha acaba ignorada pelos filtros por data.
func normalizeDate(value string) string {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(time.DateOnly)
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.Format(time.DateOnly)
	}

	return value
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
