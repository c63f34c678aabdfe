package domain

import "time"

// SaleRecord é uma venda normalizada, imutável depois de carregada.
// O conjunto completo de registros é a única fonte de verdade; a filtragem
// nunca altera o conjunto, apenas deriva visões a partir dele.
type SaleRecord struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"` // sempre normalizada para YYYY-MM-DD
	Amount  float64 `json:"amount"`
	Country string  `json:"country,omitempty"`
	User    string  `json:"user,omitempty"`
}

// Day retorna a data da venda como data de calendário.
// Registros com data inválida ficam fora de qualquer período filtrado.
func (s SaleRecord) Day() (time.Time, bool) {
	d, err := time.Parse(time.DateOnly, s.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
