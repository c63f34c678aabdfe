package domain

// SeriesPoint é um ponto da série temporal de vendas, agregado por dia.
type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// TableRow é um registro achatado, pronto para exibição no widget de tabela.
type TableRow map[string]string

// DerivedView reúne todas as visões derivadas que alimentam os widgets.
// É efêmera: recalculada a cada mudança de filtro ou de dados, nunca persistida.
// Entradas iguais (rows, filtro) produzem sempre visões iguais por valor.
type DerivedView struct {
	Filters          DateRange          `json:"filters"`
	Rows             []SaleRecord       `json:"rows"`
	TotalAmount      float64            `json:"total_amount"`
	SeriesByDate     []SeriesPoint      `json:"series_by_date"`
	CumulativeSeries []SeriesPoint      `json:"cumulative_series"`
	Breakdown        map[string]float64 `json:"breakdown"`
	TableColumns     []string           `json:"table_columns"`
	Table            []TableRow         `json:"table"`
}
