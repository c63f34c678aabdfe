// Package aggregating é o pipeline de agregação derivada: funções puras que,
// a partir de (vendas, filtro), produzem as visões que alimentam os widgets.
// Entradas iguais produzem sempre saídas iguais por valor; nada aqui tem
// efeito colateral, o que permite memoizar o resultado se for preciso.
package aggregating

import (
	"sort"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FilterRows devolve o subconjunto de vendas dentro do período [From, To],
// inclusivo nas duas pontas, comparando datas de calendário e não strings.
// Com qualquer um dos limites ausente o filtro é desativado e todas as
// linhas passam.
func FilterRows(rows []domain.SaleRecord, r domain.DateRange) []domain.SaleRecord {
	from, to, ok := r.Bounds()
	if !ok {
		return rows
	}

	filtered := make([]domain.SaleRecord, 0, len(rows))
	for _, row := range rows {
		day, ok := row.Day()
		if !ok {
			continue
		}
		if day.Before(from) || day.After(to) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

// Total soma os valores do conjunto. Conjunto vazio soma zero.
func Total(rows []domain.SaleRecord) float64 {
	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	return total
}

// SeriesByDate agrupa as vendas por dia, somando os valores de cada data,
// e devolve a série ordenada ascendentemente. A ordenação lexical é segura
// porque as datas já estão normalizadas para YYYY-MM-DD.
func SeriesByDate(rows []domain.SaleRecord) []domain.SeriesPoint {
	byDate := make(map[string]float64)
	for _, row := range rows {
		byDate[row.Date] += row.Amount
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]domain.SeriesPoint, 0, len(dates))
	for _, date := range dates {
		series = append(series, domain.SeriesPoint{Date: date, Value: byDate[date]})
	}

	return series
}

// Cumulative devolve a série de total acumulado sobre a série diária.
func Cumulative(series []domain.SeriesPoint) []domain.SeriesPoint {
	cumulative := make([]domain.SeriesPoint, 0, len(series))

	var running float64
	for _, point := range series {
		running += point.Value
		cumulative = append(cumulative, domain.SeriesPoint{Date: point.Date, Value: running})
	}

	return cumulative
}

// BreakdownByCountry agrupa as vendas por país, somando os valores.
// A ordem das categorias não importa para a correção, apenas para exibição.
func BreakdownByCountry(rows []domain.SaleRecord) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, row := range rows {
		breakdown[row.Country] += row.Amount
	}
	return breakdown
}

// TableProjection achata cada venda em um registro pronto para exibição e
// devolve também o conjunto de colunas: a união dos campos presentes em
// todas as linhas do conjunto atual, na ordem em que aparecem.
func TableProjection(rows []domain.SaleRecord) ([]string, []domain.TableRow) {
	table := make([]domain.TableRow, 0, len(rows))
	for _, row := range rows {
		table = append(table, flatten(row))
	}

	return Columns(table), table
}

// Columns é a união das chaves vistas em todas as linhas, na ordem da
// primeira ocorrência. Recalculada sempre que o conjunto de entrada muda.
func Columns(table []domain.TableRow) []string {
	seen := make(map[string]bool)
	columns := make([]string, 0, 5)

	for _, row := range table {
		for _, key := range fieldOrder {
			if _, ok := row[key]; ok && !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	return columns
}

// fieldOrder fixa a ordem de exibição dos campos conhecidos
var fieldOrder = []string{"id", "date", "amount", "country", "user"}

func flatten(row domain.SaleRecord) domain.TableRow {
	flat := domain.TableRow{
		"id":     row.ID,
		"date":   row.Date,
		"amount": strconv.FormatFloat(row.Amount, 'f', -1, 64),
	}

	if row.Country != "" {
		flat["country"] = row.Country
	}
	if row.User != "" {
		flat["user"] = row.User
	}

	return flat
}

// Derive reúne todas as visões derivadas para o par (vendas, filtro).
func Derive(rows []domain.SaleRecord, r domain.DateRange) domain.DerivedView {
	filtered := FilterRows(rows, r)
	series := SeriesByDate(filtered)
	columns, table := TableProjection(filtered)

	return domain.DerivedView{
		Filters:          r,
		Rows:             filtered,
		TotalAmount:      Total(filtered),
		SeriesByDate:     series,
		CumulativeSeries: Cumulative(series),
		Breakdown:        BreakdownByCountry(filtered),
		TableColumns:     columns,
		Table:            table,
	}
}
