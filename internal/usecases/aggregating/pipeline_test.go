package aggregating

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

func sampleRows() []domain.SaleRecord {
	return []domain.SaleRecord{
		{ID: "1", Date: "2025-01-01", Amount: 100, Country: "Brasil"},
		{ID: "2", Date: "2025-01-01", Amount: 50, Country: "Brasil"},
		{ID: "3", Date: "2025-01-02", Amount: 30, Country: "Chile"},
	}
}

func TestFilterRows(t *testing.T) {
	rows := []domain.SaleRecord{
		{ID: "1", Date: "2024-12-31", Amount: 10},
		{ID: "2", Date: "2025-01-01", Amount: 20},
		{ID: "3", Date: "2025-01-15", Amount: 30},
		{ID: "4", Date: "2025-02-01", Amount: 40},
	}

	tests := []struct {
		name     string
		filter   domain.DateRange
		expected []string
	}{
		{
			name:     "Sem limites - todas as linhas passam",
			filter:   domain.DateRange{},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "Apenas um limite - filtro desativado",
			filter:   domain.DateRange{From: "2025-01-01"},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "Período fechado - inclusivo nas duas pontas",
			filter:   domain.DateRange{From: "2025-01-01", To: "2025-01-15"},
			expected: []string{"2", "3"},
		},
		{
			name:     "Período cruzando a virada do ano",
			filter:   domain.DateRange{From: "2024-12-30", To: "2025-01-02"},
			expected: []string{"1", "2"},
		},
		{
			name:     "Período sem vendas",
			filter:   domain.DateRange{From: "2026-01-01", To: "2026-12-31"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterRows(rows, tt.filter)

			ids := make([]string, 0, len(filtered))
			for _, row := range filtered {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterRows_Idempotent(t *testing.T) {
	filter := domain.DateRange{From: "2025-01-01", To: "2025-01-01"}

	once := FilterRows(sampleRows(), filter)
	twice := FilterRows(once, filter)

	assert.Equal(t, once, twice)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 180.0, Total(sampleRows()))
	assert.Equal(t, 0.0, Total(nil))
}

func TestTotal_MatchesFilteredSum(t *testing.T) {
	filter := domain.DateRange{From: "2025-01-01", To: "2025-01-01"}
	filtered := FilterRows(sampleRows(), filter)

	var sum float64
	for _, row := range filtered {
		sum += row.Amount
	}
	assert.Equal(t, sum, Total(filtered))
	assert.Equal(t, 150.0, Total(filtered))
}

func TestSeriesByDate(t *testing.T) {
	series := SeriesByDate(sampleRows())

	// Agrupado por data, somado por bucket, ordenado ascendente
	assert.Equal(t, []domain.SeriesPoint{
		{Date: "2025-01-01", Value: 150},
		{Date: "2025-01-02", Value: 30},
	}, series)
}

func TestSeriesByDate_BucketsSumToTotal(t *testing.T) {
	series := SeriesByDate(sampleRows())

	var sum float64
	for _, point := range series {
		sum += point.Value
	}
	assert.Equal(t, Total(FilterRows(sampleRows(), domain.DateRange{})), sum)
}

func TestCumulative(t *testing.T) {
	cumulative := Cumulative(SeriesByDate(sampleRows()))

	assert.Equal(t, []domain.SeriesPoint{
		{Date: "2025-01-01", Value: 150},
		{Date: "2025-01-02", Value: 180},
	}, cumulative)
}

func TestBreakdownByCountry(t *testing.T) {
	breakdown := BreakdownByCountry(sampleRows())

	assert.Equal(t, map[string]float64{
		"Brasil": 150,
		"Chile":  30,
	}, breakdown)
}

func TestTableProjection_ColumnsAreUnionOfFields(t *testing.T) {
	rows := []domain.SaleRecord{
		{ID: "1", Date: "2025-01-01", Amount: 100},
		{ID: "2", Date: "2025-01-02", Amount: 50, Country: "Brasil", User: "Maria"},
	}

	columns, table := TableProjection(rows)

	// A primeira linha não tem country/user, mas a união inclui os dois
	assert.Equal(t, []string{"id", "date", "amount", "country", "user"}, columns)
	assert.Len(t, table, 2)
	assert.Equal(t, "100", table[0]["amount"])
	assert.Equal(t, "Maria", table[1]["user"])
}

func TestDerive_Deterministic(t *testing.T) {
	filter := domain.DateRange{From: "2025-01-01", To: "2025-01-02"}

	first := Derive(sampleRows(), filter)
	second := Derive(sampleRows(), filter)

	assert.Equal(t, first, second)
	assert.Equal(t, 180.0, first.TotalAmount)
}

func TestWriteCSV(t *testing.T) {
	_, table := TableProjection([]domain.SaleRecord{
		{ID: "1", Date: "2025-01-01", Amount: 100, Country: "Brasil", User: "Maria"},
		{ID: "2", Date: "2025-01-02", Amount: 50, Country: "Chile", User: "Pablo"},
	})

	var out strings.Builder
	assert.NoError(t, WriteCSV(&out, table))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"id,date,amount,country,user",
		"1,2025-01-01,100,Brasil,Maria",
		"2,2025-01-02,50,Chile,Pablo",
	}, lines)
}

func TestWriteCSV_EmptySet(t *testing.T) {
	var out strings.Builder
	assert.NoError(t, WriteCSV(&out, nil))
	assert.Empty(t, out.String())
}
