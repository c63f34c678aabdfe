package aggregating

import (
	"encoding/csv"
	"io"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// WriteCSV serializa a projeção tabular como texto delimitado: a primeira
// linha traz os nomes dos campos do primeiro registro, e cada linha seguinte
// os valores na mesma ordem. Conjunto vazio produz saída vazia.
func WriteCSV(w io.Writer, table []domain.TableRow) error {
	if len(table) == 0 {
		return nil
	}

	columns := Columns(table[:1])

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range table {
		for i, column := range columns {
			record[i] = row[column]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
