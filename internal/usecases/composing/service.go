// Package composing é a camada de composição do dashboard: junta o filtro
// atual com o conjunto de vendas via combine-latest, deriva as visões dos
// widgets e mantém o resultado como valor observável único.
package composing

import (
	"io"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
	"github.com/vfg2006/sales-dashboard-api/pkg/observable"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Dashboard interface {
	View() domain.DerivedView
	Subscribe(fn func(domain.DerivedView)) observable.Subscription
	Layout() []domain.DashboardItem
	SaveLayout(items []domain.DashboardItem)
	ResetLayout() []domain.DashboardItem
	ExportCSV(w io.Writer) error
	ExportFilename() string
	Close()
}

type Service struct {
	filters *filtering.Store
	sales   salesdata.SalesRepository

	view  *observable.Value[domain.DerivedView]
	unsub observable.Subscription
}

// NewService monta a composição. A junção só emite depois que o filtro e o
// conjunto de vendas emitiram pelo menos uma vez; como os dois stores
// entregam o valor atual na assinatura, a primeira visão sai na construção.
func NewService(filters *filtering.Store, sales salesdata.SalesRepository) Dashboard {
	s := &Service{
		filters: filters,
		sales:   sales,
		view:    observable.NewValue(domain.DerivedView{}),
	}

	s.unsub = observable.CombineLatest(
		filters.FilterValues(),
		salesValues(sales),
		func(filter domain.DateRange, rows []domain.SaleRecord) {
			s.view.Set(aggregating.Derive(rows, filter))
		},
	)

	return s
}

// salesValues adapta o repositório de vendas para a junção combine-latest.
func salesValues(sales salesdata.SalesRepository) *observable.Value[[]domain.SaleRecord] {
	value := observable.NewValue(sales.Rows())
	sales.Subscribe(func(rows []domain.SaleRecord) {
		value.Set(rows)
	})
	return value
}

// View retorna a última visão derivada publicada.
func (s *Service) View() domain.DerivedView {
	return s.view.Get()
}

// Subscribe registra um assinante da visão derivada, com replay do valor atual.
func (s *Service) Subscribe(fn func(domain.DerivedView)) observable.Subscription {
	return s.view.Subscribe(fn)
}

// DefaultLayout é a grade padrão do dashboard, usada quando não há layout
// persistido ou depois de um reset.
func DefaultLayout() []domain.DashboardItem {
	return []domain.DashboardItem{
		{Cols: 2, Rows: 1, Y: 0, X: 0, Label: "Total Sales"},
		{Cols: 4, Rows: 1, Y: 0, X: 2, Label: "Filter Bar"},
		{Cols: 3, Rows: 3, Y: 1, X: 0, Label: "Total Sales Chart"},
		{Cols: 3, Rows: 3, Y: 1, X: 3, Label: "Chart"},
		{Cols: 6, Rows: 3, Y: 4, X: 0, Label: "Table"},
	}
}

func (s *Service) Layout() []domain.DashboardItem {
	return s.filters.Layout(DefaultLayout())
}

func (s *Service) SaveLayout(items []domain.DashboardItem) {
	s.filters.SetLayout(items)
}

// ResetLayout descarta o layout persistido e devolve a grade padrão.
func (s *Service) ResetLayout() []domain.DashboardItem {
	s.filters.ResetLayout()
	return DefaultLayout()
}

// ExportCSV serializa a projeção tabular da visão atual, respeitando o
// filtro vigente no momento da exportação.
func (s *Service) ExportCSV(w io.Writer) error {
	return aggregating.WriteCSV(w, s.view.Get().Table)
}

// ExportFilename gera um nome único para o arquivo exportado.
func (s *Service) ExportFilename() string {
	id, err := utils.GenerateID()
	if err != nil {
		return "sales.csv"
	}
	return "sales_" + id + ".csv"
}

// Close cancela a assinatura da junção; a visão congela no último valor.
func (s *Service) Close() {
	s.unsub()
}
