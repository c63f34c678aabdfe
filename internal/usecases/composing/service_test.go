package composing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	salesMocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/mocks"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
	sessionMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/kvstore"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newFixture(t *testing.T) (*filtering.Store, salesdata.SalesRepository, *salesMocks.MockClient) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)

	state := kvstore.New(repository.NewMemoryStateRepository())
	filters := filtering.NewStore(state)

	client := salesMocks.NewMockClient(ctrl)
	session := sessionMocks.NewMockSessionStore(ctrl)
	session.EXPECT().Token().Return("token-abc").AnyTimes()

	return filters, salesdata.NewService(client, session), client
}

func stubSales(client *salesMocks.MockClient, rows ...salesapi.RawSaleRow) {
	client.EXPECT().FetchSales(gomock.Any(), "token-abc").Return(&salesapi.PagedResponse{Rows: rows}, nil)
}

func TestDashboardView(t *testing.T) {
	filters, sales, client := newFixture(t)
	stubSales(client,
		salesapi.RawSaleRow{ID: "1", Date: "2025-01-01", Total: 100.0},
		salesapi.RawSaleRow{ID: "2", Date: "2025-01-01", Total: 50.0},
		salesapi.RawSaleRow{ID: "3", Date: "2025-01-02", Total: 30.0},
	)

	dashboard := NewService(filters, sales)
	defer dashboard.Close()

	// Antes do primeiro Refresh a visão existe, com conjunto vazio
	assert.Equal(t, 0.0, dashboard.View().TotalAmount)

	assert.NoError(t, sales.Refresh(context.Background()))

	view := dashboard.View()
	assert.Equal(t, 180.0, view.TotalAmount)
	assert.Equal(t, []domain.SeriesPoint{
		{Date: "2025-01-01", Value: 150},
		{Date: "2025-01-02", Value: 30},
	}, view.SeriesByDate)
}

func TestDashboardView_ReactsToFilterChanges(t *testing.T) {
	filters, sales, client := newFixture(t)
	stubSales(client,
		salesapi.RawSaleRow{ID: "1", Date: "2025-01-01", Total: 100.0},
		salesapi.RawSaleRow{ID: "2", Date: "2025-01-02", Total: 30.0},
	)

	dashboard := NewService(filters, sales)
	defer dashboard.Close()

	assert.NoError(t, sales.Refresh(context.Background()))

	var totals []float64
	dashboard.Subscribe(func(view domain.DerivedView) {
		totals = append(totals, view.TotalAmount)
	})

	filters.SetFilters(domain.DateRange{From: "2025-01-01", To: "2025-01-01"})
	filters.SetFilters(domain.DateRange{})

	assert.Equal(t, []float64{130, 100, 130}, totals)
}

func TestLayout(t *testing.T) {
	filters, sales, client := newFixture(t)
	stubSales(client)

	dashboard := NewService(filters, sales)
	defer dashboard.Close()

	// Sem layout persistido vale a grade padrão
	assert.Equal(t, DefaultLayout(), dashboard.Layout())

	custom := []domain.DashboardItem{{Label: "Total Sales", Cols: 6, Rows: 2}}
	dashboard.SaveLayout(custom)
	assert.Equal(t, custom, dashboard.Layout())

	assert.Equal(t, DefaultLayout(), dashboard.ResetLayout())
	assert.Equal(t, DefaultLayout(), dashboard.Layout())
}

func TestExportCSV(t *testing.T) {
	filters, sales, client := newFixture(t)
	stubSales(client,
		salesapi.RawSaleRow{ID: "1", Date: "2025-01-01", Total: 100.0, Country: "Brasil", User: "maria"},
	)

	dashboard := NewService(filters, sales)
	defer dashboard.Close()

	assert.NoError(t, sales.Refresh(context.Background()))

	var out strings.Builder
	assert.NoError(t, dashboard.ExportCSV(&out))
	assert.Equal(t, "id,date,amount,country,user\n1,2025-01-01,100,Brasil,maria\n", out.String())

	filename := dashboard.ExportFilename()
	assert.Regexp(t, `^sales_[A-Za-z0-9]{6}\.csv$`, filename)
}

func TestClose_FreezesView(t *testing.T) {
	filters, sales, client := newFixture(t)
	stubSales(client,
		salesapi.RawSaleRow{ID: "1", Date: "2025-01-01", Total: 100.0},
	)

	dashboard := NewService(filters, sales)
	assert.NoError(t, sales.Refresh(context.Background()))
	assert.Equal(t, 100.0, dashboard.View().TotalAmount)

	dashboard.Close()
	filters.SetFilters(domain.DateRange{From: "2030-01-01", To: "2030-01-02"})

	assert.Equal(t, 100.0, dashboard.View().TotalAmount)
}
