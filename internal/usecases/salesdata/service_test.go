package salesdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	salesMocks "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	sessionMocks "github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning/mocks"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestRefresh(t *testing.T) {
	log.SetupTestLogger()

	type mocksStruct struct {
		client  *salesMocks.MockClient
		session *sessionMocks.MockSessionStore
	}

	tests := []struct {
		name     string
		setup    func(m mocksStruct)
		wantErr  bool
		validate func(t *testing.T, repo SalesRepository)
	}{
		{
			name: "Sucesso - publica o conjunto normalizado",
			setup: func(m mocksStruct) {
				m.session.EXPECT().Token().Return("token-abc")
				m.client.EXPECT().FetchSales(gomock.Any(), "token-abc").Return(&salesapi.PagedResponse{
					Rows: []salesapi.RawSaleRow{
						{ID: "s1", Date: "2025-01-01T10:30:00Z", Total: 100.0, Country: "Brasil"},
						{LegacyID: 42.0, Date: "2025-01-02", Amount: "30.5", User: "maria"},
					},
				}, nil)
			},
			validate: func(t *testing.T, repo SalesRepository) {
				rows := repo.Rows()
				assert.Equal(t, []domain.SaleRecord{
					{ID: "s1", Date: "2025-01-01", Amount: 100, Country: "Brasil"},
					{ID: "42", Date: "2025-01-02", Amount: 30.5, User: "maria"},
				}, rows)
				assert.False(t, repo.LastRefreshedAt().IsZero())
			},
		},
		{
			name: "Valor não numérico vira zero",
			setup: func(m mocksStruct) {
				m.session.EXPECT().Token().Return("token-abc")
				m.client.EXPECT().FetchSales(gomock.Any(), "token-abc").Return(&salesapi.PagedResponse{
					Rows: []salesapi.RawSaleRow{
						{ID: "s1", Date: "2025-01-01", Total: "n/a"},
					},
				}, nil)
			},
			validate: func(t *testing.T, repo SalesRepository) {
				assert.Equal(t, 0.0, repo.Rows()[0].Amount)
			},
		},
		{
			name: "Falha de transporte - conjunto anterior permanece",
			setup: func(m mocksStruct) {
				m.session.EXPECT().Token().Return("token-abc")
				m.client.EXPECT().FetchSales(gomock.Any(), "token-abc").Return(nil, &salesapi.StatusError{StatusCode: 0})
			},
			wantErr: true,
			validate: func(t *testing.T, repo SalesRepository) {
				assert.Empty(t, repo.Rows())
				assert.True(t, repo.LastRefreshedAt().IsZero())
			},
		},
		{
			name: "Resposta 401 encerra a sessão",
			setup: func(m mocksStruct) {
				m.session.EXPECT().Token().Return("token-velho")
				m.client.EXPECT().FetchSales(gomock.Any(), "token-velho").Return(nil, &salesapi.StatusError{StatusCode: 401})
				m.session.EXPECT().HandleUnauthorized()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocksStruct{
				client:  salesMocks.NewMockClient(ctrl),
				session: sessionMocks.NewMockSessionStore(ctrl),
			}
			tt.setup(m)

			repo := NewService(m.client, m.session)
			err := repo.Refresh(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.validate != nil {
				tt.validate(t, repo)
			}
		})
	}
}

func TestRefresh_NotifiesSubscribers(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := salesMocks.NewMockClient(ctrl)
	session := sessionMocks.NewMockSessionStore(ctrl)

	session.EXPECT().Token().Return("token-abc")
	client.EXPECT().FetchSales(gomock.Any(), "token-abc").Return(&salesapi.PagedResponse{
		Rows: []salesapi.RawSaleRow{{ID: "s1", Date: "2025-01-01", Total: 10.0}},
	}, nil)

	repo := NewService(client, session)

	var published [][]domain.SaleRecord
	repo.Subscribe(func(rows []domain.SaleRecord) {
		published = append(published, rows)
	})

	// O assinante recebe o conjunto vazio inicial e depois a atualização
	assert.Len(t, published, 1)
	assert.Empty(t, published[0])

	assert.NoError(t, repo.Refresh(context.Background()))
	assert.Len(t, published, 2)
	assert.Equal(t, "s1", published[1][0].ID)
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2025-01-01", normalizeDate("2025-01-01T23:59:00Z"))
	assert.Equal(t, "2025-01-01", normalizeDate("2025-01-01"))
	assert.Equal(t, "sem-data", normalizeDate("sem-data"))
}
