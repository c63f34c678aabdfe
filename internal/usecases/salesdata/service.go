// Package salesdata é o repositório de dados de vendas: mantém o conjunto
// atual de vendas normalizadas como valor observável e o atualiza sob
// demanda a partir do colaborador HTTP de vendas.
package salesdata

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"github.com/vfg2006/sales-dashboard-api/pkg/observable"
)

type SalesRepository interface {
	Rows() []domain.SaleRecord
	Subscribe(fn func([]domain.SaleRecord)) observable.Subscription
	Refresh(ctx context.Context) error
	LastRefreshedAt() time.Time
}

type Service struct {
	client  salesapi.Client
	session sessioning.SessionStore

	rows *observable.Value[[]domain.SaleRecord]

	mu              sync.Mutex
	lastRefreshedAt time.Time
}

// NewService cria o repositório com o conjunto inicial vazio. Os dados só
// chegam via Refresh; consumidores que assinam antes disso recebem o
// conjunto vazio e depois cada atualização.
func NewService(client salesapi.Client, session sessioning.SessionStore) SalesRepository {
	return &Service{
		client:  client,
		session: session,
		rows:    observable.NewValue([]domain.SaleRecord{}),
	}
}

func (s *Service) Rows() []domain.SaleRecord {
	return s.rows.Get()
}

func (s *Service) Subscribe(fn func([]domain.SaleRecord)) observable.Subscription {
	return s.rows.Subscribe(fn)
}

func (s *Service) LastRefreshedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRefreshedAt
}

// Refresh busca o conjunto completo de vendas e o publica de uma vez.
// Em caso de falha o conjunto anterior permanece intacto e o erro é
// devolvido ao chamador; uma resposta 401 derruba a sessão atual antes.
func (s *Service) Refresh(ctx context.Context) error {
	response, err := s.client.FetchSales(ctx, s.session.Token())
	if err != nil {
		var serr *salesapi.StatusError
		if errors.As(err, &serr) && serr.StatusCode == 401 {
			log.ForContext(ctx).Info("Colaborador de vendas rejeitou o token, encerrando a sessão")
			s.session.HandleUnauthorized()
		}
		return errors.Wrap(err, "erro ao atualizar os dados de vendas")
	}

	rows := make([]domain.SaleRecord, 0, len(response.Rows))
	for _, raw := range response.Rows {
		rows = append(rows, normalize(raw))
	}

	s.mu.Lock()
	s.lastRefreshedAt = time.Now()
	s.mu.Unlock()

	s.rows.Set(rows)

	log.ForContext(ctx).WithField("rows", len(rows)).Info("Dados de vendas atualizados")
	return nil
}
