package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
)

// SalesSyncConfig representa a configuração do agendador de atualização de vendas
type SalesSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SalesSyncService gerencia o agendamento da atualização periódica dos dados
// de vendas, mantendo o conjunto observável fresco sem intervenção manual.
type SalesSyncService struct {
	scheduler *gocron.Scheduler
	config    SalesSyncConfig
	sales     salesdata.SalesRepository

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSalesSyncService cria uma nova instância do serviço de atualização de vendas
func NewSalesSyncService(sales salesdata.SalesRepository, appConfig *config.Config) *SalesSyncService {
	syncConfig := SalesSyncConfig{
		CronSchedule: appConfig.SalesSync.CronSchedule,
		SyncEnabled:  appConfig.SalesSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de vendas carregada")

	return &SalesSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		sales:     sales,
	}
}

// Start inicia o agendador
func (s *SalesSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização periódica de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSales(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SalesSyncService) syncSales(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de vendas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if err := s.sales.Refresh(ctx); err != nil {
		logrus.WithError(err).Error("Erro na atualização periódica de vendas")
		return
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Atualização periódica de vendas concluída")
}
