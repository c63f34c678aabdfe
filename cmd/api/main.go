package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/authapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/composing"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/salesdata"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/sessioning"
	"github.com/vfg2006/sales-dashboard-api/pkg/kvstore"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stateRepo := stateRepository(ctx, cfg.Database)
	state := kvstore.New(stateRepo)

	authClient := authapi.NewClient(cfg)
	salesClient := salesapi.NewClient(cfg)

	session := sessioning.NewService(authClient, state)
	store := filtering.NewStore(state)
	sales := salesdata.NewService(salesClient, session)
	dashboard := composing.NewService(store, sales)

	// Carga inicial: sem sessão restaurada o refresh falha e o conjunto
	// permanece vazio até o primeiro login seguido de refresh.
	if err := sales.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Carga inicial de vendas não concluída")
	}

	salesSyncService := scheduler.NewSalesSyncService(sales, cfg)
	if err := salesSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de vendas")
	} else {
		logrus.Info("Agendador de atualização de vendas iniciado com sucesso")
	}

	server, err := api.New(cfg, session, store, sales, dashboard)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// stateRepository conecta ao PostgreSQL; sem banco disponível o estado
// vive só em memória e o processo continua funcional, sem persistência.
func stateRepository(ctx context.Context, dbConfig config.Database) repository.StateRepository {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao conectar ao PostgreSQL, usando estado em memória")
		return repository.NewMemoryStateRepository()
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Warn("Erro ao testar conexão com PostgreSQL, usando estado em memória")
		return repository.NewMemoryStateRepository()
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return repository.NewStateRepository(conn)
}
