package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/dashboard"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := datasetSource(ctx, cfg)
	defer closeSource()

	store := repository.NewDatasetStore()
	ingestService := ingesting.NewService(source, store)

	// Carga inicial; datasets com erro ficam indisponíveis até a próxima recarga
	if err := ingestService.LoadAll(ctx, cfg.Dataset.Names); err != nil {
		logrus.WithError(err).Warn("Carga inicial de datasets terminou com erros")
	}

	chartService := charting.NewService(store)

	datasetReloadService := scheduler.NewDatasetReloadService(ingestService, cfg)
	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de datasets")
	} else {
		logrus.Info("Agendador de recarga de datasets iniciado com sucesso")
	}

	server, err := api.New(cfg, chartService, datasetReloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// datasetSource escolhe a origem dos datasets de acordo com DATASET_SOURCE
func datasetSource(ctx context.Context, cfg *config.Config) (ingesting.DatasetSource, func()) {
	logrus.WithField("source", cfg.Dataset.Source).Info("Origem de datasets selecionada")

	switch cfg.Dataset.Source {
	case config.SourceRemote:
		return dashboard.New(dashboardclient.NewClient(cfg.Remote)), func() {}
	case config.SourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		return repository.NewSalesRecordRepository(conn), func() { _ = conn.Close() }
	default:
		return datasource.NewFileSource(cfg.Dataset.Dir), func() {}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)).Fatal("Falha na inicialização")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
