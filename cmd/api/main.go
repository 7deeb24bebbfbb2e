package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/custom-dashboard-api/internal/api"
	"github.com/vfg2006/custom-dashboard-api/internal/config"
	"github.com/vfg2006/custom-dashboard-api/internal/querybuilder"
	"github.com/vfg2006/custom-dashboard-api/internal/scheduler"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/custom-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/custom-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoSync {
		if err := repository.SyncSchema(ctx, pgConn); err != nil {
			logrus.WithError(err).Fatal("Erro ao sincronizar o schema do banco")
		}
	}

	excelDataRepo := repository.NewExcelDataRepository(pgConn)
	dashboardConfigRepo := repository.NewDashboardConfigRepository(pgConn)

	builder := querybuilder.New(excelDataRepo, cfg.Dashboard.DateColumn)
	dashboardService := dashboarding.NewService(excelDataRepo, dashboardConfigRepo, builder, cfg.Dashboard.MaxPageSize)
	ingestService := ingesting.NewService(spreadsheet.NewExcelReader(), excelDataRepo)

	uploadCleanupService := scheduler.NewUploadCleanupService(cfg)
	if err := uploadCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de uploads")
	}

	server, err := api.New(
		cfg,
		pgConn,
		dashboardService,
		ingestService,
		uploadCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
