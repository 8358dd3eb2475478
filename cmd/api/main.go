package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta"
	"github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/performance-forecast-api/infrastructure/repository"
	"github.com/vfg2006/performance-forecast-api/internal/api"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/internal/scheduler"
	"github.com/vfg2006/performance-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
	"github.com/vfg2006/performance-forecast-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.ConfigureLevel(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.Register(registry); err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar métricas")
	}

	var store forecasting.CampaignStore
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		store = repository.NewCampaignRepository(pgConn)
	} else {
		logrus.Info("Banco de dados desabilitado, previsões exigem campaignData no payload")
	}

	tokenManager := metaclient.NewTokenManager(cfg)
	defer tokenManager.Wait()

	var reachClient forecasting.ReachEstimateClient
	if cfg.Meta.HasCredentials() {
		reachClient = meta.New(cfg, metaclient.NewClient(cfg, tokenManager))
	} else {
		logrus.Info("Credenciais da Meta ausentes, usando estimativa heurística de alcance")
	}

	forecaster := forecasting.NewService(cfg, reachClient, store,
		forecasting.WithRecorder(metrics.NewPrometheusRecorder()),
	)

	tokenRefreshService := scheduler.NewTokenRefreshService(tokenManager, cfg)
	if err := tokenRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de renovação do token do Meta")
	}

	server, err := api.New(cfg, forecaster, registry, tokenRefreshService)
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
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
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
