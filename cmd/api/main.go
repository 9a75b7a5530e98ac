package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-insights-api/infrastructure/generator"
	"github.com/vfg2006/store-insights-api/infrastructure/repository"
	"github.com/vfg2006/store-insights-api/internal/api"
	"github.com/vfg2006/store-insights-api/internal/config"
	"github.com/vfg2006/store-insights-api/internal/scheduler"
	"github.com/vfg2006/store-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/store-insights-api/internal/usecases/ranking"
	"github.com/vfg2006/store-insights-api/internal/usecases/seeding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRepo, closeRepo := datasetRepository(ctx, cfg)
	defer closeRepo()

	seeder := seeding.NewService(datasetRepo)

	cache, err := insighting.NewCache(cfg.Cache.Size)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar cache de visões")
	}

	thresholds := insighting.ThresholdsFromConfig(cfg.Thresholds)

	insightService := insighting.NewService(seeder, cache, thresholds)
	rankingService := ranking.NewStoreRankingService(seeder, cache, thresholds)

	datasetReseedService := scheduler.NewDatasetReseedService(seeder, insightService, cfg)

	// Carga inicial: a API só sobe com um dataset publicado
	if err := datasetReseedService.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	if err := datasetReseedService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		rankingService,
		seeder,
		datasetReseedService,
	)
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

// datasetRepository escolhe a origem do dataset conforme DATASET_SOURCE
func datasetRepository(ctx context.Context, cfg *config.Config) (repository.DatasetRepository, func()) {
	if cfg.Dataset.Source == config.DatasetSourcePostgres {
		conn := pgconn(ctx, cfg.Database)
		return repository.NewDatasetRepository(conn), func() { conn.Close() }
	}

	logrus.WithField("seed", cfg.Dataset.Seed).Info("Usando gerador sintético como origem do dataset")

	gen := generator.New(generator.Config{
		Seed:         cfg.Dataset.Seed,
		HistoryDays:  cfg.Dataset.HistoryDays,
		Stores:       cfg.Dataset.Stores,
		RepsPerStore: cfg.Dataset.RepsPerStore,
		Products:     cfg.Dataset.Products,
		DailyLeads:   cfg.Dataset.DailyLeads,
		EndDate:      cfg.Dataset.EndDateParsed,
	})
	return gen, func() {}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
