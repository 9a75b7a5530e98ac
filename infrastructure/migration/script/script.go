package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-insights-api/infrastructure/generator"
	"github.com/vfg2006/store-insights-api/infrastructure/repository"
	"github.com/vfg2006/store-insights-api/internal/config"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

// Carga inicial do PostgreSQL: cria o schema e grava um dataset sintético
// com os mesmos parâmetros usados pela API (DATASET_*).
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao gerar identificador da carga")
	}
	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando script de carga do dataset...")

	cfg, err := config.NewConfig()
	if err != nil {
		logger.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	logger.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()
	logger.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		logger.WithError(err).Fatal("ERRO ao criar tabelas")
	}

	startTime := time.Now()

	ds, err := generator.New(generator.Config{
		Seed:         cfg.Dataset.Seed,
		HistoryDays:  cfg.Dataset.HistoryDays,
		Stores:       cfg.Dataset.Stores,
		RepsPerStore: cfg.Dataset.RepsPerStore,
		Products:     cfg.Dataset.Products,
		DailyLeads:   cfg.Dataset.DailyLeads,
		EndDate:      cfg.Dataset.EndDateParsed,
	}).Load(ctx)
	if err != nil {
		logger.WithError(err).Fatal("ERRO ao gerar dataset")
	}

	if err := repository.NewDatasetRepository(conn).Save(ctx, ds); err != nil {
		logger.WithError(err).Fatal("ERRO ao gravar dataset")
	}

	info := ds.Info()
	logger.WithFields(logrus.Fields{
		"stores":     info.Stores,
		"leads":      info.Leads,
		"sales":      info.Sales,
		"first_date": info.FirstDate,
		"last_date":  info.LastDate,
	}).Infof("Carga concluída em %v!", time.Since(startTime))
}
