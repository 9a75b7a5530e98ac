// Package scheduler contém os serviços de agendamento do recarregamento do dataset
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-insights-api/internal/config"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

// DatasetSeeder publica um novo dataset
type DatasetSeeder interface {
	Reseed(ctx context.Context) (*domain.Dataset, error)
}

// DashboardWarmer é o serviço de visões cujo cache é limpo e pré-aquecido após cada recarga
type DashboardWarmer interface {
	GetDashboard(ctx context.Context, filters domain.InsightFilters) (*domain.Dashboard, error)
	PurgeCache()
}

type DatasetReseedConfig struct {
	CronSchedule string
	WarmUpDays   int
	SyncEnabled  bool
}

// DatasetReseedService recarrega o dataset periodicamente e pré-calcula o
// dashboard padrão dos últimos dias
type DatasetReseedService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReseedConfig
	seeder              DatasetSeeder
	warmer              DashboardWarmer
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastVersion         string
	lastError           string
}

func NewDatasetReseedService(
	seeder DatasetSeeder,
	warmer DashboardWarmer,
	cfg *config.Config,
) *DatasetReseedService {
	reseedConfig := DatasetReseedConfig{
		CronSchedule: cfg.DatasetReseed.CronSchedule,
		WarmUpDays:   cfg.DatasetReseed.WarmUpDays,
		SyncEnabled:  cfg.DatasetReseed.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reseedConfig.CronSchedule,
		"warm_up_days":  reseedConfig.WarmUpDays,
		"sync_enabled":  reseedConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReseedService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reseedConfig,
		seeder:    seeder,
		warmer:    warmer,
		ctx:       context.Background(),
	}
}

func (s *DatasetReseedService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Reload(ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload recarrega o dataset, limpa o cache e pré-aquece o dashboard padrão.
// Uma recarga já em andamento faz a chamada retornar sem efeito.
func (s *DatasetReseedService) Reload(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	err := s.reload(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Recarga do dataset concluída")

	return nil
}

func (s *DatasetReseedService) reload(ctx context.Context) error {
	ds, err := s.seeder.Reseed(ctx)
	if err != nil {
		return fmt.Errorf("erro ao recarregar dataset: %w", err)
	}

	s.syncMutex.Lock()
	s.lastVersion = ds.Version
	s.syncMutex.Unlock()

	s.warmer.PurgeCache()

	filters, ok := s.warmUpFilters(ds)
	if !ok {
		logrus.Info("Dataset sem registros, pré-aquecimento ignorado")
		return nil
	}

	if _, err := s.warmer.GetDashboard(ctx, filters); err != nil {
		// o dataset novo já está publicado, apenas o cache fica frio
		logrus.WithError(err).Warn("Erro ao pré-aquecer o dashboard")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"dataset_version": ds.Version,
		"start_date":      filters.StartDate.Format(time.DateOnly),
		"end_date":        filters.EndDate.Format(time.DateOnly),
	}).Info("Dashboard padrão pré-aquecido")

	return nil
}

// warmUpFilters monta o filtro padrão: últimos WarmUpDays dias do dataset,
// todas as lojas e canais, com comparação
func (s *DatasetReseedService) warmUpFilters(ds *domain.Dataset) (domain.InsightFilters, bool) {
	_, lastDate := ds.DateRange()
	if lastDate.IsZero() || s.config.WarmUpDays <= 0 {
		return domain.InsightFilters{}, false
	}

	return domain.InsightFilters{
		StartDate: lastDate.AddDate(0, 0, -(s.config.WarmUpDays - 1)),
		EndDate:   lastDate,
		Compare:   true,
	}, true
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetReseedService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go func() {
		if err := s.Reload(s.ctx); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReseedService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"warm_up_days":           s.config.WarmUpDays,
		"sync_running":           s.syncRunning,
		"dataset_version":        s.lastVersion,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
