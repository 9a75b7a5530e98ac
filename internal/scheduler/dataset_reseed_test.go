package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-insights-api/infrastructure/generator"
	"github.com/vfg2006/store-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-insights-api/internal/analytics"
	"github.com/vfg2006/store-insights-api/internal/config"
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/store-insights-api/internal/usecases/seeding"
	"go.uber.org/mock/gomock"
)

func generated(t *testing.T) *domain.Dataset {
	t.Helper()

	ds, err := generator.New(generator.Config{
		Seed:         3,
		HistoryDays:  40,
		Stores:       2,
		RepsPerStore: 2,
		Products:     3,
		DailyLeads:   2,
		EndDate:      time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}).Generate()
	require.NoError(t, err)
	return ds
}

func emptyDataset(t *testing.T) *domain.Dataset {
	t.Helper()

	ds, err := domain.NewDataset(nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	return ds
}

type fixture struct {
	repo    *mocks.MockDatasetRepository
	seeder  *seeding.Service
	cache   *insighting.Cache
	service *DatasetReseedService
}

func newFixture(t *testing.T, ctrl *gomock.Controller, warmUpDays int) *fixture {
	t.Helper()

	repo := mocks.NewMockDatasetRepository(ctrl)
	seeder := seeding.NewService(repo)

	cache, err := insighting.NewCache(16)
	require.NoError(t, err)

	insights := insighting.NewService(seeder, cache, analytics.DefaultThresholds())

	cfg := &config.Config{
		DatasetReseed: config.DatasetReseed{
			CronSchedule: "0 3 * * *",
			WarmUpDays:   warmUpDays,
		},
	}

	return &fixture{
		repo:    repo,
		seeder:  seeder,
		cache:   cache,
		service: NewDatasetReseedService(seeder, insights, cfg),
	}
}

func TestDatasetReseedService_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		warmUpDays int
		setup      func(f *fixture)
		validate   func(t *testing.T, f *fixture, err error)
	}{
		{
			name:       "Recarga publica o dataset e pré-aquece o dashboard",
			warmUpDays: 30,
			setup: func(f *fixture) {
				f.repo.EXPECT().Load(gomock.Any()).Return(generated(t), nil)
			},
			validate: func(t *testing.T, f *fixture, err error) {
				require.NoError(t, err)

				ds, err := f.seeder.Current()
				require.NoError(t, err)

				status := f.service.GetStatus()
				assert.Equal(t, ds.Version, status["dataset_version"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, 1, f.cache.Len())

				warm := insighting.CacheKey(ds.Version, insighting.ViewDashboard, domain.InsightFilters{
					StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
					EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
					Compare:   true,
				})
				_, hit := insighting.Memoize(f.cache, warm, func() *domain.Dashboard { return nil })
				assert.True(t, hit)
			},
		},
		{
			name:       "Erro do repositório fica registrado no status",
			warmUpDays: 30,
			setup: func(f *fixture) {
				f.repo.EXPECT().Load(gomock.Any()).Return(nil, errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, f *fixture, err error) {
				require.Error(t, err)
				assert.Contains(t, f.service.GetStatus()["last_error"], "banco indisponível")
				assert.Equal(t, 0, f.cache.Len())

				_, err = f.seeder.Current()
				assert.ErrorIs(t, err, seeding.ErrDatasetUnavailable)
			},
		},
		{
			name:       "Dataset vazio não é pré-aquecido",
			warmUpDays: 30,
			setup: func(f *fixture) {
				f.repo.EXPECT().Load(gomock.Any()).Return(emptyDataset(t), nil)
			},
			validate: func(t *testing.T, f *fixture, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, f.cache.Len())
			},
		},
		{
			name:       "Pré-aquecimento desligado",
			warmUpDays: 0,
			setup: func(f *fixture) {
				f.repo.EXPECT().Load(gomock.Any()).Return(generated(t), nil)
			},
			validate: func(t *testing.T, f *fixture, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, f.cache.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, ctrl, tt.warmUpDays)
			tt.setup(f)

			err := f.service.Reload(context.Background())
			tt.validate(t, f, err)
		})
	}
}

func TestDatasetReseedService_ReloadPurgesPreviousVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, 7)
	f.repo.EXPECT().Load(gomock.Any()).Return(generated(t), nil).Times(2)

	require.NoError(t, f.service.Reload(context.Background()))
	first := f.service.GetStatus()["dataset_version"]

	require.NoError(t, f.service.Reload(context.Background()))
	second := f.service.GetStatus()["dataset_version"]

	assert.NotEqual(t, first, second)
	assert.Equal(t, 1, f.cache.Len())
}

func TestDatasetReseedService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, 30)

	err := f.service.Start(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, false, f.service.GetStatus()["sync_enabled"])
}

func TestDatasetReseedService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, 30)
	f.service.config.SyncEnabled = true
	f.service.config.CronSchedule = "cron inválida"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, f.service.Start(ctx))
}
