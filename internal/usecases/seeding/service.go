// Package seeding mantém o dataset em memória usado pelas visões de análise
package seeding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-insights-api/infrastructure/repository"
	"github.com/vfg2006/store-insights-api/internal/domain"
	"github.com/vfg2006/store-insights-api/pkg/utils"
)

var ErrDatasetUnavailable = errors.New("dataset ainda não carregado")

type Seeder interface {
	Reseed(ctx context.Context) (*domain.Dataset, error)
	Current() (*domain.Dataset, error)
	Info() (*domain.DatasetInfo, error)
}

// Service troca o dataset atual de forma atômica; leitores em andamento
// continuam com a versão anterior até terminar.
type Service struct {
	repo    repository.DatasetRepository
	current atomic.Pointer[domain.Dataset]
	now     func() time.Time
}

func NewService(repo repository.DatasetRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Reseed carrega um novo dataset e o publica com uma nova versão
func (s *Service) Reseed(ctx context.Context) (*domain.Dataset, error) {
	startTime := s.now()

	ds, err := s.repo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar dataset")
	}

	if ds == nil {
		return nil, errors.New("repositório retornou dataset vazio")
	}

	version, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar versão do dataset")
	}

	// Cópia rasa: as coleções são somente leitura e podem ser compartilhadas,
	// mas a versão publicada não pode alterar o valor devolvido pelo repositório.
	published := *ds
	published.Version = version
	published.GeneratedAt = s.now().UTC()
	ds = &published

	previous := s.current.Swap(ds)

	fields := logrus.Fields{
		"dataset_version": ds.Version,
		"stores":          len(ds.Stores),
		"leads":           len(ds.Leads),
		"sales":           len(ds.Sales),
		"duration":        s.now().Sub(startTime).String(),
	}
	if previous != nil {
		fields["previous_version"] = previous.Version
	}
	logrus.WithFields(fields).Info("Dataset publicado")

	return ds, nil
}

func (s *Service) Current() (*domain.Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, ErrDatasetUnavailable
	}
	return ds, nil
}

func (s *Service) Info() (*domain.DatasetInfo, error) {
	ds, err := s.Current()
	if err != nil {
		return nil, err
	}

	info := ds.Info()
	return &info, nil
}
