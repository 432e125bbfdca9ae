package ingesting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

type Service struct {
	source DatasetSource
	lister DatasetLister
	store  repository.DatasetStore
	now    func() time.Time
}

func NewService(source DatasetSource, store repository.DatasetStore) *Service {
	lister, _ := source.(DatasetLister)

	return &Service{
		source: source,
		lister: lister,
		store:  store,
		now:    time.Now,
	}
}

// Load busca, valida e publica o snapshot do dataset.
// Em caso de erro o snapshot anterior continua publicado.
func (s *Service) Load(ctx context.Context, name string) (*domain.Dataset, error) {
	raw, err := s.source.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceFetch, name, err)
	}

	dataset, err := Normalize(name, raw)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidDataset, name, err)
	}

	dataset.Version = utils.GenerateID()
	dataset.LoadedAt = s.now()

	s.store.Put(dataset)

	logrus.WithFields(logrus.Fields{
		"dataset": name,
		"version": dataset.Version,
		"records": len(dataset.Records),
	}).Info("ingesting: dataset carregado")

	return dataset, nil
}

// LoadAll carrega todos os datasets informados, seguindo mesmo quando algum falha.
// Se a origem lista seus datasets, os que não foram informados também são carregados.
func (s *Service) LoadAll(ctx context.Context, names []string) error {
	var errs []error

	for _, name := range s.datasetNames(ctx, names) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if _, err := s.Load(ctx, name); err != nil {
			logrus.WithError(err).WithField("dataset", name).Error("ingesting: erro ao carregar dataset, mantendo snapshot anterior")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Service) datasetNames(ctx context.Context, configured []string) []string {
	if s.lister == nil || ctx.Err() != nil {
		return configured
	}

	listed, err := s.lister.ListDatasets(ctx)
	if err != nil {
		logrus.WithError(err).Warn("ingesting: erro ao listar datasets da origem, usando apenas os configurados")
		return configured
	}

	names := make([]string, 0, len(configured)+len(listed))
	seen := make(map[string]struct{}, len(configured)+len(listed))
	for _, name := range append(append([]string{}, configured...), listed...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
