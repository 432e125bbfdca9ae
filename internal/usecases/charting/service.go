package charting

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/aggregating"
)

// Charter é o que os handlers usam para montar gráficos e agregações
type Charter interface {
	Render(dataset string, kind domain.ChartKind, window domain.DateWindow) (domain.ChartState, error)
	Aggregate(dataset string, metric domain.AggregateMetric, partition domain.Partition, window domain.DateWindow) (domain.AggregateResult, error)
	Datasets() []domain.DatasetSummary
	RawDataset(name string) (*domain.RawDataset, error)
}

type Service struct {
	store repository.DatasetStore
	now   func() time.Time
}

func NewService(store repository.DatasetStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Render inicializa o gráfico e aplica a janela pedida
func (s *Service) Render(name string, kind domain.ChartKind, window domain.DateWindow) (domain.ChartState, error) {
	dataset, err := s.dataset(name)
	if err != nil {
		return domain.ChartState{}, err
	}

	chart, err := Initialize(kind, dataset, s.now())
	if err != nil {
		return domain.ChartState{}, err
	}

	switch {
	case window.IsAllTime():
		return chart.State(), nil
	case window.IsCustom():
		return chart.ApplyCustomWindow(window.CustomMonths), nil
	default:
		return chart.SelectWindow(window.Selector)
	}
}

// Aggregate calcula as séries por data sobre as vendas da janela
func (s *Service) Aggregate(name string, metric domain.AggregateMetric, partition domain.Partition, window domain.DateWindow) (domain.AggregateResult, error) {
	if !metric.IsValid() {
		return domain.AggregateResult{}, NewChartError(ErrInvalidMetric, name, string(metric))
	}
	if !partition.IsValid() {
		return domain.AggregateResult{}, NewChartError(ErrInvalidPartition, name, string(partition))
	}

	dataset, err := s.dataset(name)
	if err != nil {
		return domain.AggregateResult{}, err
	}

	records, err := aggregating.FilterByWindow(dataset.Records, window, s.now())
	if err != nil {
		return domain.AggregateResult{}, NewChartError(err, name, window.String())
	}

	logrus.WithFields(logrus.Fields{
		"dataset":   name,
		"metric":    metric,
		"partition": partition,
		"window":    window.String(),
		"records":   len(records),
	}).Debug("charting: agregação calculada")

	return aggregating.Aggregate(records, metric, partition), nil
}

// Datasets lista os snapshots carregados
func (s *Service) Datasets() []domain.DatasetSummary {
	datasets := s.store.List()

	summaries := make([]domain.DatasetSummary, 0, len(datasets))
	for _, dataset := range datasets {
		summaries = append(summaries, dataset.Summary())
	}
	return summaries
}

// RawDataset retorna o documento do dataset como foi carregado
func (s *Service) RawDataset(name string) (*domain.RawDataset, error) {
	dataset, err := s.dataset(name)
	if err != nil {
		return nil, err
	}
	return dataset.Raw, nil
}

func (s *Service) dataset(name string) (*domain.Dataset, error) {
	dataset, ok := s.store.Get(name)
	if !ok {
		return nil, NewChartError(ErrDatasetNotFound, name, name)
	}
	return dataset, nil
}
