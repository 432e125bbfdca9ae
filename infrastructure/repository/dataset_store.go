package repository

import (
	"sort"
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// DatasetStore guarda o snapshot mais recente de cada dataset em memória.
// Snapshots são substituídos por inteiro e nunca alterados depois de publicados.
type DatasetStore interface {
	Get(name string) (*domain.Dataset, bool)
	Put(dataset *domain.Dataset)
	List() []*domain.Dataset
}

type datasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*domain.Dataset
}

func NewDatasetStore() DatasetStore {
	return &datasetStore{
		datasets: make(map[string]*domain.Dataset),
	}
}

func (s *datasetStore) Get(name string) (*domain.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dataset, ok := s.datasets[name]
	return dataset, ok
}

func (s *datasetStore) Put(dataset *domain.Dataset) {
	if dataset == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.datasets[dataset.Name] = dataset
}

// List retorna os snapshots ordenados pelo nome
func (s *datasetStore) List() []*domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	datasets := make([]*domain.Dataset, 0, len(s.datasets))
	for _, dataset := range s.datasets {
		datasets = append(datasets, dataset)
	}

	sort.Slice(datasets, func(i, j int) bool {
		return datasets[i].Name < datasets[j].Name
	})

	return datasets
}
