package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
)

var ErrReloadRunning = errors.New("recarga de datasets já em andamento")

// DatasetReloadConfig representa a configuração do agendador de recarga de datasets
type DatasetReloadConfig struct {
	CronSchedule string
	Datasets     []string
	SyncEnabled  bool
}

// DatasetReloadService recarrega os snapshots de datasets periodicamente
type DatasetReloadService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReloadConfig
	loader              ingesting.Loader
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetReloadService(loader ingesting.Loader, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.DatasetReload.CronSchedule,
		Datasets:     appConfig.Dataset.Names,
		SyncEnabled:  appConfig.DatasetReload.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"datasets":      reloadConfig.Datasets,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("scheduler: configuração da recarga de datasets carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		loader:    loader,
		baseCtx:   context.Background(),
	}
}

// Start agenda a recarga; o agendador para quando ctx é cancelado
func (s *DatasetReloadService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("scheduler: recarga de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: iniciando agendador de recarga de datasets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDatasets(ctx); err != nil && !errors.Is(err, ErrReloadRunning) {
			logrus.WithError(err).Warn("scheduler: recarga agendada terminou com erros")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de datasets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: parando agendador de recarga de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDatasets recarrega todos os datasets configurados.
// Execuções sobrepostas são descartadas com ErrReloadRunning.
func (s *DatasetReloadService) ReloadDatasets(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: recarga de datasets já em andamento, ignorando")
		return ErrReloadRunning
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	err := s.loader.LoadAll(ctx, s.config.Datasets)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"datasets": len(s.config.Datasets),
		"failed":   err != nil,
	}).Info("scheduler: recarga de datasets concluída")

	return err
}

// TriggerManualSync dispara a recarga em background.
// Retorna false quando já existe uma recarga em andamento.
func (s *DatasetReloadService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("scheduler: recarga já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("scheduler: iniciando recarga manual de datasets")
	go func() {
		_ = s.ReloadDatasets(s.baseCtx)
	}()

	return true
}

// IsRunning indica se uma recarga está em andamento
func (s *DatasetReloadService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"datasets":               s.config.Datasets,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
