package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		Dataset: config.Dataset{Names: domain.DefaultDatasetNames},
		DatasetReload: config.DatasetReload{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestDatasetReloadService_ReloadDatasets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	service := NewDatasetReloadService(loader, testConfig(true))

	tests := []struct {
		name      string
		setup     func()
		wantErr   bool
		wantError string
	}{
		{
			name: "Recarga com sucesso - deve registrar conclusão sem erro",
			setup: func() {
				loader.EXPECT().
					LoadAll(gomock.Any(), domain.DefaultDatasetNames).
					Return(nil)
			},
		},
		{
			name: "Recarga com falha - deve registrar o último erro",
			setup: func() {
				loader.EXPECT().
					LoadAll(gomock.Any(), domain.DefaultDatasetNames).
					Return(errors.New("BarChart: timeout"))
			},
			wantErr:   true,
			wantError: "BarChart: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.ReloadDatasets(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestDatasetReloadService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	service := NewDatasetReloadService(loader, testConfig(true))

	started := make(chan struct{})
	release := make(chan struct{})

	loader.EXPECT().
		LoadAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, names []string) error {
			close(started)
			<-release
			return nil
		}).
		Times(1)

	done := make(chan error)
	go func() {
		done <- service.ReloadDatasets(context.Background())
	}()

	<-started
	assert.True(t, service.IsRunning())
	assert.ErrorIs(t, service.ReloadDatasets(context.Background()), ErrReloadRunning)
	assert.False(t, service.TriggerManualSync())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, service.IsRunning())
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	service := NewDatasetReloadService(loader, testConfig(false))

	called := make(chan struct{})
	loader.EXPECT().
		LoadAll(gomock.Any(), domain.DefaultDatasetNames).
		DoAndReturn(func(ctx context.Context, names []string) error {
			close(called)
			return nil
		})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("recarga manual não foi executada")
	}

	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetReloadService(mocks.NewMockLoader(ctrl), testConfig(false))
	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestDatasetReloadService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(true)
	cfg.DatasetReload.CronSchedule = "not a cron"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	service := NewDatasetReloadService(mocks.NewMockLoader(ctrl), cfg)
	assert.Error(t, service.Start(ctx))
}
