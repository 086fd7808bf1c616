package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
)

// syncerStub implementa syncing.Syncer para os testes do agendador
type syncerStub struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *syncerStub) Sync(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.err
}

func (s *syncerStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestAdsSyncService_Start_DesabilitadoNaoAgenda(t *testing.T) {
	cfg := &config.Config{}
	cfg.AdsSync.Enabled = false
	cfg.AdsSync.CronSchedule = "0 6 * * *"

	service := NewAdsSyncService(&syncerStub{}, cfg)

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestAdsSyncService_RunSync_PropagaErroDaPipeline(t *testing.T) {
	cfg := &config.Config{}
	stub := &syncerStub{err: assert.AnError}
	service := NewAdsSyncService(stub, cfg)

	err := service.RunSync(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, stub.callCount())

	status := service.GetStatus()
	assert.Equal(t, assert.AnError.Error(), status["last_sync_error"])
}

func TestAdsSyncService_RunSync_IgnoraExecucaoSobreposta(t *testing.T) {
	cfg := &config.Config{}
	stub := &syncerStub{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	service := NewAdsSyncService(stub, cfg)

	done := make(chan error, 1)
	go func() {
		done <- service.RunSync(context.Background())
	}()

	<-stub.started

	// Segunda chamada com uma sync em andamento é pulada com o erro sentinela
	err := service.RunSync(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
	assert.Equal(t, 1, stub.callCount())

	close(stub.release)
	assert.NoError(t, <-done)
}

func TestAdsSyncService_GetStatus(t *testing.T) {
	cfg := &config.Config{}
	cfg.AdsSync.Enabled = true
	cfg.AdsSync.CronSchedule = "0 6 * * *"

	service := NewAdsSyncService(&syncerStub{}, cfg)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 6 * * *", status["sync_cron"])
	assert.Equal(t, false, status["sync_running"])
}
