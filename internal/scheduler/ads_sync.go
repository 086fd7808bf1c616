package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/usecases/syncing"
)

// ErrSyncAlreadyRunning indica que a chamada foi ignorada porque outra
// sincronização ainda está em andamento
var ErrSyncAlreadyRunning = errors.New("sincronização de anúncios já em andamento")

// AdsSyncConfig representa a configuração do agendador de sincronização de anúncios
type AdsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AdsSyncService gerencia o agendamento e execução da sincronização diária
// de anúncios para a planilha. O mutex também serializa execuções disparadas
// manualmente pelo endpoint /sync, evitando que duas escritas concorrentes
// disputem a mesma região da planilha.
type AdsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdsSyncConfig
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewAdsSyncService cria uma nova instância do serviço de sincronização de anúncios
func NewAdsSyncService(syncService syncing.Syncer, appConfig *config.Config) *AdsSyncService {
	syncConfig := AdsSyncConfig{
		CronSchedule: appConfig.AdsSync.CronSchedule,
		SyncEnabled:  appConfig.AdsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de anúncios carregada")

	return &AdsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		syncService: syncService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AdsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de anúncios: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSync executa uma sincronização. Se outra execução já estiver em
// andamento a chamada é ignorada e ErrSyncAlreadyRunning é devolvido, para
// que o chamador não confunda o pulo com uma sincronização concluída.
// Erros da pipeline são devolvidos ao chamador (o endpoint /sync os converte
// em resposta HTTP).
func (s *AdsSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de anúncios já em andamento, ignorando")
		return ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de anúncios")

	err := s.syncService.Sync(ctx, time.Now())

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Sincronização de anúncios falhou")
		return err
	}

	logrus.WithField("duration", time.Since(s.lastSyncStartedAt).String()).Info("Sincronização de anúncios concluída")
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *AdsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
