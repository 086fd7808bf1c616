package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-sheet-sync/internal/scheduler"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-sheet-sync/pkg/log"
)

// SyncRunner é o serviço capaz de executar a pipeline de sincronização e
// reportar o status do agendamento
type SyncRunner interface {
	RunSync(ctx context.Context) error
	GetStatus() map[string]any
}

// SyncResponse é o corpo JSON retornado quando a sincronização completa
type SyncResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RunSync executa a pipeline completa de forma síncrona. Todo erro fatal da
// pipeline é convertido aqui em uma resposta JSON com HTTP 500; nada propaga
// além deste boundary.
func RunSync(service SyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("sync: starting sync process")

		if err := service.RunSync(r.Context()); err != nil {
			// Execução pulada não é falha nem conclusão: o chamador recebe
			// 409 para saber que nada foi sincronizado nesta chamada
			if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
				logger.Info("sync: skipped, another sync is already running")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SyncResponse{
					Status:  "skipped",
					Message: "Data sync already in progress",
				})
				return
			}

			logger.WithFields(log.Fields{
				"error_code": apiErrors.CodeOf(err),
				"error":      err.Error(),
			}).Error("sync: sync failed")

			apiErrors.WriteError(w, err)
			return
		}

		logger.Info("sync: completed successfully")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResponse{
			Status:  "success",
			Message: "Data sync completed",
		})
	})
}

// GetSyncStatus retorna o status do agendador de sincronização
func GetSyncStatus(service SyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.GetStatus())
	})
}
