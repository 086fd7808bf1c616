package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-sheet-sync/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HealthcheckHandler responde aos probes de liveness da plataforma
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// WarmupHandler atende o hook de warmup da plataforma com corpo vazio
func WarmupHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("warmup: endpoint called")
		w.WriteHeader(http.StatusOK)
	})
}
