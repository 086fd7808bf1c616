package handler

import (
	"net/http"

	"github.com/vfg2006/ads-sheet-sync/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/_ah/warmup",
			Method:  http.MethodGet,
			Handler: WarmupHandler(),
		},
	}
}

func Sync(service SyncRunner) []router.Route {
	return []router.Route{
		{
			Path:    "/sync",
			Method:  http.MethodGet,
			Handler: RunSync(service),
		},
		{
			Path:    "/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}
