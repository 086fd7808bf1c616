package metaclient

import (
	"context"
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
)

type Client interface {
	InsightsURL(accountID string, accessToken string, targetDate time.Time) string
	GetInsightsPage(ctx context.Context, pageURL string) (*metadomain.InsightsPage, error)
	GetAdCreationTime(ctx context.Context, adID string, accessToken string) (*time.Time, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
	}
}
