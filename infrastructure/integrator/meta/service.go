package meta

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/credentials"
	"github.com/vfg2006/ads-sheet-sync/internal/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-sheet-sync/pkg/retry"
)

// Integrator expõe a busca de anúncios do dia já enriquecidos e filtrados
// pela data de corte
type Integrator interface {
	FetchAds(ctx context.Context, creds *credentials.Credentials, targetDate time.Time) ([]domain.AdRecord, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
	policy retry.Policy
}

func New(cfg *config.Config, client metaclient.Client) Integrator {
	// A política padrão vale quando os limites não foram configurados
	policy := retry.DefaultPolicy()
	policy.Retryable = apiErrors.IsTransient

	if cfg.AdsSync.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.AdsSync.MaxAttempts
	}
	if cfg.AdsSync.BackoffBaseSeconds > 0 {
		policy.BaseDelay = time.Duration(cfg.AdsSync.BackoffBaseSeconds) * time.Second
	}
	if cfg.AdsSync.BackoffMaxSeconds > 0 {
		policy.MaxDelay = time.Duration(cfg.AdsSync.BackoffMaxSeconds) * time.Second
	}

	return &Service{
		cfg:    cfg,
		client: client,
		policy: policy,
	}
}

// FetchAds percorre todas as páginas de insights da conta para a data-alvo,
// enriquece cada anúncio com o created_time e mantém apenas os criados a
// partir da data de corte. A busca inteira roda sob a política de retry:
// uma falha transitória em qualquer página reinicia a caminhada do zero,
// sem resultados parciais.
func (s *Service) FetchAds(ctx context.Context, creds *credentials.Credentials, targetDate time.Time) ([]domain.AdRecord, error) {
	var ads []domain.AdRecord

	err := s.policy.Do("meta.fetch_ads", func() error {
		fetched, err := s.fetchAllPages(ctx, creds, targetDate)
		if err != nil {
			return err
		}
		ads = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("total_ads", len(ads)).Info("Busca de anúncios concluída")
	return ads, nil
}

func (s *Service) fetchAllPages(ctx context.Context, creds *credentials.Credentials, targetDate time.Time) ([]domain.AdRecord, error) {
	ads := []domain.AdRecord{}
	nextPage := s.client.InsightsURL(creds.AdAccountID, creds.AccessToken, targetDate)

	for nextPage != "" {
		logrus.WithField("date", targetDate.Format(time.DateOnly)).Info("Buscando página de insights")

		page, err := s.client.GetInsightsPage(ctx, nextPage)
		if err != nil {
			return nil, err
		}

		logrus.WithField("ads", len(page.Data)).Info("Página de insights recebida")

		for _, ad := range page.Data {
			if ad.AdID == "" {
				continue
			}

			keep, err := s.createdAfterCutoff(ctx, ad.AdID, creds.AccessToken)
			if err != nil {
				return nil, err
			}

			if keep {
				ads = append(ads, ad)
			} else {
				logrus.WithField("ad_id", ad.AdID).Info("Ignorando anúncio criado antes da data de corte")
			}
		}

		// paging.next já vem totalmente qualificada; nada a acrescentar
		nextPage = page.Paging.Next
	}

	return ads, nil
}

// createdAfterCutoff faz o lookup de enriquecimento (com retry próprio) e
// decide a inclusão do anúncio. Lookup ausente ou com erro de API exclui o
// anúncio sem abortar a execução.
func (s *Service) createdAfterCutoff(ctx context.Context, adID string, accessToken string) (bool, error) {
	var created *time.Time

	err := s.policy.Do("meta.fetch_ad_creation_time", func() error {
		var err error
		created, err = s.client.GetAdCreationTime(ctx, adID, accessToken)
		return err
	})
	if err != nil {
		return false, err
	}

	return created != nil && !created.Before(s.cfg.AdsSync.Cutoff), nil
}
