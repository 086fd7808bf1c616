package meta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/credentials"
	"github.com/vfg2006/ads-sheet-sync/internal/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-sheet-sync/pkg/retry"
	"go.uber.org/mock/gomock"
)

var testCreds = &credentials.Credentials{
	AccessToken: "T",
	AdAccountID: "123",
}

func newTestService(t *testing.T) (*Service, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.AdsSync.Cutoff = time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	service := &Service{
		cfg:    cfg,
		client: client,
		policy: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    2 * time.Millisecond,
			Retryable:   apiErrors.IsTransient,
		},
	}

	return service, client
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNew_PoliticaDeRetryPadraoQuandoNaoConfigurada(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	service := New(&config.Config{}, client).(*Service)

	assert.Equal(t, 3, service.policy.MaxAttempts)
	assert.Equal(t, 4*time.Second, service.policy.BaseDelay)
	assert.Equal(t, 10*time.Second, service.policy.MaxDelay)
	assert.NotNil(t, service.policy.Retryable)
}

func TestNew_ConfiguracaoSobrescreveOsLimitesDeRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.AdsSync.MaxAttempts = 5
	cfg.AdsSync.BackoffBaseSeconds = 1
	cfg.AdsSync.BackoffMaxSeconds = 2

	service := New(cfg, client).(*Service)

	assert.Equal(t, 5, service.policy.MaxAttempts)
	assert.Equal(t, time.Second, service.policy.BaseDelay)
	assert.Equal(t, 2*time.Second, service.policy.MaxDelay)
}

func TestService_FetchAds_FiltroPorDataDeCorte(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	afterCutoff := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	beforeCutoff := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)

	page := &metadomain.InsightsPage{
		Data: []domain.AdRecord{
			{AdID: "A1", CampaignName: "C", AdName: "N", Spend: "12.5"},
			{AdID: "A2", CampaignName: "C", AdName: "Old", Spend: "3.0"},
			{AdID: "", CampaignName: "C", AdName: "SemID", Spend: "1.0"},
			{AdID: "A3", CampaignName: "C", AdName: "SemCreatedTime", Spend: "2.0"},
		},
	}

	client.EXPECT().
		InsightsURL("123", "T", targetDate).
		Return("https://graph.test/act_123/insights?page=1")
	client.EXPECT().
		GetInsightsPage(gomock.Any(), "https://graph.test/act_123/insights?page=1").
		Return(page, nil)

	// A1 criado depois do corte: incluído
	client.EXPECT().
		GetAdCreationTime(gomock.Any(), "A1", "T").
		Return(timePtr(afterCutoff), nil)
	// A2 criado antes do corte: excluído
	client.EXPECT().
		GetAdCreationTime(gomock.Any(), "A2", "T").
		Return(timePtr(beforeCutoff), nil)
	// A3 sem created_time (lookup "ausente"): excluído sem abortar
	client.EXPECT().
		GetAdCreationTime(gomock.Any(), "A3", "T").
		Return(nil, nil)
	// O anúncio sem ad_id nunca chega ao lookup

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "A1", ads[0].AdID)
}

func TestService_FetchAds_AnuncioCriadoNaDataDeCorteEhIncluido(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	onCutoff := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1")
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(&metadomain.InsightsPage{
		Data: []domain.AdRecord{{AdID: "A1", Spend: "1.0"}},
	}, nil)
	client.EXPECT().GetAdCreationTime(gomock.Any(), "A1", "T").Return(timePtr(onCutoff), nil)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestService_FetchAds_PaginacaoTerminaNaUltimaPagina(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1")

	// Três páginas encadeadas; a última não traz paging.next
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(&metadomain.InsightsPage{
		Data:   []domain.AdRecord{{AdID: "A1", Spend: "1.0"}},
		Paging: metadomain.Paging{Next: "https://graph.test/p2"},
	}, nil)
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p2").Return(&metadomain.InsightsPage{
		Data:   []domain.AdRecord{{AdID: "A2", Spend: "2.0"}},
		Paging: metadomain.Paging{Next: "https://graph.test/p3"},
	}, nil)
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p3").Return(&metadomain.InsightsPage{
		Data: []domain.AdRecord{{AdID: "A3", Spend: "3.0"}},
	}, nil)

	client.EXPECT().GetAdCreationTime(gomock.Any(), gomock.Any(), "T").Return(timePtr(created), nil).Times(3)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	require.NoError(t, err)
	assert.Len(t, ads, 3)
}

func TestService_FetchAds_RetryAposFalhasTransitorias(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	transient := apiErrors.Newf(apiErrors.ErrTransientNetwork, "connection reset")

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1").Times(3)

	// Duas falhas transitórias reiniciam a caminhada inteira; a terceira passa
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(nil, transient).Times(2)
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(&metadomain.InsightsPage{
		Data: []domain.AdRecord{{AdID: "A1", Spend: "1.0"}},
	}, nil)
	client.EXPECT().GetAdCreationTime(gomock.Any(), "A1", "T").Return(timePtr(created), nil)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	require.NoError(t, err)
	assert.Len(t, ads, 1)
}

func TestService_FetchAds_EsgotaTentativasEFalha(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	transient := apiErrors.Newf(apiErrors.ErrTransientNetwork, "timeout")

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1").Times(3)
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(nil, transient).Times(3)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	assert.Error(t, err)
	assert.Nil(t, ads)
	assert.Equal(t, apiErrors.ErrTransientNetwork, apiErrors.CodeOf(err))
}

func TestService_FetchAds_EnvelopeDeErroNaoEhRetentado(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	apiErr := apiErrors.Newf(apiErrors.ErrExternalAPI, "erro da API do Meta: invalid account")

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1")
	// Erro de API na listagem é fatal para a sync inteira, sem novas tentativas
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(nil, apiErr)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	assert.Error(t, err)
	assert.Nil(t, ads)
	assert.Equal(t, apiErrors.ErrExternalAPI, apiErrors.CodeOf(err))
}

func TestService_FetchAds_RetryNoLookupDeCreatedTime(t *testing.T) {
	service, client := newTestService(t)

	targetDate := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	transient := apiErrors.Newf(apiErrors.ErrTransientNetwork, "timeout")

	client.EXPECT().InsightsURL("123", "T", targetDate).Return("https://graph.test/p1")
	client.EXPECT().GetInsightsPage(gomock.Any(), "https://graph.test/p1").Return(&metadomain.InsightsPage{
		Data: []domain.AdRecord{{AdID: "A1", Spend: "1.0"}},
	}, nil)

	// O lookup de enriquecimento tem retry próprio
	client.EXPECT().GetAdCreationTime(gomock.Any(), "A1", "T").Return(nil, transient).Times(2)
	client.EXPECT().GetAdCreationTime(gomock.Any(), "A1", "T").Return(timePtr(created), nil)

	ads, err := service.FetchAds(context.Background(), testCreds, targetDate)

	require.NoError(t, err)
	assert.Len(t, ads, 1)
}
