package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
)

const insightsFields = "campaign_name,ad_name,spend,ad_id"

// InsightsURL monta a URL da primeira página de insights da conta para a
// data-alvo. As páginas seguintes vêm prontas em paging.next, sem novos
// parâmetros de consulta.
func (c *MetaClient) InsightsURL(accountID string, accessToken string, targetDate time.Time) string {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	day := targetDate.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("fields", insightsFields)
	params.Add("access_token", accessToken)
	params.Add("level", "ad")
	params.Add("time_range", timeRange)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))

	return baseURL + "?" + params.Encode()
}

// GetInsightsPage busca uma página de insights. Um envelope de erro no corpo
// falha a busca inteira: nenhum resultado parcial é devolvido ao chamador.
func (c *MetaClient) GetInsightsPage(ctx context.Context, pageURL string) (*metadomain.InsightsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição de insights")
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar página de insights")
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}

	// Gateways intermediários respondem 5xx com corpo HTML; o status é
	// verificado antes do decode para classificar a falha como transitória
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, apiErrors.Newf(apiErrors.ErrTransientNetwork, "status %d na busca de insights", resp.StatusCode)
	}

	var page metadomain.InsightsPage
	if err := json.Unmarshal(body, &page); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, apiErrors.Newf(apiErrors.ErrTransientNetwork, "status %d com corpo ilegível na busca de insights", resp.StatusCode)
		}
		logrus.WithError(err).Error("Erro ao decodificar JSON de insights")
		return nil, apiErrors.Newf(apiErrors.ErrExternalAPI, "resposta de insights inválida: %v", err)
	}

	if page.Error != nil {
		return nil, apiErrors.Newf(apiErrors.ErrExternalAPI, "erro da API do Meta: %s", page.Error)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiErrors.Newf(apiErrors.ErrTransientNetwork, "status inesperado na busca de insights: %d", resp.StatusCode)
	}

	return &page, nil
}
