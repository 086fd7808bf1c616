package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-sheet-sync/pkg/utils"
)

// GetAdCreationTime busca o created_time de um anúncio. Um envelope de erro
// ou um created_time vazio retornam (nil, nil): o anúncio é tratado como
// filtrado, não como falha da sincronização.
func (c *MetaClient) GetAdCreationTime(ctx context.Context, adID string, accessToken string) (*time.Time, error) {
	logrus.WithField("ad_id", adID).Info("Buscando created_time do anúncio")

	params := url.Values{}
	params.Add("fields", "created_time")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, adID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", adID).Error("Erro ao buscar created_time do anúncio")
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apiErrors.New(apiErrors.ErrTransientNetwork, err)
	}

	// Mesmo tratamento da listagem: 5xx de gateway é transitório e elegível
	// a retry, nunca classificado pelo corpo
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, apiErrors.Newf(apiErrors.ErrTransientNetwork, "status %d na busca de created_time", resp.StatusCode)
	}

	var details metadomain.AdDetails
	if err := json.Unmarshal(body, &details); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, apiErrors.Newf(apiErrors.ErrTransientNetwork, "status %d com corpo ilegível na busca de created_time", resp.StatusCode)
		}
		logrus.WithError(err).WithField("ad_id", adID).Error("Erro ao decodificar created_time do anúncio")
		return nil, apiErrors.Newf(apiErrors.ErrExternalAPI, "resposta de created_time inválida: %v", err)
	}

	if details.Error != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"error": details.Error.String(),
		}).Error("Erro da API do Meta ao buscar created_time")
		return nil, nil
	}

	if details.CreatedTime == "" {
		return nil, nil
	}

	createdAt, err := parseCreatedTime(details.CreatedTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":        adID,
			"created_time": details.CreatedTime,
		}).Warn("created_time em formato inesperado")
		return nil, nil
	}

	created := utils.StripTimezone(createdAt)
	logrus.WithField("ad_id", adID).Info("created_time obtido com sucesso")
	return &created, nil
}

// O Meta devolve o offset sem dois-pontos ("+0000"), fora do RFC3339 estrito
func parseCreatedTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05-0700", raw)
}
