package credentials

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-sheet-sync/pkg/log"
)

// Credentials são as credenciais da conta de anúncios, carregadas de um
// arquivo JSON local a cada execução da sincronização
type Credentials struct {
	AccessToken string `json:"accessToken"`
	AdAccountID string `json:"adAccountId"`
}

// Load lê e valida o arquivo de credenciais. Arquivo ausente ou chaves
// obrigatórias faltando abortam a execução com erro de configuração.
func Load(path string) (*Credentials, error) {
	log.L.WithField("path", path).Info("Carregando credenciais da conta de anúncios")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apiErrors.Newf(apiErrors.ErrConfig, "arquivo de configuração %s não encontrado", path)
		}
		return nil, apiErrors.Newf(apiErrors.ErrConfig, "erro ao ler arquivo de configuração %s: %v", path, err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, apiErrors.Newf(apiErrors.ErrConfig, "arquivo de configuração %s inválido: %v", path, err)
	}

	var missing []string
	if creds.AccessToken == "" {
		missing = append(missing, "accessToken")
	}
	if creds.AdAccountID == "" {
		missing = append(missing, "adAccountId")
	}

	if len(missing) > 0 {
		return nil, apiErrors.Newf(apiErrors.ErrConfig, "chaves obrigatórias ausentes no arquivo de configuração: %s", strings.Join(missing, ", "))
	}

	log.L.Info("Credenciais carregadas com sucesso")
	return &creds, nil
}
