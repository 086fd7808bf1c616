package apiErrors

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// Códigos de erro da pipeline de sincronização
const (
	// Erros de configuração (arquivo ausente, chaves obrigatórias faltando)
	ErrConfig = "CFG_001"

	// Erros transitórios de rede (timeout, falha de conexão), únicos elegíveis a retry
	ErrTransientNetwork = "NET_001"

	// Erros reportados pela API externa dentro de uma resposta bem-sucedida
	ErrExternalAPI = "API_001"

	// Erros de escrita na planilha
	ErrSheetWrite = "WRT_001"
)

// SyncError é um erro tipado com um dos códigos fechados acima.
type SyncError struct {
	Code string
	Err  error
}

func (e *SyncError) Error() string {
	return e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// New cria um SyncError com o código informado
func New(code string, err error) *SyncError {
	return &SyncError{Code: code, Err: err}
}

// Newf cria um SyncError formatando a mensagem
func Newf(code string, format string, args ...any) *SyncError {
	return &SyncError{Code: code, Err: errors.Errorf(format, args...)}
}

// CodeOf extrai o código de erro de um erro qualquer; erros não tipados
// são tratados como erro de serviço externo
func CodeOf(err error) string {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Code
	}
	return ErrExternalAPI
}

// IsTransient informa se o erro é de rede transitório (elegível a retry)
func IsTransient(err error) bool {
	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Code == ErrTransientNetwork
	}
	return false
}

// ErrorResponse é o corpo JSON retornado quando a sincronização falha
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError serializa o erro no formato padronizado da API com HTTP 500.
// Nenhum erro da pipeline escapa do boundary HTTP sem passar por aqui.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: err.Error(),
	})
}
