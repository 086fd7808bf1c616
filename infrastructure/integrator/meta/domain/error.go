package metadomain

import "fmt"

// ErrorDetails contém os detalhes de erro da API do Meta, entregues dentro
// de uma resposta HTTP bem-sucedida sob a chave "error"
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

func (e *ErrorDetails) String() string {
	return fmt.Sprintf("%s (type=%s, code=%d, fbtrace_id=%s)", e.Message, e.Type, e.Code, e.FBTraceID)
}
