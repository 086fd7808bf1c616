package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson serializa um valor com indentação para logs de depuração.
// Entradas que não serializam viram a mensagem de erro, nunca um panic.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "\t"); err != nil {
			return string(raw)
		}
		return out.String()
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return err.Error()
	}

	return string(buffer)
}
