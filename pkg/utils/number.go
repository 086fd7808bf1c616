package utils

import "strconv"

// ParseSpend converte o valor de gasto retornado pela API (string) em float64.
// O valor não sofre nenhum arredondamento: o que a API reporta é o que vai
// para a planilha.
// Valores ausentes ou não numéricos viram 0 com ok=false para o chamador logar.
func ParseSpend(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	spend, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	return spend, true
}
