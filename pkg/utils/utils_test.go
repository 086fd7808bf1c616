package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYesterday(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 42, 7, 0, time.UTC)

	got := Yesterday(now)

	assert.Equal(t, "2025-03-09", got.Format(time.DateOnly))
	assert.Equal(t, 0, got.Hour())
}

func TestStripTimezone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	withZone := time.Date(2024, 10, 5, 23, 30, 0, 0, loc)

	got := StripTimezone(withZone)

	// Mantém o horário de parede, descartando o offset
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseSpend(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		wantOk bool
	}{
		{name: "Valor decimal válido", raw: "12.5", want: 12.5, wantOk: true},
		{name: "Valor inteiro válido", raw: "100", want: 100, wantOk: true},
		{name: "Valor ausente", raw: "", want: 0, wantOk: false},
		{name: "Valor não numérico", raw: "N/A", want: 0, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSpend(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestPrettyJson(t *testing.T) {
	got := PrettyJson(map[string]string{"campanha": "C"})
	assert.Contains(t, got, "\"campanha\": \"C\"")

	raw := PrettyJson([]byte(`{"campanha":"C"}`))
	assert.Contains(t, raw, "\t\"campanha\"")

	// Bytes que não são JSON voltam como vieram
	assert.Equal(t, "não é json", PrettyJson([]byte("não é json")))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	assert.NoError(t, err)
	assert.Len(t, id, 6)
}
