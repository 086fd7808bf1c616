package retry

import (
	"math"
	"time"

	"github.com/vfg2006/ads-sheet-sync/pkg/log"
)

// Policy define uma política de retry com backoff exponencial limitado.
// MaxAttempts é o total de tentativas (incluindo a primeira); BaseDelay é a
// espera antes da segunda tentativa e dobra a cada falha até MaxDelay.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration

	// Retryable decide se um erro merece nova tentativa. Quando nil,
	// qualquer erro é repetido até esgotar as tentativas.
	Retryable func(error) bool
}

// DefaultPolicy reproduz os limites usados nas chamadas à API do Meta:
// 3 tentativas, backoff de 4s dobrando até o teto de 10s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   4 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Do executa fn até obter sucesso ou esgotar as tentativas. Ao esgotar,
// devolve o último erro. O backoff bloqueia a goroutine chamadora.
func (p Policy) Do(operation string, fn func() error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			delay := p.delayFor(attempt)
			log.L.WithFields(log.Fields{
				"operation": operation,
				"attempt":   attempt,
				"max":       maxAttempts,
				"delay":     delay.String(),
			}).Warn("Nova tentativa após falha")

			time.Sleep(delay)
		}

		if lastErr = fn(); lastErr == nil {
			return nil
		}

		log.L.WithFields(log.Fields{
			"operation": operation,
			"attempt":   attempt,
			"error":     lastErr.Error(),
		}).Error("Tentativa falhou")

		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// delayFor calcula o backoff exponencial para a tentativa informada,
// limitado a MaxDelay
func (p Policy) delayFor(attempt int) time.Duration {
	delay := float64(p.BaseDelay) * math.Pow(2, float64(attempt-2))
	if delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}
	return time.Duration(delay)
}
