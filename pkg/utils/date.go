package utils

import "time"

// Yesterday retorna a data-alvo da sincronização: o dia anterior a now,
// truncado para meia-noite
func Yesterday(now time.Time) time.Time {
	y := now.AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}

// StripTimezone descarta a informação de fuso, mantendo o horário de parede
func StripTimezone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
