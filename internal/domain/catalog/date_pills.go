package catalog

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/arena-manager/internal/timezone"
)

// WindowDays é o tamanho da janela de reserva exibida ao cliente.
const WindowDays = 7

const isoDate = "2006-01-02"

var weekdayAbbrev = [...]string{"DOM", "SEG", "TER", "QUA", "QUI", "SEX", "SÁB"}

type DatePill struct {
	Label string `json:"label"`
	ISO   string `json:"iso"`
}

// DatePills gera os 7 dias a partir da meia-noite local de now.
// O fuso é o de now; quem chama decide a localização.
func DatePills(now time.Time) []DatePill {
	day := timezone.StartOfDay(now)

	pills := make([]DatePill, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		// AddDate e não Add(24h): dias com horário de verão não têm 24h
		d := day.AddDate(0, 0, i)
		pills = append(pills, DatePill{
			Label: fmt.Sprintf("%02d %s", d.Day(), weekdayAbbrev[d.Weekday()]),
			ISO:   d.Format(isoDate),
		})
	}
	return pills
}

// SelectedISO resolve o índice da pílula; fora da janela devolve false.
func SelectedISO(pills []DatePill, index int) (string, bool) {
	if index < 0 || index >= len(pills) {
		return "", false
	}
	return pills[index].ISO, true
}
