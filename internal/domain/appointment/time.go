package appointment

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// ===============================
// Horários HH:MM (minutos internos)
// ===============================

const minutesPerDay = 24 * 60

// ParseHHMM converte "HH:MM" em minutos desde a meia-noite.
func ParseHHMM(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidTimeFormat)
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, httperr.ErrBusiness(httperr.CodeInvalidTimeFormat)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// FormatHHMM re-emite minutos desde a meia-noite como "HH:MM" (zero-padded).
func FormatHHMM(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeEndTime soma a duração ao horário de início, com rollover
// de 24h (23:45 + 30min = 00:15). A política de rejeitar reservas que
// viram a noite fica nos use cases, não aqui.
func ComputeEndTime(startTime string, durationMinutes int) (string, error) {
	start, err := ParseHHMM(startTime)
	if err != nil {
		return "", err
	}

	return FormatHHMM(start + durationMinutes), nil
}

// SpillsOverMidnight indica se início+duração ultrapassa a meia-noite.
func SpillsOverMidnight(startTime string, durationMinutes int) (bool, error) {
	start, err := ParseHHMM(startTime)
	if err != nil {
		return false, err
	}
	return start+durationMinutes > minutesPerDay, nil
}

// GenerateDaySlots produz todo horário de início em [workStart, workEnd)
// com passo stepMinutes. Função pura dos argumentos.
func GenerateDaySlots(workStart, workEnd string, stepMinutes int) ([]string, error) {
	start, err := ParseHHMM(workStart)
	if err != nil {
		return nil, err
	}

	end, err := ParseHHMM(workEnd)
	if err != nil {
		return nil, err
	}

	if end <= start {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	if stepMinutes <= 0 {
		stepMinutes = 30
	}

	var slots []string
	for cur := start; cur < end; cur += stepMinutes {
		slots = append(slots, FormatHHMM(cur))
	}

	return slots, nil
}
