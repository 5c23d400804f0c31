package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// DateLayout é o formato de data usado em agendamentos e filtros.
const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o fuso; inválido ou vazio cai no padrão.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data de hoje no fuso padrão, no formato de agendamento.
func Today() string {
	return Now().Format(DateLayout)
}

// Tomorrow devolve a data de amanhã no fuso padrão (janela do sweep de
// lembretes).
func Tomorrow() string {
	return Now().AddDate(0, 0, 1).Format(DateLayout)
}
