package appointment

import (
	"context"
)

// IsAvailable verifica se o intervalo candidato [candidateStart,
// candidateEnd) está livre para o barbeiro na data: nenhum agendamento
// não cancelado pode sobrepor. excludeID ignora o próprio agendamento
// ao reagendar. Somente leitura; quem grava deve re-verificar na
// transação de commit.
func IsAvailable(
	ctx context.Context,
	repo Repository,
	barberID string,
	date string,
	candidateStart string,
	candidateEnd string,
	excludeID string,
) (bool, error) {

	existing, err := repo.ListActiveAppointmentsForDay(ctx, barberID, date, excludeID)
	if err != nil {
		return false, err
	}

	for _, ap := range existing {
		overlap, err := Overlaps(candidateStart, candidateEnd, ap.StartTime, ap.EndTime)
		if err != nil {
			return false, err
		}
		if overlap {
			return false, nil
		}
	}

	return true, nil
}
