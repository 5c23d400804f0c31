package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Máquina de estados:
//
//	scheduled → confirmed | cancelled
//	confirmed → cancelled | completed
//	cancelled, completed → (terminais)

func IsTerminal(current Status) bool {
	return current == StatusCancelled || current == StatusCompleted
}

// CanConfirm: somente scheduled → confirmed.
func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanCancel: qualquer estado ativo. Re-cancelar um agendamento já
// cancelado é erro explícito, não no-op.
func CanCancel(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete: scheduled ou confirmed → completed.
func CanComplete(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanUpdate: agendamentos terminados são imutáveis (exceto avaliação).
func CanUpdate(current Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
