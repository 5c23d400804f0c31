package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil não são alterados.
type UpdateAppointmentPatch struct {
	Date      *string
	StartTime *string
	BarberID  *string
	ServiceID *string

	PaymentMethod *string
	Notes         *string
}

func (p UpdateAppointmentPatch) touchesSchedule() bool {
	return p.Date != nil || p.StartTime != nil || p.BarberID != nil
}

type UpdateAppointmentInput struct {
	AppointmentID string
	RequesterID   string
	RequesterRole string
	Patch         UpdateAppointmentPatch
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if err := uc.authorize(ctx, ap, in.RequesterID, in.RequesterRole); err != nil {
		return nil, err
	}

	// Agendamentos terminados são imutáveis
	if err := domain.CanUpdate(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	patch := in.Patch

	if patch.BarberID != nil && *patch.BarberID != ap.BarberID {
		barber, err := uc.repo.GetBarber(ctx, *patch.BarberID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		ap.BarberID = barber.ID
		ap.BarbershopID = barber.BarbershopID
	}

	if patch.Date != nil {
		ap.Date = *patch.Date
	}
	if patch.StartTime != nil {
		ap.StartTime = *patch.StartTime
	}
	if patch.PaymentMethod != nil {
		ap.PaymentMethod = *patch.PaymentMethod
	}
	if patch.Notes != nil {
		ap.Notes = *patch.Notes
	}

	// Troca de serviço recalcula fim e congela o novo preço
	serviceID := ap.ServiceID
	if patch.ServiceID != nil {
		serviceID = *patch.ServiceID
	}

	if patch.ServiceID != nil || patch.touchesSchedule() {
		service, err := uc.repo.GetService(ctx, serviceID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}

		endTime, err := domain.ComputeEndTime(ap.StartTime, service.DurationMin)
		if err != nil {
			return nil, err
		}

		spills, err := domain.SpillsOverMidnight(ap.StartTime, service.DurationMin)
		if err != nil {
			return nil, err
		}
		if spills {
			return nil, httperr.ErrBusiness(httperr.CodeValidationError)
		}

		ap.EndTime = endTime

		if patch.ServiceID != nil {
			ap.ServiceID = service.ID
			ap.TotalPrice = service.Price
		}
	}

	if patch.touchesSchedule() {
		// Re-checagem excluindo o próprio agendamento
		free, err := domain.IsAvailable(ctx, uc.repo, ap.BarberID, ap.Date, ap.StartTime, ap.EndTime, ap.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			metrics.IncSlotConflicts()
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		if err := uc.repo.UpdateAppointmentSlot(ctx, ap); err != nil {
			if httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
				metrics.IncSlotConflicts()
			}
			return nil, err
		}
	} else {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	uc.notifier.Notify(ctx, notification.Message{
		RecipientID: ap.ClientID,
		Type:        models.NotificationTypeConfirmation,
		Title:       "Agendamento Atualizado",
		Body: fmt.Sprintf(
			"Seu agendamento foi atualizado para %s às %s.",
			ap.Date, ap.StartTime,
		),
		Channel:     models.ChannelEmail,
		RelatedKind: models.RelatedKindAppointment,
		RelatedID:   ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.RequesterID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

// authorize: o próprio cliente, o usuário dono do barbeiro, ou admin.
func (uc *UpdateAppointment) authorize(
	ctx context.Context,
	ap *models.Appointment,
	requesterID string,
	requesterRole string,
) error {

	if requesterRole == models.RoleAdmin {
		return nil
	}

	if ap.ClientID == requesterID {
		return nil
	}

	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err == nil && barber.UserID == requesterID {
		return nil
	}

	return httperr.ErrBusiness(httperr.CodeUnauthorized)
}
