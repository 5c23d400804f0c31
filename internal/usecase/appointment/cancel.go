package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	requesterID string,
	requesterRole string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	isClient := ap.ClientID == requesterID

	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	isBarber := barber.UserID == requesterID

	if !isClient && !isBarber && requesterRole != models.RoleAdmin {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	// Re-cancelar é transição ilegal, não no-op
	now := timezone.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// Notifica a outra parte
	if isClient {
		uc.notifier.Notify(ctx, notification.Message{
			RecipientID: barber.UserID,
			Type:        models.NotificationTypeCancelation,
			Title:       "Agendamento Cancelado",
			Body: fmt.Sprintf(
				"O agendamento para %s às %s foi cancelado pelo cliente.",
				ap.Date, ap.StartTime,
			),
			Channel:     models.ChannelEmail,
			RelatedKind: models.RelatedKindAppointment,
			RelatedID:   ap.ID,
		})
	} else {
		uc.notifier.Notify(ctx, notification.Message{
			RecipientID: ap.ClientID,
			Type:        models.NotificationTypeCancelation,
			Title:       "Agendamento Cancelado",
			Body: fmt.Sprintf(
				"Seu agendamento para %s às %s foi cancelado pelo barbeiro.",
				ap.Date, ap.StartTime,
			),
			Channel:     models.ChannelEmail,
			RelatedKind: models.RelatedKindAppointment,
			RelatedID:   ap.ID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &requesterID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
