package appointment

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
	log      zerolog.Logger
}

func NewConfirmAppointment(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
	log zerolog.Logger,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		log:      log,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	actingUserID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Só o barbeiro do agendamento confirma
	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if barber.UserID != actingUserID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	body := fmt.Sprintf(
		"Seu agendamento para %s às %s foi confirmado pelo barbeiro.",
		ap.Date, ap.StartTime,
	)

	// Dois canais: e-mail e SMS
	for _, channel := range []string{models.ChannelEmail, models.ChannelSMS} {
		uc.notifier.Notify(ctx, notification.Message{
			RecipientID: ap.ClientID,
			Type:        models.NotificationTypeConfirmation,
			Title:       "Agendamento Confirmado pelo Barbeiro",
			Body:        body,
			Channel:     channel,
			RelatedKind: models.RelatedKindAppointment,
			RelatedID:   ap.ID,
		})
	}

	// Flag de idempotência é best-effort; a confirmação em si já foi salva
	if err := uc.repo.MarkConfirmationSent(ctx, ap.ID); err != nil {
		uc.log.Error().Err(err).
			Str("appointment_id", ap.ID).
			Msg("falha ao marcar confirmação enviada")
	} else {
		ap.ConfirmationSent = true
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actingUserID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
