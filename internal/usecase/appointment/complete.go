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

type CompleteAppointmentInput struct {
	AppointmentID string
	ActingUserID  string

	PaymentStatus string // default "paid"
	PaymentMethod string
}

type CompleteAppointment struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	barber, err := uc.repo.GetBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if barber.UserID != in.ActingUserID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	now := timezone.Now()
	if err := domain.Complete(ap, now, in.PaymentStatus, in.PaymentMethod); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, notification.Message{
		RecipientID: ap.ClientID,
		Type:        models.NotificationTypeCompleted,
		Title:       "Agendamento Concluído",
		Body: fmt.Sprintf(
			"Seu agendamento para %s às %s foi concluído. Obrigado pela preferência!",
			ap.Date, ap.StartTime,
		),
		Channel:     models.ChannelEmail,
		RelatedKind: models.RelatedKindAppointment,
		RelatedID:   ap.ID,
	})

	// Pedido de avaliação em notificação separada
	uc.notifier.Notify(ctx, notification.Message{
		RecipientID: ap.ClientID,
		Type:        models.NotificationTypeReviewRequest,
		Title:       "Como foi seu atendimento?",
		Body:        "Seu agendamento foi concluído. Que tal avaliar o serviço que você recebeu?",
		Channel:     models.ChannelEmail,
		RelatedKind: models.RelatedKindAppointment,
		RelatedID:   ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActingUserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
