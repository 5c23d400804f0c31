package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

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

type CreateAppointmentInput struct {
	ClientID  string
	BarberID  string
	ServiceID string

	Date      string // 2006-01-02
	StartTime string // HH:MM

	PaymentMethod string
	Notes         string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier notification.Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notification.Notifier,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// 1. Serviço e barbeiro precisam existir
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// 2. Fim calculado a partir da duração; preço congelado
	endTime, err := domain.ComputeEndTime(in.StartTime, service.DurationMin)
	if err != nil {
		return nil, err
	}

	// Reserva não pode virar a noite
	spills, err := domain.SpillsOverMidnight(in.StartTime, service.DurationMin)
	if err != nil {
		return nil, err
	}
	if spills {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}

	// 3. Pré-checagem de disponibilidade (a transação de insert re-verifica)
	free, err := domain.IsAvailable(ctx, uc.repo, in.BarberID, in.Date, in.StartTime, endTime, "")
	if err != nil {
		return nil, err
	}
	if !free {
		metrics.IncSlotConflicts()
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCash
	}

	// 4. Persistência
	ap := &models.Appointment{
		ID:            uuid.NewString(),
		ClientID:      in.ClientID,
		BarberID:      in.BarberID,
		BarbershopID:  barber.BarbershopID,
		ServiceID:     service.ID,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       endTime,
		Status:        string(domain.InitialStatus()),
		TotalPrice:    service.Price,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: paymentMethod,
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotUnavailable) {
			metrics.IncSlotConflicts()
		}
		return nil, err
	}

	metrics.IncAppointmentsCreated()

	// 5. Notificação é best-effort; falha nunca desfaz o agendamento
	uc.notifier.Notify(ctx, notification.Message{
		RecipientID: in.ClientID,
		Type:        models.NotificationTypeConfirmation,
		Title:       "Agendamento Recebido",
		Body: fmt.Sprintf(
			"Seu agendamento foi registrado para %s às %s. Serviço: %s.",
			ap.Date, ap.StartTime, service.Name,
		),
		Channel:     models.ChannelEmail,
		RelatedKind: models.RelatedKindAppointment,
		RelatedID:   ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
