package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type RateAppointmentInput struct {
	AppointmentID string
	ClientID      string
	Score         int
	Comment       string
}

type RateAppointmentOutput struct {
	Appointment *models.Appointment
	NewAverage  float64
}

type RateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RateAppointment {
	return &RateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RateAppointment) Execute(
	ctx context.Context,
	in RateAppointmentInput,
) (*RateAppointmentOutput, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Só o cliente do agendamento avalia
	if ap.ClientID != in.ClientID {
		return nil, httperr.ErrBusiness(httperr.CodeUnauthorized)
	}

	now := timezone.Now()
	if err := domain.Rate(ap, in.Score, in.Comment, now); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:       uuid.NewString(),
		BarberID: ap.BarberID,
		ClientID: in.ClientID,
		Text:     in.Comment,
		Score:    in.Score,
	}

	// Avaliação do agendamento, review e nova média numa transação só
	average, err := uc.repo.RecordReview(ctx, ap, review)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_rated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &RateAppointmentOutput{
		Appointment: ap,
		NewAverage:  average,
	}, nil
}
