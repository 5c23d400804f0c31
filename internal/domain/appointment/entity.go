package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time, paymentStatus, paymentMethod string) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now

	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPaid
	}
	ap.PaymentStatus = paymentStatus

	if paymentMethod != "" {
		ap.PaymentMethod = paymentMethod
	}

	return nil
}

// Rate registra a avaliação: só após conclusão, uma única vez, nota 1..5.
func Rate(ap *models.Appointment, score int, comment string, now time.Time) error {
	if score < 1 || score > 5 {
		return httperr.ErrBusiness(httperr.CodeValidationError)
	}

	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}

	if ap.RatingScore != nil {
		return httperr.ErrBusiness(httperr.CodeAlreadyRated)
	}

	ap.RatingScore = &score
	ap.RatingComment = comment
	ap.RatedAt = &now
	return nil
}
