package appointment

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// CANCEL
// ======================================================

func TestCancelByClientNotifiesBarber(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewCancelAppointment(repo, notifier, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	ap, err := uc.Execute(context.Background(), "ap-1", "client-1", models.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, "cancelled", ap.Status)
	assert.NotNil(t, ap.CancelledAt)

	msgs := notifier.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "user-barber-1", msgs[0].RecipientID)
}

func TestCancelByBarberNotifiesClient(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewCancelAppointment(repo, notifier, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), "ap-1", "user-barber-1", models.RoleBarber)
	require.NoError(t, err)

	msgs := notifier.sent()
	require.Len(t, msgs, 1)
	assert.Equal(t, "client-1", msgs[0].RecipientID)
}

func TestCancelCompletedFails(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCancelAppointment(repo, &mockNotifier{}, testDispatcher())

	ap := scheduledAppointment()
	ap.Status = "completed"
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), "ap-1", "client-1", models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCancelAlreadyCancelledFails(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewCancelAppointment(repo, notifier, testDispatcher())

	ap := scheduledAppointment()
	ap.Status = "cancelled"
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), "ap-1", "client-1", models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))

	// cancelamento repetido não re-notifica
	assert.Empty(t, notifier.sent())
}

func TestCancelUnauthorized(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCancelAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), "ap-1", "intruso", models.RoleClient)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

// ======================================================
// CONFIRM
// ======================================================

func TestConfirmSendsEmailAndSMS(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewConfirmAppointment(repo, notifier, testDispatcher(), zerolog.Nop())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkConfirmationSent", mock.Anything, "ap-1").Return(nil)

	ap, err := uc.Execute(context.Background(), "ap-1", "user-barber-1")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", ap.Status)
	assert.True(t, ap.ConfirmationSent)

	msgs := notifier.sent()
	require.Len(t, msgs, 2)
	channels := []string{msgs[0].Channel, msgs[1].Channel}
	assert.Contains(t, channels, models.ChannelEmail)
	assert.Contains(t, channels, models.ChannelSMS)
}

func TestConfirmWrongBarber(t *testing.T) {
	repo := new(mockRepo)
	uc := NewConfirmAppointment(repo, &mockNotifier{}, testDispatcher(), zerolog.Nop())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), "ap-1", "outro-usuario")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

func TestConfirmAlreadyConfirmed(t *testing.T) {
	repo := new(mockRepo)
	uc := NewConfirmAppointment(repo, &mockNotifier{}, testDispatcher(), zerolog.Nop())

	ap := scheduledAppointment()
	ap.Status = "confirmed"
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), "ap-1", "user-barber-1")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

// Falha ao gravar a flag não desfaz a confirmação, mas deixa rastro no log.
func TestConfirmFlagFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	repo := new(mockRepo)
	uc := NewConfirmAppointment(repo, &mockNotifier{}, testDispatcher(), log)

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkConfirmationSent", mock.Anything, "ap-1").Return(assert.AnError)

	ap, err := uc.Execute(context.Background(), "ap-1", "user-barber-1")
	require.NoError(t, err)

	assert.Equal(t, "confirmed", ap.Status)
	assert.False(t, ap.ConfirmationSent)
	assert.Contains(t, buf.String(), "falha ao marcar confirmação enviada")
	assert.Contains(t, buf.String(), "ap-1")
}

// ======================================================
// COMPLETE
// ======================================================

func TestCompleteDefaultsToPaid(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewCompleteAppointment(repo, notifier, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	ap, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID: "ap-1",
		ActingUserID:  "user-barber-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", ap.Status)
	assert.Equal(t, models.PaymentStatusPaid, ap.PaymentStatus)
	assert.NotNil(t, ap.CompletedAt)

	// conclusão + pedido de avaliação
	msgs := notifier.sent()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.NotificationTypeCompleted, msgs[0].Type)
	assert.Equal(t, models.NotificationTypeReviewRequest, msgs[1].Type)
}

func TestCompleteWithPixPayment(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCompleteAppointment(repo, &mockNotifier{}, testDispatcher())

	ap := scheduledAppointment()
	ap.Status = "confirmed"
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	got, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID: "ap-1",
		ActingUserID:  "user-barber-1",
		PaymentMethod: models.PaymentMethodPix,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodPix, got.PaymentMethod)
}

func TestCompleteWrongBarber(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCompleteAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID: "ap-1",
		ActingUserID:  "outro-usuario",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

// ======================================================
// RATE
// ======================================================

func completedAppointment() *models.Appointment {
	ap := scheduledAppointment()
	ap.Status = "completed"
	return ap
}

func TestRateRecordsReviewAndAverage(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRateAppointment(repo, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(completedAppointment(), nil)
	repo.On("RecordReview", mock.Anything, mock.AnythingOfType("*models.Appointment"), mock.AnythingOfType("*models.Review")).
		Return(4.0, nil)

	out, err := uc.Execute(context.Background(), RateAppointmentInput{
		AppointmentID: "ap-1",
		ClientID:      "client-1",
		Score:         5,
		Comment:       "excelente",
	})
	require.NoError(t, err)

	assert.Equal(t, 4.0, out.NewAverage)
	require.NotNil(t, out.Appointment.RatingScore)
	assert.Equal(t, 5, *out.Appointment.RatingScore)

	repo.AssertExpectations(t)
}

func TestRateScheduledFails(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRateAppointment(repo, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)

	_, err := uc.Execute(context.Background(), RateAppointmentInput{
		AppointmentID: "ap-1",
		ClientID:      "client-1",
		Score:         4,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestRateTwiceFails(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRateAppointment(repo, testDispatcher())

	score := 4
	ap := completedAppointment()
	ap.RatingScore = &score
	repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)

	_, err := uc.Execute(context.Background(), RateAppointmentInput{
		AppointmentID: "ap-1",
		ClientID:      "client-1",
		Score:         5,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyRated))
}

func TestRateWrongClient(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRateAppointment(repo, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(completedAppointment(), nil)

	_, err := uc.Execute(context.Background(), RateAppointmentInput{
		AppointmentID: "ap-1",
		ClientID:      "outro-cliente",
		Score:         5,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

func TestRateInvalidScore(t *testing.T) {
	repo := new(mockRepo)
	uc := NewRateAppointment(repo, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(completedAppointment(), nil)

	_, err := uc.Execute(context.Background(), RateAppointmentInput{
		AppointmentID: "ap-1",
		ClientID:      "client-1",
		Score:         6,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationError))
}
