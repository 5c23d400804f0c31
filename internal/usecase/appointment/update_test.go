package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func strPtr(s string) *string { return &s }

func scheduledAppointment() *models.Appointment {
	return &models.Appointment{
		ID:         "ap-1",
		ClientID:   "client-1",
		BarberID:   "barber-1",
		ServiceID:  "svc-1",
		Date:       "2026-09-10",
		StartTime:  "09:00",
		EndTime:    "09:30",
		Status:     "scheduled",
		TotalPrice: 50,
	}
}

// Alterar só as notas não dispara re-checagem de disponibilidade.
func TestUpdateNotesOnlySkipsAvailability(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewUpdateAppointment(repo, notifier, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "client-1",
		RequesterRole: models.RoleClient,
		Patch:         UpdateAppointmentPatch{Notes: strPtr("chegarei 5 min atrasado")},
	})
	require.NoError(t, err)

	assert.Equal(t, "chegarei 5 min atrasado", ap.Notes)
	assert.Equal(t, "09:30", ap.EndTime)

	repo.AssertNotCalled(t, "ListActiveAppointmentsForDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateAppointmentSlot", mock.Anything, mock.Anything)
}

func TestUpdateRescheduleChecksAvailabilityExcludingSelf(t *testing.T) {
	repo := new(mockRepo)
	notifier := &mockNotifier{}
	uc := NewUpdateAppointment(repo, notifier, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetService", mock.Anything, "svc-1").Return(testService(), nil)
	repo.On("ListActiveAppointmentsForDay", mock.Anything, "barber-1", "2026-09-10", "ap-1").
		Return([]models.Appointment{}, nil)
	repo.On("UpdateAppointmentSlot", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "client-1",
		RequesterRole: models.RoleClient,
		Patch:         UpdateAppointmentPatch{StartTime: strPtr("10:00")},
	})
	require.NoError(t, err)

	// endTime acompanha o novo início (duração do serviço mantida)
	assert.Equal(t, "10:00", ap.StartTime)
	assert.Equal(t, "10:30", ap.EndTime)

	repo.AssertExpectations(t)
}

func TestUpdateRescheduleConflict(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetService", mock.Anything, "svc-1").Return(testService(), nil)
	repo.On("ListActiveAppointmentsForDay", mock.Anything, "barber-1", "2026-09-10", "ap-1").
		Return([]models.Appointment{
			{ID: "ap-2", StartTime: "10:00", EndTime: "10:30", Status: "scheduled"},
		}, nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "client-1",
		RequesterRole: models.RoleClient,
		Patch:         UpdateAppointmentPatch{StartTime: strPtr("10:15")},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnavailable))

	repo.AssertNotCalled(t, "UpdateAppointmentSlot", mock.Anything, mock.Anything)
}

func TestUpdateServiceChangeRecomputesPriceAndEnd(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

	longer := &models.Service{ID: "svc-2", Name: "Corte + Barba", DurationMin: 60, Price: 90}

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetService", mock.Anything, "svc-2").Return(longer, nil)
	repo.On("UpdateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(nil)

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "client-1",
		RequesterRole: models.RoleClient,
		Patch:         UpdateAppointmentPatch{ServiceID: strPtr("svc-2")},
	})
	require.NoError(t, err)

	assert.Equal(t, "svc-2", ap.ServiceID)
	assert.Equal(t, "10:00", ap.EndTime)
	assert.Equal(t, 90.0, ap.TotalPrice)
}

func TestUpdateUnauthorized(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "outro-cliente",
		RequesterRole: models.RoleClient,
		Patch:         UpdateAppointmentPatch{Notes: strPtr("x")},
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

func TestUpdateBarberOwnerAllowed(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "ap-1").Return(scheduledAppointment(), nil)
	repo.On("GetBarber", mock.Anything, "barber-1").Return(testBarber(), nil)
	repo.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "ap-1",
		RequesterID:   "user-barber-1",
		RequesterRole: models.RoleBarber,
		Patch:         UpdateAppointmentPatch{Notes: strPtr("cliente avisou atraso")},
	})
	assert.NoError(t, err)
}

func TestUpdateTerminalStates(t *testing.T) {
	for _, status := range []string{"completed", "cancelled"} {
		repo := new(mockRepo)
		uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

		ap := scheduledAppointment()
		ap.Status = status
		repo.On("GetAppointment", mock.Anything, "ap-1").Return(ap, nil)

		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			AppointmentID: "ap-1",
			RequesterID:   "client-1",
			RequesterRole: models.RoleClient,
			Patch:         UpdateAppointmentPatch{Notes: strPtr("x")},
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState), "status %s", status)
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := new(mockRepo)
	uc := NewUpdateAppointment(repo, &mockNotifier{}, testDispatcher())

	repo.On("GetAppointment", mock.Anything, "missing").Return(nil, assert.AnError)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: "missing",
		RequesterID:   "client-1",
		RequesterRole: models.RoleClient,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
