package appointment

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notification"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) GetBarber(ctx context.Context, id string) (*models.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *mockRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *mockRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) ListActiveAppointmentsForDay(
	ctx context.Context,
	barberID string,
	date string,
	excludeID string,
) ([]models.Appointment, error) {
	args := m.Called(ctx, barberID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) GetWorkingHours(ctx context.Context, barberID string, weekday int) (*models.WorkingHours, error) {
	args := m.Called(ctx, barberID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkingHours), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) UpdateAppointmentSlot(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) RecordReview(ctx context.Context, ap *models.Appointment, review *models.Review) (float64, error) {
	args := m.Called(ctx, ap, review)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockRepo) ListRemindableAppointments(ctx context.Context, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockRepo) MarkReminderSent(ctx context.Context, appointmentID string) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) MarkConfirmationSent(ctx context.Context, appointmentID string) error {
	return m.Called(ctx, appointmentID).Error(0)
}

var _ domain.Repository = (*mockRepo)(nil)

// mockNotifier acumula as mensagens pedidas.
type mockNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (m *mockNotifier) Notify(_ context.Context, msg notification.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockNotifier) sent() []notification.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]notification.Message, len(m.messages))
	copy(out, m.messages)
	return out
}
