package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ListFilter restringe listagens de agendamentos (igualdade simples,
// campos vazios são ignorados).
type ListFilter struct {
	ClientID     string
	BarberID     string
	BarbershopID string
	Status       string
	Date         string
	DateFrom     string
	DateTo       string
}

// Repository é a capacidade de persistência consumida pelos use cases.
// Implementações devem garantir atomicidade no check-then-insert de
// slots (transação serializável ou constraint única como backstop).
type Repository interface {
	// -------- Lookups --------
	GetUser(ctx context.Context, id string) (*models.User, error)

	GetBarber(ctx context.Context, id string) (*models.Barber, error)

	GetService(ctx context.Context, id string) (*models.Service, error)

	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// -------- Availability --------

	// ListActiveAppointmentsForDay retorna agendamentos não cancelados do
	// barbeiro na data, excluindo excludeID quando informado.
	ListActiveAppointmentsForDay(
		ctx context.Context,
		barberID string,
		date string,
		excludeID string,
	) ([]models.Appointment, error)

	GetWorkingHours(
		ctx context.Context,
		barberID string,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Appointment (create / update) --------

	// CreateAppointment insere dentro de uma transação que re-verifica o
	// conflito de horário; retorna slot_unavailable em caso de corrida.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// UpdateAppointmentSlot persiste um reagendamento re-verificando o
	// conflito (excluindo o próprio id) na mesma transação.
	UpdateAppointmentSlot(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	ListAppointments(ctx context.Context, filter ListFilter) ([]models.Appointment, error)

	// -------- Rating --------

	// RecordReview persiste a avaliação no agendamento, acrescenta a
	// review do barbeiro e recalcula a média, tudo na mesma transação.
	// Retorna a nova média.
	RecordReview(
		ctx context.Context,
		ap *models.Appointment,
		review *models.Review,
	) (float64, error)

	// -------- Reminder sweep --------

	ListRemindableAppointments(ctx context.Context, date string) ([]models.Appointment, error)

	// MarkReminderSent liga a flag de idempotência; retorna false se já
	// estava ligada (outro sweep chegou primeiro).
	MarkReminderSent(ctx context.Context, appointmentID string) (bool, error)

	MarkConfirmationSent(ctx context.Context, appointmentID string) error
}
