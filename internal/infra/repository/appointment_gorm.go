package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&barber, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	barberID string,
	date string,
	excludeID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCancelled),
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID string,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Appointment (create / update)
// --------------------------------------------------

// CreateAppointment re-verifica o conflito dentro da transação com lock
// pessimista; o índice único parcial de slot cobre a corrida restante.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, ""); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})

	if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	return err
}

func (r *AppointmentGormRepository) UpdateAppointmentSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})

	if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	return err
}

// slotConflictQuery seleciona os agendamentos ativos que colidem com o
// slot, com lock pessimista nas linhas. Postgres não aceita FOR UPDATE
// junto de agregação, então o conflito é detectado pelos ids retornados.
func slotConflictQuery(tx *gorm.DB, ap *models.Appointment, excludeID string) *gorm.DB {
	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barber_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
			ap.BarberID,
			ap.Date,
			string(domain.StatusCancelled),
			ap.EndTime,
			ap.StartTime,
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	return q
}

func assertSlotFree(tx *gorm.DB, ap *models.Appointment, excludeID string) error {
	var conflicting []string
	if err := slotConflictQuery(tx, ap, excludeID).Pluck("id", &conflicting).Error; err != nil {
		return err
	}

	if len(conflicting) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	if filter.ClientID != "" {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.BarberID != "" {
		q = q.Where("barber_id = ?", filter.BarberID)
	}
	if filter.BarbershopID != "" {
		q = q.Where("barbershop_id = ?", filter.BarbershopID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.DateFrom != "" && filter.DateTo != "" {
		q = q.Where("date >= ? AND date <= ?", filter.DateFrom, filter.DateTo)
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, start_time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Rating
// --------------------------------------------------

func (r *AppointmentGormRepository) RecordReview(
	ctx context.Context,
	ap *models.Appointment,
	review *models.Review,
) (float64, error) {

	var average float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var scores []int
		if err := tx.Model(&models.Review{}).
			Where("barber_id = ?", review.BarberID).
			Order("created_at ASC").
			Pluck("score", &scores).Error; err != nil {
			return err
		}

		average = domain.AverageRating(scores)

		return tx.Model(&models.Barber{}).
			Where("id = ?", review.BarberID).
			Update("rating", average).Error
	})

	if err != nil {
		return 0, err
	}

	return average, nil
}

// --------------------------------------------------
// Reminder sweep
// --------------------------------------------------

func (r *AppointmentGormRepository) ListRemindableAppointments(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"date = ? AND status IN ? AND reminder_sent = ?",
			date,
			[]string{string(domain.StatusScheduled), string(domain.StatusConfirmed)},
			false,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// MarkReminderSent é um check-and-set atômico da flag de idempotência.
func (r *AppointmentGormRepository) MarkReminderSent(
	ctx context.Context,
	appointmentID string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND reminder_sent = ?", appointmentID, false).
		Update("reminder_sent", true)

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *AppointmentGormRepository) MarkConfirmationSent(
	ctx context.Context,
	appointmentID string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("confirmation_sent", true).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
