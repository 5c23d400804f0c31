package models

import "time"

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	PaymentMethodCash  = "cash"
	PaymentMethodCard  = "card"
	PaymentMethodPix   = "pix"
	PaymentMethodOther = "other"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string `gorm:"type:uuid;index" json:"client_id"`
	Client   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	BarberID string `gorm:"type:uuid;index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	BarbershopID string     `gorm:"type:uuid;index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	ServiceID string  `gorm:"type:uuid" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Data sem componente de hora; horários em HH:MM (granularidade de minuto).
	Date      string `gorm:"size:10;not null;index" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Preço congelado do serviço no momento da reserva.
	TotalPrice    float64 `json:"total_price"`
	PaymentStatus string  `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentMethod string  `gorm:"size:20;default:'cash'" json:"payment_method"`

	Notes string `gorm:"size:255" json:"notes"`

	// Avaliação: definível uma única vez, somente após conclusão.
	RatingScore   *int       `json:"rating_score"`
	RatingComment string     `gorm:"size:500" json:"rating_comment"`
	RatedAt       *time.Time `json:"rated_at"`

	// Flags de idempotência para não duplicar envios.
	ReminderSent     bool `gorm:"default:false" json:"reminder_sent"`
	ConfirmationSent bool `gorm:"default:false" json:"confirmation_sent"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
