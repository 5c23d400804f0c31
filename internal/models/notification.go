package models

import "time"

const (
	NotificationTypeReminder      = "appointment_reminder"
	NotificationTypeConfirmation  = "appointment_confirmation"
	NotificationTypeCancelation   = "appointment_cancelation"
	NotificationTypeCompleted     = "appointment_completed"
	NotificationTypeReviewRequest = "review_request"
	NotificationTypeSystem        = "system_message"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
	ChannelInApp = "in_app"
)

const (
	RelatedKindAppointment = "appointment"
	RelatedKindBarbershop  = "barbershop"
	RelatedKindService     = "service"
)

type Notification struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	RecipientID string `gorm:"type:uuid;index" json:"recipient_id"`

	Type    string `gorm:"size:50;not null" json:"type"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500;not null" json:"message"`

	// Referência tipada à entidade relacionada.
	RelatedKind string `gorm:"size:20" json:"related_kind"`
	RelatedID   string `gorm:"type:uuid" json:"related_id"`

	Channel string `gorm:"size:10;not null" json:"channel"`

	Status string `gorm:"size:10;default:'pending'" json:"status"`
	Error  string `gorm:"size:255" json:"error"`
	IsRead bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
