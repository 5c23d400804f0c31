package models

import "time"

type Barber struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	BarbershopID string     `gorm:"type:uuid;index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	Specialties string `gorm:"size:255" json:"specialties"`

	// Média derivada das avaliações (1 casa decimal), recalculada a cada review.
	Rating float64 `gorm:"default:0" json:"rating"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review é append-only: uma entrada por agendamento avaliado.
type Review struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index" json:"barber_id"`
	ClientID string `gorm:"type:uuid" json:"client_id"`

	Text  string `gorm:"size:500" json:"text"`
	Score int    `gorm:"not null" json:"score"`

	CreatedAt time.Time `json:"created_at"`
}
