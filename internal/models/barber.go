package models

import "time"

type Barber struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbershop_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`

	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE" json:"bookings,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
