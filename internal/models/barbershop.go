package models

import "time"

type Barbershop struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	Address      string `gorm:"size:255" json:"address"`
	LogoURL      string `gorm:"size:255" json:"logo_url"`

	// Semana de funcionamento serializada em JSON (ver domain/schedule).
	OpeningHours string `gorm:"type:text" json:"opening_hours"`

	Services    []Service   `gorm:"constraint:OnDelete:CASCADE" json:"services,omitempty"`
	Barbers     []Barber    `gorm:"constraint:OnDelete:CASCADE" json:"barbers,omitempty"`
	Bookings    []Booking   `gorm:"constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
	CashEntries []CashEntry `gorm:"constraint:OnDelete:CASCADE" json:"cash_entries,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
