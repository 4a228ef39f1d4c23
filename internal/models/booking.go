package models

import "time"

// Booking nunca é alterado depois de criado, apenas removido.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint `gorm:"index;not null" json:"barbershop_id"`
	ServiceID    uint `gorm:"not null" json:"service_id"`
	BarberID     uint `gorm:"index;not null" json:"barber_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`

	// Data e hora locais, sem fuso (ex: "2024-01-01T09:00").
	DateTime string `gorm:"size:20;not null" json:"date_time"`

	CreatedAt time.Time `json:"created_at"`
}
