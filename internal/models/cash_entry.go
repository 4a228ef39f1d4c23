package models

import "time"

// CashEntry registra receita avulsa (fora de agendamentos).
type CashEntry struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index;not null" json:"barbershop_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Value       float64 `json:"value"`
	Date        string  `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
}
