package repository

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-saas/internal/models"
)

type CredentialsGormRepository struct {
	db *gorm.DB
}

func NewCredentialsGormRepository(db *gorm.DB) *CredentialsGormRepository {
	return &CredentialsGormRepository{db: db}
}

// ShopByEmail devolve (nil, nil) quando não há barbearia com o e-mail.
func (r *CredentialsGormRepository) ShopByEmail(email string) (*models.Barbershop, error) {
	var shop models.Barbershop
	err := r.db.Where("email = ?", email).First(&shop).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *CredentialsGormRepository) AdminByEmail(email string) (*models.SuperAdmin, error) {
	var admin models.SuperAdmin
	err := r.db.Where("email = ?", email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
