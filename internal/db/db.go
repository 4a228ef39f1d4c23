package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/barber-saas/internal/config"
	"github.com/BruksfildServices01/barber-saas/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-saas/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.SuperAdmin{},
		&models.Service{},
		&models.Barber{},
		&models.Booking{},
		&models.CashEntry{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// barbearias antigas sem semana configurada recebem a padrão
	if week, err := schedule.Serialize(schedule.Default()); err == nil {
		db.Exec(`
            UPDATE barbershops
            SET opening_hours = ?
            WHERE opening_hours IS NULL OR opening_hours = ''
        `, week)
	}

	return db
}
