package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/config"
	"github.com/washapp/carwash-api/internal/models"
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
		&models.Role{},
		&models.User{},
		&models.Profile{},
		&models.Service{},
		&models.ServicePrice{},
		&models.Booking{},
		&models.Transaction{},
		&models.Testimonial{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// backstop do advisory lock: mesmo que uma criação escape da
	// serialização, duas placas iguais não entram no mesmo dia
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_plate_per_day
		 ON bookings (license_plate, (created_at::date))`,
	).Error; err != nil {
		log.Fatalf("failed to create plate-per-day index: %v", err)
	}

	seedRoles(db)

	return db
}

func seedRoles(db *gorm.DB) {
	for _, name := range []models.RoleName{models.RoleAdmin, models.RoleUser} {
		var count int64
		if err := db.Model(&models.Role{}).Where("name = ?", string(name)).Count(&count).Error; err != nil {
			log.Printf("failed to check role %s: %v", name, err)
			continue
		}
		if count == 0 {
			if err := db.Create(&models.Role{Name: string(name)}).Error; err != nil {
				log.Printf("failed to seed role %s: %v", name, err)
			}
		}
	}
}
