package database

import (
	"log"
	"time"

	"github.com/copool/chat-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Mirror rows arrive from the platform in arbitrary order; a booking
		// can land before its ride or user. No cross-table constraints.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(40)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&models.User{}, &models.Ride{}, &models.Booking{}, &models.ChatMessage{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// History reads are always per ride in send order
	db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_chat_messages_ride_created
		ON chat_messages (ride_id, created_at)
	`)

	return db
}
