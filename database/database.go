package database

import (
	"fmt"
	"log"
	"os"

	"rhapsody-languages/internal/domain/billing"
	"rhapsody-languages/internal/domain/languages"
	"rhapsody-languages/internal/domain/plans"
	"rhapsody-languages/internal/domain/signup"
	"rhapsody-languages/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&signup.Session{},
		&plans.Plan{},
		&billing.Payment{},

		// catalogue
		&languages.Language{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
