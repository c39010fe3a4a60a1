package config

import (
	"log"
	"os"

	"coworka/internal/entity"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectionDb() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Printf("error load env %s", err)
	}

	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disable prepared statements completely
	}), &gorm.Config{
		PrepareStmt: false,
	})
	if err != nil {
		log.Printf("error connect to database %s", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Tenant{},
		&entity.User{},
		&entity.Session{},
		&entity.VerificationToken{},
		&entity.MFASecret{},
		&entity.AuditLog{},
		&entity.Client{},
		&entity.Visitor{},
		&entity.ServiceOffering{},
		&entity.Booking{},
		&entity.Membership{},
		&entity.Invoice{},
		&entity.Lead{},
		&entity.Opportunity{},
		&entity.Quotation{},
		&entity.AccessPoint{},
		&entity.AccessCredential{},
		&entity.AccessLog{},
		&entity.AccessAlert{},
	)
}
