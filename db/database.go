package db

import (
	"fmt"
	"log"

	"github.com/linskybing/reservation-go/config"
	"github.com/linskybing/reservation-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps the package-level handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Class{},
		&models.Room{},
		&models.Equipment{},
		&models.Request{},
		&models.AuditLog{},
	)
}
