package db

import (
	"log"

	"github.com/HARIOM-JHA01/coachlink360/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres pool and runs migrations. A failure here is
// fatal: the service has no degraded mode without storage.
func ConnectDB(dsn string) *gorm.DB {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&models.Meeting{}, &models.SurveyInvite{}, &models.SurveyResponse{})
}
