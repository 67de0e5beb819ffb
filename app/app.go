package app

import (
	"log"

	"github.com/HARIOM-JHA01/coachlink360/config"
	"github.com/HARIOM-JHA01/coachlink360/db"
	"github.com/HARIOM-JHA01/coachlink360/mail"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Shorthand for handlers.
type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies: one DB pool, one mailer,
// one router. Everything is constructed here and passed down explicitly.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Mailer mail.Mailer
	Config config.Config
}

func MustNew() *App {
	cfg := config.Load()

	dbConn := db.ConnectDB(cfg.DatabaseURL)

	var mailer mail.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = mail.NewResendMailer(cfg.ResendAPIKey, cfg.FromName, cfg.FromEmail)
	} else {
		log.Println("RESEND_API_KEY not set, survey links will be logged instead of emailed")
		mailer = mail.DevMailer{}
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: dbConn, Mailer: mailer, Config: cfg}
}

func (a *App) Close() {
	if sqlDB, err := a.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
