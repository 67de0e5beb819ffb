package controllers

import (
	"github.com/HARIOM-JHA01/coachlink360/app"
	"github.com/HARIOM-JHA01/coachlink360/config"
	"github.com/HARIOM-JHA01/coachlink360/db"
	"github.com/HARIOM-JHA01/coachlink360/notify"
)

// Srv is the shared dependency bundle the controllers hang off.
type Srv struct {
	Repo       *db.Repo
	Dispatcher *notify.Dispatcher
	Cfg        config.Config
}

func GetSrv(a *app.App) *Srv {
	repo := db.NewRepo(a.DB)
	return &Srv{
		Repo:       repo,
		Dispatcher: notify.NewDispatcher(repo, a.Mailer, a.Config.BaseURL),
		Cfg:        a.Config,
	}
}
