package main

import (
	"log"

	"github.com/HARIOM-JHA01/coachlink360/app"
	"github.com/HARIOM-JHA01/coachlink360/config"
	"github.com/HARIOM-JHA01/coachlink360/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	routes.RegisterRoutes(application.Router, application)

	port := application.Config.Port
	log.Printf("listening on :%s", port)
	_ = application.Router.Run(":" + port)
}
