package routes

import (
	"net/http"
	"time"

	"github.com/HARIOM-JHA01/coachlink360/app"
	"github.com/HARIOM-JHA01/coachlink360/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	webhookCtl := controllers.GetWebhookController(s)
	surveyCtl := controllers.GetSurveyController(s)
	adminCtl := controllers.GetAdminController(s)

	adminMW := app.AdminRequired(a.Config)

	api := r.Group("/api")
	{
		api.POST("/webhook", webhookCtl.Receive)
		api.GET("/webhook", webhookCtl.Describe)

		api.GET("/survey/:token", surveyCtl.View)
		api.POST("/survey/:token", surveyCtl.Submit)

		api.GET("/admin/responses", adminMW, adminCtl.Responses)
	}

	admin := r.Group("/admin", adminMW)
	{
		admin.GET("", adminCtl.Dashboard)
		admin.GET("/responses", adminCtl.Responses)
	}

	r.GET("/health", func(c *app.Ctx) {
		c.JSON(http.StatusOK, app.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
