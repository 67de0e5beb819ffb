package app

import (
	"net/http"

	"github.com/HARIOM-JHA01/coachlink360/config"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates the admin surface behind the shared secret. With no
// ADMIN_TOKEN configured the endpoints are open; that is the documented
// (and risky) default, kept for parity with zero-config deployments.
func AdminRequired(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminToken == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("x-admin-token")
		if provided == "" {
			provided = c.Query("token")
		}
		if provided != cfg.AdminToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
