package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/HARIOM-JHA01/coachlink360/db"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ *Srv }

func GetAdminController(s *Srv) *AdminController { return &AdminController{Srv: s} }

// GET /api/admin/responses?page=&limit=&q=&id=
// With ?id= this is a single-record lookup (the dashboard's View button);
// otherwise a filtered, paginated listing.
func (ac *AdminController) Responses(c *gin.Context) {
	ctx := c.Request.Context()

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
			return
		}
		row, err := ac.Repo.FindResponseByID(ctx, uint(id))
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found"})
				return
			}
			log.Printf("Error fetching response %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch responses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "result": row})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	q := strings.TrimSpace(c.Query("q"))

	res, err := ac.Repo.ListResponses(ctx, q, page, limit)
	if err != nil {
		log.Printf("Error fetching responses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch responses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"page":    res.Page,
		"limit":   res.Limit,
		"total":   res.Total,
		"results": res.Results,
	})
}

// GET /admin
func (ac *AdminController) Dashboard(c *gin.Context) {
	renderPage(c, http.StatusOK, "admin.html", nil)
}
