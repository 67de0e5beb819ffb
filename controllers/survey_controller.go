package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/HARIOM-JHA01/coachlink360/db"
	"github.com/HARIOM-JHA01/coachlink360/models"
	"github.com/HARIOM-JHA01/coachlink360/views"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SurveyController struct{ *Srv }

func GetSurveyController(s *Srv) *SurveyController { return &SurveyController{Srv: s} }

func renderPage(c *gin.Context, status int, name string, data any) {
	page, err := views.Render(name, data)
	if err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Failed to load survey. Please try again later.")
		return
	}
	c.Data(status, "text/html; charset=utf-8", page)
}

// GET /api/survey/:token
func (sc *SurveyController) View(c *gin.Context) {
	ctx := c.Request.Context()

	inv, err := sc.Repo.FindInviteByToken(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			renderPage(c, http.StatusNotFound, "not_found.html", nil)
			return
		}
		log.Printf("Error loading survey: %v", err)
		c.String(http.StatusInternalServerError, "Failed to load survey. Please try again later.")
		return
	}

	// Revisiting a finished survey is safe; it just shows when it was done.
	if inv.CompletedAt != nil {
		renderPage(c, http.StatusOK, "completed.html", views.CompletedData{
			SubmittedAt: inv.CompletedAt.Format("January 2, 2006 at 3:04 PM"),
		})
		return
	}

	title := "Recent Meeting"
	if m, err := sc.Repo.FindMeetingByID(ctx, inv.MeetingID); err == nil && m.Title != "" {
		title = m.Title
	}
	renderPage(c, http.StatusOK, "survey_form.html", views.SurveyFormData{
		Token:           inv.Token,
		ParticipantName: inv.ParticipantName,
		MeetingTitle:    title,
	})
}

type surveySubmission struct {
	Punctuality            models.Rating `json:"punctuality"`
	ListeningUnderstanding models.Rating `json:"listening_understanding"`
	KnowledgeExpertise     models.Rating `json:"knowledge_expertise"`
	ClarityAnswers         models.Rating `json:"clarity_answers"`
	OverallValue           models.Rating `json:"overall_value"`
	MostValuable           string        `json:"most_valuable"`
	Improvements           string        `json:"improvements"`
}

func (s surveySubmission) ratings() []models.Rating {
	return []models.Rating{
		s.Punctuality, s.ListeningUnderstanding, s.KnowledgeExpertise,
		s.ClarityAnswers, s.OverallValue,
	}
}

// POST /api/survey/:token
func (sc *SurveyController) Submit(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}
	var in surveySubmission
	if err := json.Unmarshal(body, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All ratings must be between 1 and 5"})
		return
	}
	for _, r := range in.ratings() {
		if !r.Answered() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All rating questions are required"})
			return
		}
	}
	for _, r := range in.ratings() {
		if !r.InRange() {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All ratings must be between 1 and 5"})
			return
		}
	}

	ctx := c.Request.Context()
	inv, err := sc.Repo.FindInviteByToken(ctx, c.Param("token"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Survey not found"})
			return
		}
		log.Printf("Error submitting survey: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit survey"})
		return
	}
	if inv.CompletedAt != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Survey already completed"})
		return
	}

	resp := models.SurveyResponse{
		Punctuality:            int(in.Punctuality),
		ListeningUnderstanding: int(in.ListeningUnderstanding),
		KnowledgeExpertise:     int(in.KnowledgeExpertise),
		ClarityAnswers:         int(in.ClarityAnswers),
		OverallValue:           int(in.OverallValue),
		MostValuable:           optional(in.MostValuable),
		Improvements:           optional(in.Improvements),
		ResponseData:           datatypes.JSON(body),
	}
	if err := sc.Repo.CreateResponse(ctx, inv.ID, &resp); err != nil {
		if errors.Is(err, db.ErrAlreadyCompleted) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Survey already completed"})
			return
		}
		log.Printf("Error submitting survey: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit survey"})
		return
	}

	log.Printf("Survey completed for token: %s", inv.Token)
	renderPage(c, http.StatusOK, "thanks.html", nil)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
