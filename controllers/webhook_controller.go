package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/HARIOM-JHA01/coachlink360/models"
	"github.com/HARIOM-JHA01/coachlink360/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookController struct{ *Srv }

func GetWebhookController(s *Srv) *WebhookController { return &WebhookController{Srv: s} }

// POST /api/webhook
func (wc *WebhookController) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to read request body"})
		return
	}
	var payload models.MeetingPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid JSON payload"})
		return
	}

	sessionID := payload.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	log.Printf("Webhook received: session_id=%s trigger=%s participants=%d",
		sessionID, payload.Trigger, len(payload.Participants))

	ctx := c.Request.Context()
	meeting, err := wc.Repo.UpsertMeeting(ctx, sessionID, payload.Title, body)
	if err != nil {
		log.Printf("Webhook error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to store meeting"})
		return
	}

	// Participants without an email can't be surveyed; skip them silently.
	valid := make([]models.Participant, 0, len(payload.Participants))
	for _, p := range payload.Participants {
		if strings.TrimSpace(p.Email) != "" {
			p.Email = strings.TrimSpace(p.Email)
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Meeting data stored, but no participants with email found",
			"meeting_id": meeting.ID,
		})
		return
	}

	invites := make([]*models.SurveyInvite, 0, len(valid))
	var issueFailures []notify.Result
	for _, p := range valid {
		inv, err := wc.Repo.UpsertInvite(ctx, meeting.ID, p.Name, p.Email, uuid.NewString())
		if err != nil {
			log.Printf("Failed to issue invite for %s: %v", p.Email, err)
			issueFailures = append(issueFailures, notify.Result{
				Email: p.Email, Status: notify.StatusFailed, Error: err.Error(),
			})
			continue
		}
		invites = append(invites, inv)
	}

	results := wc.Dispatcher.DispatchAll(ctx, payload.Title, invites)
	results = append(results, issueFailures...)

	sent, failed := 0, 0
	for _, r := range results {
		if r.Status == notify.StatusSent {
			sent++
		} else {
			failed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Meeting data received and survey emails sent",
		"meeting_id":    meeting.ID,
		"emails_sent":   sent,
		"emails_failed": failed,
		"details":       results,
	})
}

// GET /api/webhook
func (wc *WebhookController) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Webhook endpoint is active",
		"usage":   "Send POST request with meeting data",
		"example": gin.H{
			"session_id": "unique-session-id",
			"title":      "Meeting Title",
			"participants": []gin.H{
				{"name": "John Doe", "email": "john@example.com"},
			},
		},
	})
}
