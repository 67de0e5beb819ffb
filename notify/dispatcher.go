package notify

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/HARIOM-JHA01/coachlink360/db"
	"github.com/HARIOM-JHA01/coachlink360/mail"
	"github.com/HARIOM-JHA01/coachlink360/models"
)

// Result is the per-participant outcome of one dispatch. Status is "sent"
// or "failed"; exactly one of EmailID/Error carries detail.
type Result struct {
	Email   string `json:"email"`
	Status  string `json:"status"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Dispatcher fans survey emails out over a meeting's invites. Sends run
// concurrently and are joined before returning; one failure never cancels
// or delays the rest of the batch.
type Dispatcher struct {
	Repo    *db.Repo
	Mailer  mail.Mailer
	BaseURL string
}

func NewDispatcher(repo *db.Repo, mailer mail.Mailer, baseURL string) *Dispatcher {
	return &Dispatcher{Repo: repo, Mailer: mailer, BaseURL: baseURL}
}

func (d *Dispatcher) DispatchAll(ctx context.Context, meetingTitle string, invites []*models.SurveyInvite) []Result {
	results := make([]Result, len(invites))
	var wg sync.WaitGroup
	for i, inv := range invites {
		wg.Add(1)
		go func(i int, inv *models.SurveyInvite) {
			defer wg.Done()
			results[i] = d.dispatch(ctx, meetingTitle, inv)
		}(i, inv)
	}
	wg.Wait()
	return results
}

func (d *Dispatcher) dispatch(ctx context.Context, meetingTitle string, inv *models.SurveyInvite) Result {
	if meetingTitle == "" {
		meetingTitle = "Recent Meeting"
	}
	url := d.SurveyURL(inv.Token)

	emailID, err := d.Mailer.SendSurveyEmail(ctx, inv.ParticipantEmail, inv.ParticipantName, meetingTitle, url)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", inv.ParticipantEmail, err)
		return Result{Email: inv.ParticipantEmail, Status: StatusFailed, Error: err.Error()}
	}

	// Best-effort: a lost delivery handle is not worth failing the send over.
	if emailID != "" {
		if err := d.Repo.SetDeliveryHandle(ctx, inv.ID, emailID); err != nil {
			log.Printf("Failed to record email id for %s: %v", inv.ParticipantEmail, err)
		}
	}
	return Result{Email: inv.ParticipantEmail, Status: StatusSent, EmailID: emailID}
}

func (d *Dispatcher) SurveyURL(token string) string {
	return strings.TrimRight(d.BaseURL, "/") + "/api/survey/" + token
}
