package mail

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers one survey email and returns the provider's message id.
// An empty id with a nil error means the backend has no delivery handle.
type Mailer interface {
	SendSurveyEmail(ctx context.Context, to, participantName, meetingTitle, surveyURL string) (string, error)
}

type ResendMailer struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

func NewResendMailer(apiKey, fromName, fromEmail string) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *ResendMailer) SendSurveyEmail(ctx context.Context, to, participantName, meetingTitle, surveyURL string) (string, error) {
	html, err := renderSurveyEmail(participantName, meetingTitle, surveyURL)
	if err != nil {
		return "", fmt.Errorf("render survey email: %w", err)
	}
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail),
		To:      []string{to},
		Subject: "Feedback Request: " + meetingTitle,
		Html:    html,
	})
	if err != nil {
		return "", err
	}
	log.Printf("Survey email sent to %s: %s", to, sent.Id)
	return sent.Id, nil
}

// DevMailer is the no-credentials fallback: it logs the survey link
// instead of sending, so local runs never need a provider account.
type DevMailer struct{}

func (DevMailer) SendSurveyEmail(_ context.Context, to, _, _ string, surveyURL string) (string, error) {
	log.Printf("[DEV] Survey link for %s: %s", to, surveyURL)
	return "", nil
}
