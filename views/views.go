package views

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

// Render executes the named page template. Participant names and meeting
// titles come from untrusted webhook payloads, so everything goes through
// html/template escaping.
func Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SurveyFormData fills survey_form.html.
type SurveyFormData struct {
	Token           string
	ParticipantName string
	MeetingTitle    string
}

// CompletedData fills completed.html.
type CompletedData struct {
	SubmittedAt string
}
