package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const ResponseTable = "survey_responses"

// SurveyResponse is immutable once written; at most one exists per invite.
type SurveyResponse struct {
	ID                     uint           `gorm:"primaryKey" json:"id"`
	SurveyInviteID         uint           `gorm:"index;not null" json:"survey_invite_id"`
	Invite                 SurveyInvite   `gorm:"foreignKey:SurveyInviteID;constraint:OnDelete:CASCADE" json:"-"`
	Punctuality            int            `gorm:"not null;check:punctuality >= 1 AND punctuality <= 5" json:"punctuality"`
	ListeningUnderstanding int            `gorm:"not null;check:listening_understanding >= 1 AND listening_understanding <= 5" json:"listening_understanding"`
	KnowledgeExpertise     int            `gorm:"not null;check:knowledge_expertise >= 1 AND knowledge_expertise <= 5" json:"knowledge_expertise"`
	ClarityAnswers         int            `gorm:"not null;check:clarity_answers >= 1 AND clarity_answers <= 5" json:"clarity_answers"`
	OverallValue           int            `gorm:"not null;check:overall_value >= 1 AND overall_value <= 5" json:"overall_value"`
	MostValuable           *string        `json:"most_valuable"`
	Improvements           *string        `json:"improvements"`
	ResponseData           datatypes.JSON `json:"response_data"`
	SubmittedAt            time.Time      `json:"submitted_at"`
}

// Rating decodes a 1-5 score from an untrusted submission. The survey form
// serializes radio values as strings, so both 4 and "4" must parse; anything
// non-numeric is a decode error. Zero means the question was not answered.
type Rating int

func (r *Rating) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("rating must be a number, got %s", s)
	}
	*r = Rating(n)
	return nil
}

func (r Rating) Answered() bool { return r != 0 }

func (r Rating) InRange() bool { return r >= 1 && r <= 5 }
