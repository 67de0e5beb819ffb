package models

import "time"

const InviteTable = "survey_invites"

// SurveyInvite is a per-participant, per-meeting credential. The token is
// the only handle a participant ever sees; re-ingesting the same
// meeting+email pair rotates it, which invalidates the old link.
type SurveyInvite struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	MeetingID        uint       `gorm:"not null;uniqueIndex:idx_invites_meeting_email" json:"meeting_id"`
	Meeting          Meeting    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ParticipantName  string     `gorm:"size:255" json:"participant_name"`
	ParticipantEmail string     `gorm:"size:255;uniqueIndex:idx_invites_meeting_email" json:"participant_email"`
	Token            string     `gorm:"uniqueIndex;size:255;not null" json:"token"`
	SentAt           time.Time  `json:"sent_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	ResendEmailID    *string    `gorm:"size:255" json:"resend_email_id"`
}
