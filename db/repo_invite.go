package db

import (
	"context"
	"errors"
	"time"

	"github.com/HARIOM-JHA01/coachlink360/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertInvite creates or refreshes the invite for one meeting+email pair.
// On conflict the token is replaced and sent_at reset, which silently
// invalidates any previously mailed link. The row is read back after the
// write so dispatch uses the token that actually persisted, never the
// speculative one.
func (r *Repo) UpsertInvite(ctx context.Context, meetingID uint, name, email, token string) (*models.SurveyInvite, error) {
	inv := models.SurveyInvite{
		MeetingID:        meetingID,
		ParticipantName:  name,
		ParticipantEmail: email,
		Token:            token,
		SentAt:           time.Now(),
	}
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "participant_email"}},
		DoUpdates: clause.AssignmentColumns([]string{"participant_name", "token", "sent_at"}),
	}).Create(&inv).Error; err != nil {
		return nil, err
	}

	var out models.SurveyInvite
	if err := r.DB.WithContext(ctx).
		Where("meeting_id = ? AND participant_email = ?", meetingID, email).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) FindInviteByToken(ctx context.Context, token string) (*models.SurveyInvite, error) {
	var inv models.SurveyInvite
	if err := r.DB.WithContext(ctx).Where("token = ?", token).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// SetDeliveryHandle records the provider's message id against an invite.
// Callers treat a failure here as log-only.
func (r *Repo) SetDeliveryHandle(ctx context.Context, inviteID uint, emailID string) error {
	return r.DB.WithContext(ctx).Model(&models.SurveyInvite{}).
		Where("id = ?", inviteID).
		Update("resend_email_id", emailID).Error
}
