package db

import (
	"context"
	"errors"

	"github.com/HARIOM-JHA01/coachlink360/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound covers unknown tokens and ids; callers map it to 404.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyCompleted means the invite reached its terminal state before
	// this write; at most one response ever commits.
	ErrAlreadyCompleted = errors.New("survey already completed")
)

type Repo struct{ DB *gorm.DB }

func NewRepo(conn *gorm.DB) *Repo { return &Repo{DB: conn} }

// Meetings

// UpsertMeeting stores the raw webhook payload keyed by session id. A repeat
// ingestion overwrites title and meeting_data in full; the row is read back
// so the caller always gets the generated id.
func (r *Repo) UpsertMeeting(ctx context.Context, sessionID, title string, payload []byte) (*models.Meeting, error) {
	m := models.Meeting{
		SessionID:   sessionID,
		Title:       title,
		MeetingData: datatypes.JSON(payload),
	}
	if err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "meeting_data"}),
	}).Create(&m).Error; err != nil {
		return nil, err
	}

	var out models.Meeting
	if err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) FindMeetingByID(ctx context.Context, id uint) (*models.Meeting, error) {
	var m models.Meeting
	if err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
