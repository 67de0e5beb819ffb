package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HARIOM-JHA01/coachlink360/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateResponse records a response and completes its invite in one
// transaction. The completion is a conditional update guarded on
// completed_at IS NULL: zero affected rows means another submission won
// the race (or the invite was already done) and nothing is written.
func (r *Repo) CreateResponse(ctx context.Context, inviteID uint, resp *models.SurveyResponse) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&models.SurveyInvite{}).
			Where("id = ? AND completed_at IS NULL", inviteID).
			Update("completed_at", &now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyCompleted
		}
		resp.SurveyInviteID = inviteID
		resp.SubmittedAt = now
		return tx.Create(resp).Error
	})
}

// ResponseRow is one joined row of response + invite + meeting, the unit
// the admin surface works with.
type ResponseRow struct {
	ID                     uint           `json:"id"`
	SubmittedAt            time.Time      `json:"submitted_at"`
	Punctuality            int            `json:"punctuality"`
	ListeningUnderstanding int            `json:"listening_understanding"`
	KnowledgeExpertise     int            `json:"knowledge_expertise"`
	ClarityAnswers         int            `json:"clarity_answers"`
	OverallValue           int            `json:"overall_value"`
	MostValuable           *string        `json:"most_valuable"`
	Improvements           *string        `json:"improvements"`
	ResponseData           datatypes.JSON `json:"response_data"`
	ParticipantEmail       string         `json:"participant_email"`
	ParticipantName        string         `json:"participant_name"`
	MeetingID              uint           `json:"meeting_id"`
	MeetingTitle           string         `json:"meeting_title"`
}

type ListResponsesResult struct {
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Total   int64         `json:"total"`
	Results []ResponseRow `json:"results"`
}

const responseRowSelect = `sr.id, sr.submitted_at, sr.punctuality, sr.listening_understanding,
sr.knowledge_expertise, sr.clarity_answers, sr.overall_value, sr.most_valuable,
sr.improvements, sr.response_data, si.participant_email, si.participant_name,
m.id AS meeting_id, m.title AS meeting_title`

func (r *Repo) responseRows(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table(models.ResponseTable+" sr").
		Joins("JOIN "+models.InviteTable+" si ON sr.survey_invite_id = si.id").
		Joins("JOIN "+models.MeetingTable+" m ON si.meeting_id = m.id")
}

// ListResponses pages the joined rows, newest first. The search term
// matches participant email or meeting title, case-insensitively; total is
// counted under the same filter.
func (r *Repo) ListResponses(ctx context.Context, q string, page, limit int) (ListResponsesResult, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	tx := r.responseRows(ctx)
	if q = strings.TrimSpace(q); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(si.participant_email) LIKE ? OR LOWER(m.title) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ListResponsesResult{}, err
	}

	rows := make([]ResponseRow, 0, limit)
	if err := tx.
		Select(responseRowSelect).
		Order("sr.submitted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return ListResponsesResult{}, err
	}
	return ListResponsesResult{Page: page, Limit: limit, Total: total, Results: rows}, nil
}

func (r *Repo) FindResponseByID(ctx context.Context, id uint) (*ResponseRow, error) {
	var row ResponseRow
	if err := r.responseRows(ctx).
		Select(responseRowSelect).
		Where("sr.id = ?", id).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
