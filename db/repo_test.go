package db_test

import (
	"context"
	"testing"

	"github.com/HARIOM-JHA01/coachlink360/db"
	"github.com/HARIOM-JHA01/coachlink360/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *db.Repo {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))
	return db.NewRepo(conn)
}

func seedResponse(t *testing.T, repo *db.Repo, inviteID uint, mostValuable string) *models.SurveyResponse {
	t.Helper()
	resp := &models.SurveyResponse{
		Punctuality:            5,
		ListeningUnderstanding: 4,
		KnowledgeExpertise:     3,
		ClarityAnswers:         4,
		OverallValue:           5,
		ResponseData:           []byte(`{"punctuality":"5"}`),
	}
	if mostValuable != "" {
		resp.MostValuable = &mostValuable
	}
	require.NoError(t, repo.CreateResponse(context.Background(), inviteID, resp))
	return resp
}

func TestUpsertMeetingReplacesBySessionID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff", []byte(`{"title":"Kickoff"}`))
	require.NoError(t, err)

	second, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff v2", []byte(`{"title":"Kickoff v2"}`))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Kickoff v2", second.Title)
	assert.JSONEq(t, `{"title":"Kickoff v2"}`, string(second.MeetingData))

	var count int64
	require.NoError(t, repo.DB.Model(&models.Meeting{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertMeetingDistinctSessions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.UpsertMeeting(ctx, "sess-a", "A", []byte(`{}`))
	require.NoError(t, err)
	b, err := repo.UpsertMeeting(ctx, "sess-b", "B", []byte(`{}`))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpsertInviteRotatesToken(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff", []byte(`{}`))
	require.NoError(t, err)

	first, err := repo.UpsertInvite(ctx, m.ID, "Alice", "alice@example.com", "token-1")
	require.NoError(t, err)
	assert.Equal(t, "token-1", first.Token)

	second, err := repo.UpsertInvite(ctx, m.ID, "Alice B", "alice@example.com", "token-2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "token-2", second.Token)
	assert.Equal(t, "Alice B", second.ParticipantName)

	// the replaced token no longer resolves
	_, err = repo.FindInviteByToken(ctx, "token-1")
	assert.ErrorIs(t, err, db.ErrNotFound)

	found, err := repo.FindInviteByToken(ctx, "token-2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	var count int64
	require.NoError(t, repo.DB.Model(&models.SurveyInvite{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertInviteSeparatePerParticipant(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff", []byte(`{}`))
	require.NoError(t, err)

	_, err = repo.UpsertInvite(ctx, m.ID, "Alice", "alice@example.com", "token-a")
	require.NoError(t, err)
	_, err = repo.UpsertInvite(ctx, m.ID, "Bob", "bob@example.com", "token-b")
	require.NoError(t, err)

	var count int64
	require.NoError(t, repo.DB.Model(&models.SurveyInvite{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateResponseCompletesInviteOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff", []byte(`{}`))
	require.NoError(t, err)
	inv, err := repo.UpsertInvite(ctx, m.ID, "Alice", "alice@example.com", "token-1")
	require.NoError(t, err)

	seedResponse(t, repo, inv.ID, "the demo")

	completed, err := repo.FindInviteByToken(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	// a second submission must not write a second row
	err = repo.CreateResponse(ctx, inv.ID, &models.SurveyResponse{
		Punctuality: 1, ListeningUnderstanding: 1, KnowledgeExpertise: 1,
		ClarityAnswers: 1, OverallValue: 1,
	})
	assert.ErrorIs(t, err, db.ErrAlreadyCompleted)

	var count int64
	require.NoError(t, repo.DB.Model(&models.SurveyResponse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSetDeliveryHandle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.UpsertMeeting(ctx, "sess-1", "Kickoff", []byte(`{}`))
	require.NoError(t, err)
	inv, err := repo.UpsertInvite(ctx, m.ID, "Alice", "alice@example.com", "token-1")
	require.NoError(t, err)

	require.NoError(t, repo.SetDeliveryHandle(ctx, inv.ID, "em_123"))

	updated, err := repo.FindInviteByToken(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, updated.ResendEmailID)
	assert.Equal(t, "em_123", *updated.ResendEmailID)
}

func TestListResponsesFilterAndPagination(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m1, err := repo.UpsertMeeting(ctx, "sess-1", "Weekly Sync", []byte(`{}`))
	require.NoError(t, err)
	m2, err := repo.UpsertMeeting(ctx, "sess-2", "Alice Planning", []byte(`{}`))
	require.NoError(t, err)

	invA, err := repo.UpsertInvite(ctx, m1.ID, "Alice", "alice@example.com", "token-a")
	require.NoError(t, err)
	invB, err := repo.UpsertInvite(ctx, m1.ID, "Bob", "bob@example.com", "token-b")
	require.NoError(t, err)
	invC, err := repo.UpsertInvite(ctx, m2.ID, "Bob", "bob@example.com", "token-c")
	require.NoError(t, err)

	seedResponse(t, repo, invA.ID, "first")
	seedResponse(t, repo, invB.ID, "second")
	seedResponse(t, repo, invC.ID, "third")

	all, err := repo.ListResponses(ctx, "", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
	assert.Len(t, all.Results, 3)

	// matches alice@example.com by email and "Alice Planning" by title
	filtered, err := repo.ListResponses(ctx, "ALICE", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 2, filtered.Total)
	for _, row := range filtered.Results {
		matched := row.ParticipantEmail == "alice@example.com" || row.MeetingTitle == "Alice Planning"
		assert.True(t, matched, "row %d should match the filter", row.ID)
	}

	// offset pagination with total counted over the whole filtered set
	page2, err := repo.ListResponses(ctx, "", 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page2.Total)
	assert.Len(t, page2.Results, 1)
	assert.Equal(t, 2, page2.Page)
	assert.Equal(t, 1, page2.Limit)

	// newest first
	require.Len(t, all.Results, 3)
	assert.False(t, all.Results[0].SubmittedAt.Before(all.Results[1].SubmittedAt))
	assert.False(t, all.Results[1].SubmittedAt.Before(all.Results[2].SubmittedAt))
}

func TestListResponsesClampsLimit(t *testing.T) {
	repo := newTestRepo(t)

	res, err := repo.ListResponses(context.Background(), "", 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 200, res.Limit)
	assert.NotNil(t, res.Results)
}

func TestFindResponseByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	m, err := repo.UpsertMeeting(ctx, "sess-1", "Weekly Sync", []byte(`{}`))
	require.NoError(t, err)
	inv, err := repo.UpsertInvite(ctx, m.ID, "Alice", "alice@example.com", "token-a")
	require.NoError(t, err)
	resp := seedResponse(t, repo, inv.ID, "the roadmap")

	row, err := repo.FindResponseByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", row.ParticipantEmail)
	assert.Equal(t, "Alice", row.ParticipantName)
	assert.Equal(t, "Weekly Sync", row.MeetingTitle)
	assert.Equal(t, m.ID, row.MeetingID)
	require.NotNil(t, row.MostValuable)
	assert.Equal(t, "the roadmap", *row.MostValuable)

	_, err = repo.FindResponseByID(ctx, 99999)
	assert.ErrorIs(t, err, db.ErrNotFound)
}
