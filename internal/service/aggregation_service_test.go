package service

import (
	"testing"
	"time"

	"github.com/hmcall/quizden/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, id string, point int) {
	t.Helper()
	require.NoError(t, repo.Update(&model.User{
		ID:       id,
		Name:     "user " + id,
		Nickname: id,
		Role:     model.RoleUser,
		Point:    point,
	}))
}

func seedScoredAnswer(t *testing.T, repo *fakeAnswerRepo, id, gameID, userID string, point int) {
	t.Helper()
	solvedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateBatch([]model.Answer{{
		ID:        id,
		GameID:    gameID,
		UserID:    userID,
		Status:    model.AnswerStatusSubmitted,
		IsCorrect: true,
		SolvedAt:  &solvedAt,
		Point:     point,
		CreatedAt: solvedAt,
		UpdatedAt: solvedAt,
	}}))
}

func TestRecomputeUserTotals_SumsAcrossGames(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "u1", 999) // stale total, must be overwritten
	seedScoredAnswer(t, answerRepo, "a1", "g1", "u1", 17)
	seedScoredAnswer(t, answerRepo, "a2", "g2", "u1", 6)

	svc := NewAggregationService(answerRepo, userRepo)
	require.NoError(t, svc.RecomputeUserTotals("g1"))

	user, err := userRepo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 23, user.Point)
}

func TestRecomputeUserTotals_OnlySolversOfGame(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "u1", 0)
	seedUser(t, userRepo, "u2", 42)
	seedScoredAnswer(t, answerRepo, "a1", "g1", "u1", 17)
	seedScoredAnswer(t, answerRepo, "b1", "g2", "u2", 6)

	svc := NewAggregationService(answerRepo, userRepo)
	require.NoError(t, svc.RecomputeUserTotals("g1"))

	u1, err := userRepo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 17, u1.Point)

	// u2 never solved g1; their stale total is untouched until g2 is scored.
	u2, err := userRepo.FindByID("u2")
	require.NoError(t, err)
	assert.Equal(t, 42, u2.Point)
}

func TestRecomputeUserTotals_Idempotent(t *testing.T) {
	answerRepo := newFakeAnswerRepo()
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "u1", 0)
	seedScoredAnswer(t, answerRepo, "a1", "g1", "u1", 17)

	svc := NewAggregationService(answerRepo, userRepo)
	require.NoError(t, svc.RecomputeUserTotals("g1"))
	require.NoError(t, svc.RecomputeUserTotals("g1"))

	user, err := userRepo.FindByID("u1")
	require.NoError(t, err)
	assert.Equal(t, 17, user.Point)
}

func TestRecomputeUserTotals_EmptyGame(t *testing.T) {
	svc := NewAggregationService(newFakeAnswerRepo(), newFakeUserRepo())
	assert.NoError(t, svc.RecomputeUserTotals("g1"))
}
