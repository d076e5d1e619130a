package service

import (
	"testing"
	"time"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnswer_MapsModelToResponse(t *testing.T) {
	repo := newFakeAnswerRepo()
	solvedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateBatch([]model.Answer{{
		ID:         "a1",
		GameID:     "g1",
		UserID:     "u1",
		AnswerText: "blue",
		Status:     model.AnswerStatusSubmitted,
		IsCorrect:  true,
		SolvedAt:   &solvedAt,
		Point:      17,
		CreatedAt:  solvedAt,
		UpdatedAt:  solvedAt,
	}}))

	svc := NewAnswerService(repo)
	resp, err := svc.GetAnswer("a1")
	require.NoError(t, err)

	assert.Equal(t, "a1", resp.ID)
	assert.Equal(t, "blue", resp.AnswerText)
	assert.Equal(t, string(model.AnswerStatusSubmitted), resp.Status)
	assert.Equal(t, 17, resp.Point)
}

func TestGetAnswer_NotFound(t *testing.T) {
	svc := NewAnswerService(newFakeAnswerRepo())

	_, err := svc.GetAnswer("missing")
	assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
}

func TestGetAnswersByGameAndUser(t *testing.T) {
	repo := newFakeAnswerRepo()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.CreateBatch([]model.Answer{
		{ID: "a1", GameID: "g1", UserID: "u1", Status: model.AnswerStatusNotUsed, CreatedAt: now, UpdatedAt: now},
		{ID: "a2", GameID: "g1", UserID: "u2", Status: model.AnswerStatusNotUsed, CreatedAt: now, UpdatedAt: now},
		{ID: "a3", GameID: "g2", UserID: "u1", Status: model.AnswerStatusNotUsed, CreatedAt: now, UpdatedAt: now},
	}))

	svc := NewAnswerService(repo)

	byGame, err := svc.GetAnswersByGame("g1")
	require.NoError(t, err)
	assert.Len(t, byGame, 2)

	byUser, err := svc.GetAnswersByUser("u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
}
