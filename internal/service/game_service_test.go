package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameServiceForTest() (GameService, *fakeGameRepo, *fakeScoreQueue) {
	gameRepo := newFakeGameRepo()
	jobQueue := &fakeScoreQueue{}
	return NewGameService(gameRepo, jobQueue), gameRepo, jobQueue
}

func createDraft(t *testing.T, svc GameService) *dto.GameResponse {
	t.Helper()
	game, err := svc.CreateGame(dto.CreateGameRequest{
		Title:  "round one",
		Number: 1,
		Answer: "blue",
	})
	require.NoError(t, err)
	return game
}

func TestCreateGame_StartsAsDraft(t *testing.T) {
	svc, _, _ := newGameServiceForTest()

	game := createDraft(t, svc)

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, string(model.GameStatusDraft), game.Status)
	assert.Nil(t, game.OpenedAt)
	assert.Nil(t, game.ClosedAt)
}

func TestUpdateGame_PartialFields(t *testing.T) {
	svc, _, _ := newGameServiceForTest()
	game := createDraft(t, svc)

	title := "round one, revised"
	memo := "answer leaked, double-check"
	updated, err := svc.UpdateGame(game.ID, dto.UpdateGameRequest{Title: &title, Memo: &memo})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	require.NotNil(t, updated.Memo)
	assert.Equal(t, memo, *updated.Memo)
	// Untouched fields keep their values.
	assert.Equal(t, "blue", updated.Answer)
	assert.Equal(t, 1, updated.Number)
}

func TestOpenGame_Lifecycle(t *testing.T) {
	svc, _, _ := newGameServiceForTest()
	game := createDraft(t, svc)

	opened, err := svc.OpenGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.GameStatusOpen), opened.Status)
	assert.NotNil(t, opened.OpenedAt)

	// Opening twice is rejected.
	_, err = svc.OpenGame(context.Background(), game.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestCloseGame_EnqueuesScoreJob(t *testing.T) {
	svc, _, jobQueue := newGameServiceForTest()
	game := createDraft(t, svc)
	_, err := svc.OpenGame(context.Background(), game.ID)
	require.NoError(t, err)

	closed, err := svc.CloseGame(context.Background(), game.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.GameStatusClosed), closed.Status)
	assert.NotNil(t, closed.ClosedAt)

	jobs := jobQueue.enqueued()
	require.Len(t, jobs, 1)
	assert.Equal(t, game.ID, jobs[0].GameID)
}

func TestCloseGame_RequiresOpen(t *testing.T) {
	svc, _, jobQueue := newGameServiceForTest()
	game := createDraft(t, svc)

	_, err := svc.CloseGame(context.Background(), game.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Empty(t, jobQueue.enqueued())
}

func TestCloseGame_EnqueueFailureSurfaces(t *testing.T) {
	svc, gameRepo, jobQueue := newGameServiceForTest()
	game := createDraft(t, svc)
	_, err := svc.OpenGame(context.Background(), game.ID)
	require.NoError(t, err)

	jobQueue.enqueueErr = errors.New("redis unreachable")
	_, err = svc.CloseGame(context.Background(), game.ID)
	require.Error(t, err)

	// The game is already CLOSED; a rescore replays the lost job.
	stored, err := gameRepo.FindByID(game.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GameStatusClosed, stored.Status)

	jobQueue.enqueueErr = nil
	require.NoError(t, svc.RequeueScore(context.Background(), game.ID))
	require.Len(t, jobQueue.enqueued(), 1)
}

func TestRequeueScore_RequiresClosed(t *testing.T) {
	svc, _, jobQueue := newGameServiceForTest()
	game := createDraft(t, svc)

	err := svc.RequeueScore(context.Background(), game.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = svc.OpenGame(context.Background(), game.ID)
	require.NoError(t, err)
	err = svc.RequeueScore(context.Background(), game.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.Empty(t, jobQueue.enqueued())
}

func TestGetGames_FilterByStatus(t *testing.T) {
	svc, _, _ := newGameServiceForTest()
	createDraft(t, svc)
	second, err := svc.CreateGame(dto.CreateGameRequest{Title: "round two", Number: 2, Answer: "red"})
	require.NoError(t, err)
	_, err = svc.OpenGame(context.Background(), second.ID)
	require.NoError(t, err)

	open := model.GameStatusOpen
	games, err := svc.GetGames(&open)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, second.ID, games[0].ID)

	all, err := svc.GetGames(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetCurrentGame_MostRecent(t *testing.T) {
	svc, _, _ := newGameServiceForTest()
	createDraft(t, svc)
	second, err := svc.CreateGame(dto.CreateGameRequest{Title: "round two", Number: 2, Answer: "red"})
	require.NoError(t, err)

	current, err := svc.GetCurrentGame()
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestGetGame_NotFound(t *testing.T) {
	svc, _, _ := newGameServiceForTest()

	_, err := svc.GetGame("missing")
	assert.ErrorIs(t, err, apperrors.ErrGameNotFound)
}
