package service

import (
	"context"
	"time"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/queue"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// GameService manages the round lifecycle. Closing a game is the only place
// a score job is produced.
type GameService interface {
	CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error)
	UpdateGame(id string, req dto.UpdateGameRequest) (*dto.GameResponse, error)
	GetGame(id string) (*dto.GameResponse, error)
	GetGames(status *model.GameStatus) ([]dto.GameResponse, error)
	GetCurrentGame() (*dto.GameResponse, error)
	OpenGame(ctx context.Context, id string) (*dto.GameResponse, error)
	CloseGame(ctx context.Context, id string) (*dto.GameResponse, error)
	// RequeueScore re-enqueues the score job of a CLOSED game. Scoring is an
	// unconditional overwrite, so replaying a lost job is safe.
	RequeueScore(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo repository.GameRepository
	jobQueue queue.ScoreJobQueue
}

func NewGameService(gameRepo repository.GameRepository, jobQueue queue.ScoreJobQueue) GameService {
	return &gameService{gameRepo: gameRepo, jobQueue: jobQueue}
}

func (s *gameService) CreateGame(req dto.CreateGameRequest) (*dto.GameResponse, error) {
	now := time.Now()
	game := model.Game{
		ID:           ulid.Make().String(),
		Number:       req.Number,
		Title:        req.Title,
		Description:  req.Description,
		Question:     req.Question,
		Answer:       req.Answer,
		QuestionLink: req.QuestionLink,
		AnswerLink:   req.AnswerLink,
		Status:       model.GameStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.gameRepo.Create(&game); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create game")
		return nil, err
	}

	log.Info().Str("gameID", game.ID).Int("number", game.Number).Msg("Game created")
	return toGameResponse(&game)
}

func (s *gameService) UpdateGame(id string, req dto.UpdateGameRequest) (*dto.GameResponse, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		game.Title = *req.Title
	}
	if req.Description != nil {
		game.Description = *req.Description
	}
	if req.Question != nil {
		game.Question = *req.Question
	}
	if req.Answer != nil {
		game.Answer = *req.Answer
	}
	if req.QuestionLink != nil {
		game.QuestionLink = req.QuestionLink
	}
	if req.AnswerLink != nil {
		game.AnswerLink = req.AnswerLink
	}
	if req.Memo != nil {
		game.Memo = req.Memo
	}
	game.UpdatedAt = time.Now()

	if err := s.gameRepo.Update(game); err != nil {
		log.Error().Err(err).Str("gameID", id).Msg("Failed to update game")
		return nil, err
	}
	return toGameResponse(game)
}

func (s *gameService) GetGame(id string) (*dto.GameResponse, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toGameResponse(game)
}

func (s *gameService) GetGames(status *model.GameStatus) ([]dto.GameResponse, error) {
	games, err := s.gameRepo.FindAll(status)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.GameResponse, 0, len(games))
	for i := range games {
		resp, err := toGameResponse(&games[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *gameService) GetCurrentGame() (*dto.GameResponse, error) {
	game, err := s.gameRepo.FindCurrent()
	if err != nil {
		return nil, err
	}
	return toGameResponse(game)
}

func (s *gameService) OpenGame(ctx context.Context, id string) (*dto.GameResponse, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if game.Status != model.GameStatusDraft {
		log.Warn().Str("gameID", id).Str("status", string(game.Status)).Msg("Cannot open game")
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now()
	game.Status = model.GameStatusOpen
	game.OpenedAt = &now
	game.UpdatedAt = now

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}

	log.Info().Str("gameID", id).Msg("Game opened")
	return toGameResponse(game)
}

func (s *gameService) CloseGame(ctx context.Context, id string) (*dto.GameResponse, error) {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if game.Status != model.GameStatusOpen {
		log.Warn().Str("gameID", id).Str("status", string(game.Status)).Msg("Cannot close game")
		return nil, apperrors.ErrInvalidTransition
	}

	now := time.Now()
	game.Status = model.GameStatusClosed
	game.ClosedAt = &now
	game.UpdatedAt = now

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}

	if err := s.jobQueue.Enqueue(ctx, queue.ScoreJob{GameID: game.ID}); err != nil {
		// The game stays CLOSED; the admin rescore endpoint replays the job.
		log.Error().Err(err).Str("gameID", id).Msg("Failed to enqueue score job for closed game")
		return nil, err
	}

	log.Info().Str("gameID", id).Msg("Game closed, score job enqueued")
	return toGameResponse(game)
}

func (s *gameService) RequeueScore(ctx context.Context, id string) error {
	game, err := s.gameRepo.FindByID(id)
	if err != nil {
		return err
	}
	if game.Status != model.GameStatusClosed {
		return apperrors.ErrInvalidTransition
	}

	if err := s.jobQueue.Enqueue(ctx, queue.ScoreJob{GameID: game.ID}); err != nil {
		log.Error().Err(err).Str("gameID", id).Msg("Failed to requeue score job")
		return err
	}
	log.Info().Str("gameID", id).Msg("Score job requeued")
	return nil
}

func toGameResponse(game *model.Game) (*dto.GameResponse, error) {
	var resp dto.GameResponse
	if err := copier.Copy(&resp, game); err != nil {
		return nil, err
	}
	resp.Status = string(game.Status)
	return &resp, nil
}
