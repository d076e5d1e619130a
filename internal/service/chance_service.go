package service

import (
	"time"

	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

// ChanceService hands out blank answer slots for a game.
type ChanceService interface {
	// Allocate creates count NOT_USED answer rows for every listed user.
	// Calling it twice for the same game doubles the chances: allocation is
	// additive on purpose, so extra chances can be granted mid-game.
	Allocate(gameID string, userIDs []string, count int) ([]model.Answer, error)
}

type chanceService struct {
	answerRepo repository.AnswerRepository
}

func NewChanceService(answerRepo repository.AnswerRepository) ChanceService {
	return &chanceService{answerRepo: answerRepo}
}

func (s *chanceService) Allocate(gameID string, userIDs []string, count int) ([]model.Answer, error) {
	now := time.Now()
	answers := make([]model.Answer, 0, len(userIDs)*count)
	for _, userID := range userIDs {
		for i := 0; i < count; i++ {
			answers = append(answers, model.Answer{
				ID:         ulid.Make().String(),
				GameID:     gameID,
				UserID:     userID,
				AnswerText: "",
				Status:     model.AnswerStatusNotUsed,
				IsCorrect:  false,
				Point:      0,
				CreatedAt:  now,
				UpdatedAt:  now,
			})
		}
	}

	if err := s.answerRepo.CreateBatch(answers); err != nil {
		log.Error().Err(err).Str("gameID", gameID).Int("users", len(userIDs)).Int("count", count).
			Msg("Failed to allocate answer chances")
		return nil, err
	}

	log.Info().Str("gameID", gameID).Int("users", len(userIDs)).Int("count", count).
		Msg("Answer chances allocated")
	return answers, nil
}
