package service

import (
	"strings"
	"time"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// SubmissionService claims exactly one unused chance and resolves it against
// the game's secret answer.
type SubmissionService interface {
	Submit(gameID, userID, answerText string) (*dto.AnswerResponse, error)
}

type submissionService struct {
	gameRepo   repository.GameRepository
	answerRepo repository.AnswerRepository
}

func NewSubmissionService(gameRepo repository.GameRepository, answerRepo repository.AnswerRepository) SubmissionService {
	return &submissionService{gameRepo: gameRepo, answerRepo: answerRepo}
}

func (s *submissionService) Submit(gameID, userID, answerText string) (*dto.AnswerResponse, error) {
	game, err := s.gameRepo.FindByID(gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != model.GameStatusOpen {
		log.Warn().Str("gameID", gameID).Str("status", string(game.Status)).Msg("Submission rejected: game not open")
		return nil, apperrors.ErrGameNotOpen
	}

	isCorrect := answersMatch(answerText, game.Answer)

	chances, err := s.answerRepo.FindUnusedByGameAndUser(gameID, userID)
	if err != nil {
		return nil, err
	}
	if len(chances) == 0 {
		return nil, apperrors.ErrNoChanceAvailable
	}

	// Walk the chances FIFO. The conditional update is the only write: a slot
	// whose status already flipped under us reports zero rows affected, and we
	// move on to the next candidate instead of double-resolving it.
	for _, chance := range chances {
		now := time.Now()
		var solvedAt *time.Time
		if isCorrect {
			t := now
			solvedAt = &t
		}

		claimed, err := s.answerRepo.Claim(chance.ID, answerText, isCorrect, solvedAt, now)
		if err != nil {
			return nil, err
		}
		if !claimed {
			log.Warn().Str("answerID", chance.ID).Str("gameID", gameID).Str("userID", userID).
				Msg("Chance was claimed concurrently, trying next slot")
			continue
		}

		resolved, err := s.answerRepo.FindByID(chance.ID)
		if err != nil {
			return nil, err
		}

		log.Info().Str("answerID", resolved.ID).Str("gameID", gameID).Str("userID", userID).
			Bool("isCorrect", resolved.IsCorrect).Msg("Answer submitted")

		var resp dto.AnswerResponse
		if err := copier.Copy(&resp, resolved); err != nil {
			return nil, err
		}
		resp.Status = string(resolved.Status)
		return &resp, nil
	}

	// Every candidate we saw was consumed by concurrent submissions.
	return nil, apperrors.ErrClaimConflict
}

// answersMatch compares submission and secret after trimming surrounding
// whitespace and folding case.
func answersMatch(submitted, secret string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(secret))
}
