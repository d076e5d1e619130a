package service

import (
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/repository"
)

// rankingLimit caps the public leaderboard at the ten earliest solvers.
const rankingLimit = 10

// RankingService exposes a game's solver leaderboard: correct submitted
// answers of regular users ordered by solve time, nickname only.
type RankingService interface {
	TopForGame(gameID string) ([]dto.RankingEntryResponse, error)
}

type rankingService struct {
	answerRepo repository.AnswerRepository
}

func NewRankingService(answerRepo repository.AnswerRepository) RankingService {
	return &rankingService{answerRepo: answerRepo}
}

func (s *rankingService) TopForGame(gameID string) ([]dto.RankingEntryResponse, error) {
	answers, err := s.answerRepo.TopRankedByGame(gameID, rankingLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.RankingEntryResponse, 0, len(answers))
	for i, answer := range answers {
		entries = append(entries, dto.RankingEntryResponse{
			Rank:     i + 1,
			UserID:   answer.UserID,
			Nickname: answer.User.Nickname,
			Point:    answer.Point,
			SolvedAt: answer.SolvedAt,
		})
	}
	return entries, nil
}
