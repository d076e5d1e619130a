package service

import (
	"sync"

	"github.com/hmcall/quizden/internal/repository"
	"github.com/rs/zerolog/log"
)

// AggregationService folds scored answers into per-user point totals.
type AggregationService interface {
	// RecomputeUserTotals recalculates user.point for every user who solved
	// the given game, by summing the points of all their answers across all
	// games. A full recompute rather than a delta: rerunning it after a
	// rescore converges to the same totals.
	RecomputeUserTotals(gameID string) error
}

type aggregationService struct {
	answerRepo repository.AnswerRepository
	userRepo   repository.UserRepository

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewAggregationService(answerRepo repository.AnswerRepository, userRepo repository.UserRepository) AggregationService {
	return &aggregationService{
		answerRepo: answerRepo,
		userRepo:   userRepo,
		userLocks:  make(map[string]*sync.Mutex),
	}
}

// lockFor returns the per-user mutex, creating it on first use. Point writes
// for one user must not interleave when two games are being aggregated at
// once.
func (s *aggregationService) lockFor(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

func (s *aggregationService) RecomputeUserTotals(gameID string) error {
	correct, err := s.answerRepo.FindCorrectSubmittedByGame(gameID)
	if err != nil {
		return err
	}

	seen := make(map[string]bool, len(correct))
	for _, answer := range correct {
		if seen[answer.UserID] {
			continue
		}
		seen[answer.UserID] = true

		if err := s.recomputeOne(answer.UserID); err != nil {
			return err
		}
	}

	log.Info().Str("gameID", gameID).Int("users", len(seen)).Msg("User point totals recomputed")
	return nil
}

func (s *aggregationService) recomputeOne(userID string) error {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	answers, err := s.answerRepo.FindByUserID(userID)
	if err != nil {
		return err
	}

	total := 0
	for _, a := range answers {
		total += a.Point
	}

	if err := s.userRepo.UpdatePoint(userID, total); err != nil {
		return err
	}

	log.Info().Str("userID", userID).Int("point", total).Msg("User point total updated")
	return nil
}
