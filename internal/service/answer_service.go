package service

import (
	"github.com/hmcall/quizden/internal/dto"
	"github.com/hmcall/quizden/internal/model"
	"github.com/hmcall/quizden/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AnswerService is the read side of the answer table.
type AnswerService interface {
	GetAnswer(id string) (*dto.AnswerResponse, error)
	GetAnswersByGame(gameID string) ([]dto.AnswerResponse, error)
	GetAnswersByUser(userID string) ([]dto.AnswerResponse, error)
}

type answerService struct {
	answerRepo repository.AnswerRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{answerRepo: answerRepo}
}

func (s *answerService) GetAnswer(id string) (*dto.AnswerResponse, error) {
	answer, err := s.answerRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toAnswerResponse(answer)
}

func (s *answerService) GetAnswersByGame(gameID string) ([]dto.AnswerResponse, error) {
	answers, err := s.answerRepo.FindByGameID(gameID)
	if err != nil {
		log.Error().Err(err).Str("gameID", gameID).Msg("Failed to load answers by game")
		return nil, err
	}
	return toAnswerResponses(answers)
}

func (s *answerService) GetAnswersByUser(userID string) ([]dto.AnswerResponse, error) {
	answers, err := s.answerRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load answers by user")
		return nil, err
	}
	return toAnswerResponses(answers)
}

func toAnswerResponse(answer *model.Answer) (*dto.AnswerResponse, error) {
	var resp dto.AnswerResponse
	if err := copier.Copy(&resp, answer); err != nil {
		return nil, err
	}
	resp.Status = string(answer.Status)
	return &resp, nil
}

func toAnswerResponses(answers []model.Answer) ([]dto.AnswerResponse, error) {
	responses := make([]dto.AnswerResponse, 0, len(answers))
	for i := range answers {
		resp, err := toAnswerResponse(&answers[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}
