package repository

import (
	"errors"
	"time"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	CreateBatch(answers []model.Answer) error
	FindByID(id string) (*model.Answer, error)
	FindByGameID(gameID string) ([]model.Answer, error)
	FindByUserID(userID string) ([]model.Answer, error)
	// FindUnusedByGameAndUser returns the user's NOT_USED slots for a game,
	// earliest-created first, so submission consumes chances FIFO.
	FindUnusedByGameAndUser(gameID, userID string) ([]model.Answer, error)
	// Claim resolves a chance in a single conditional statement keyed on
	// status = NOT_USED. It reports false when zero rows were affected, i.e.
	// a concurrent submission already consumed the slot.
	Claim(id string, answerText string, isCorrect bool, solvedAt *time.Time, now time.Time) (bool, error)
	// FindCorrectSubmittedByGame returns the game's correct submitted answers
	// ordered by solved_at, then created_at, then id, ascending.
	FindCorrectSubmittedByGame(gameID string) ([]model.Answer, error)
	UpdatePoint(id string, point int) error
	// TopRankedByGame is the public ranking query: correct submitted answers
	// of regular users with the solver's identity preloaded.
	TopRankedByGame(gameID string, limit int) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CreateBatch(answers []model.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	return apperrors.Storage("creating answer batch", r.db.Create(&answers).Error)
}

func (r *answerRepository) FindByID(id string) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.First(&answer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrAnswerNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("finding answer by id", err)
	}
	return &answer, nil
}

func (r *answerRepository) FindByGameID(gameID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("game_id = ?", gameID).Order("created_at ASC").Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("listing answers by game", err)
	}
	return answers, nil
}

func (r *answerRepository) FindByUserID(userID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("listing answers by user", err)
	}
	return answers, nil
}

func (r *answerRepository) FindUnusedByGameAndUser(gameID, userID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("game_id = ? AND user_id = ? AND status = ?", gameID, userID, model.AnswerStatusNotUsed).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("listing unused answers", err)
	}
	return answers, nil
}

func (r *answerRepository) Claim(id string, answerText string, isCorrect bool, solvedAt *time.Time, now time.Time) (bool, error) {
	res := r.db.Model(&model.Answer{}).
		Where("id = ? AND status = ?", id, model.AnswerStatusNotUsed).
		Updates(map[string]interface{}{
			"status":      model.AnswerStatusSubmitted,
			"answer_text": answerText,
			"is_correct":  isCorrect,
			"solved_at":   solvedAt,
			"updated_at":  now,
		})
	if res.Error != nil {
		return false, apperrors.Storage("claiming answer", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *answerRepository) FindCorrectSubmittedByGame(gameID string) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Where("game_id = ? AND status = ? AND is_correct = ? AND solved_at IS NOT NULL",
			gameID, model.AnswerStatusSubmitted, true).
		Order("solved_at ASC, created_at ASC, id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("listing correct answers by game", err)
	}
	return answers, nil
}

func (r *answerRepository) UpdatePoint(id string, point int) error {
	res := r.db.Model(&model.Answer{}).Where("id = ?", id).Update("point", point)
	if res.Error != nil {
		return apperrors.Storage("updating answer point", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAnswerNotFound
	}
	return nil
}

func (r *answerRepository) TopRankedByGame(gameID string, limit int) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.
		Joins("JOIN users ON users.id = answers.user_id").
		Where("answers.game_id = ? AND answers.status = ? AND answers.is_correct = ? AND answers.solved_at IS NOT NULL AND users.role = ?",
			gameID, model.AnswerStatusSubmitted, true, model.RoleUser).
		Order("answers.solved_at ASC, answers.created_at ASC, answers.id ASC").
		Limit(limit).
		Preload("User").
		Find(&answers).Error
	if err != nil {
		return nil, apperrors.Storage("loading game ranking", err)
	}
	return answers, nil
}
