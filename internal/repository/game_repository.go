package repository

import (
	"errors"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/model"
	"gorm.io/gorm"
)

type GameRepository interface {
	Create(game *model.Game) error
	Update(game *model.Game) error
	FindByID(id string) (*model.Game, error)
	FindAll(status *model.GameStatus) ([]model.Game, error)
	// FindCurrent returns the most recently created game.
	FindCurrent() (*model.Game, error)
}

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *model.Game) error {
	return apperrors.Storage("creating game", r.db.Create(game).Error)
}

func (r *gameRepository) Update(game *model.Game) error {
	return apperrors.Storage("updating game", r.db.Save(game).Error)
}

func (r *gameRepository) FindByID(id string) (*model.Game, error) {
	var game model.Game
	err := r.db.First(&game, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGameNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("finding game by id", err)
	}
	return &game, nil
}

func (r *gameRepository) FindAll(status *model.GameStatus) ([]model.Game, error) {
	var games []model.Game
	query := r.db.Order("number DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if err := query.Find(&games).Error; err != nil {
		return nil, apperrors.Storage("listing games", err)
	}
	return games, nil
}

func (r *gameRepository) FindCurrent() (*model.Game, error) {
	var game model.Game
	err := r.db.Order("created_at DESC").First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGameNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("finding current game", err)
	}
	return &game, nil
}
