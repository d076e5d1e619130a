package repository

import (
	"errors"

	"github.com/hmcall/quizden/internal/apperrors"
	"github.com/hmcall/quizden/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id string) (*model.User, error)
	Update(user *model.User) error
	// UpdatePoint overwrites the user's aggregate point total.
	UpdatePoint(id string, point int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("finding user by id", err)
	}
	return &user, nil
}

func (r *userRepository) Update(user *model.User) error {
	return apperrors.Storage("updating user", r.db.Save(user).Error)
}

func (r *userRepository) UpdatePoint(id string, point int) error {
	res := r.db.Model(&model.User{}).Where("id = ?", id).Update("point", point)
	if res.Error != nil {
		return apperrors.Storage("updating user point", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
