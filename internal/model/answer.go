package model

import (
	"time"
)

// AnswerStatus tracks whether a chance has been consumed. An answer row is
// created NOT_USED and moves to SUBMITTED exactly once; it never reverts.
type AnswerStatus string

const (
	AnswerStatusNotUsed   AnswerStatus = "NOT_USED"
	AnswerStatusSubmitted AnswerStatus = "SUBMITTED"
)

// Answer is one consumable attempt slot a user holds for a game.
type Answer struct {
	ID         string       `gorm:"primarykey;size:26" json:"id"`
	GameID     string       `json:"game_id" gorm:"size:26;not null;index:idx_answers_game_user"`
	Game       Game         `json:"game,omitempty" gorm:"foreignKey:GameID"`
	UserID     string       `json:"user_id" gorm:"size:26;not null;index:idx_answers_game_user;index"`
	User       User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AnswerText string       `json:"answer" gorm:"type:text;not null;default:''"`
	Status     AnswerStatus `json:"status" gorm:"type:varchar(16);not null;default:'NOT_USED';index"`
	IsCorrect  bool         `json:"is_correct" gorm:"not null;default:false"`
	SolvedAt   *time.Time   `json:"solved_at,omitempty" gorm:"index"`
	Point      int          `json:"point" gorm:"not null;default:0"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
