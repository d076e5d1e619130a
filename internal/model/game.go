package model

import (
	"time"
)

// GameStatus is linear: DRAFT -> OPEN -> CLOSED. CLOSED is terminal, and the
// OPEN -> CLOSED transition is what triggers asynchronous scoring.
type GameStatus string

const (
	GameStatusDraft  GameStatus = "DRAFT"
	GameStatusOpen   GameStatus = "OPEN"
	GameStatusClosed GameStatus = "CLOSED"
)

// Game is one quiz round with a secret answer.
type Game struct {
	ID           string     `gorm:"primarykey;size:26" json:"id"`
	Number       int        `json:"number" gorm:"not null;index"`
	Title        string     `json:"title" gorm:"size:32;not null"`
	Description  string     `json:"description,omitempty" gorm:"size:64"`
	Question     string     `json:"question" gorm:"size:64"`
	Answer       string     `json:"answer" gorm:"size:64"`
	QuestionLink *string    `json:"question_link,omitempty" gorm:"size:128"`
	AnswerLink   *string    `json:"answer_link,omitempty" gorm:"size:128"`
	Memo         *string    `json:"memo,omitempty"`
	Status       GameStatus `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
