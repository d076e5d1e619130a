package dto

import "time"

// CreateGameRequest is the admin payload for a new DRAFT game.
type CreateGameRequest struct {
	Title        string  `json:"title" binding:"required,min=2,max=32"`
	Number       int     `json:"number" binding:"required,gt=0"`
	Description  string  `json:"description" binding:"max=64"`
	Question     string  `json:"question" binding:"max=64"`
	Answer       string  `json:"answer" binding:"required,max=64"`
	QuestionLink *string `json:"question_link" binding:"omitempty,max=128"`
	AnswerLink   *string `json:"answer_link" binding:"omitempty,max=128"`
}

// UpdateGameRequest carries optional fields; nil leaves the current value.
type UpdateGameRequest struct {
	Title        *string `json:"title" binding:"omitempty,min=2,max=32"`
	Description  *string `json:"description" binding:"omitempty,max=64"`
	Question     *string `json:"question" binding:"omitempty,max=64"`
	Answer       *string `json:"answer" binding:"omitempty,max=64"`
	QuestionLink *string `json:"question_link" binding:"omitempty,max=128"`
	AnswerLink   *string `json:"answer_link" binding:"omitempty,max=128"`
	Memo         *string `json:"memo"`
}

// AllocateChancesRequest grants every listed user the given number of answer
// slots for a game. Repeated calls are additive.
type AllocateChancesRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,dive,required"`
	Count   int      `json:"count" binding:"required,gt=0"`
}

// GameResponse is the admin view and includes the secret answer.
type GameResponse struct {
	ID           string     `json:"id"`
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	QuestionLink *string    `json:"question_link,omitempty"`
	AnswerLink   *string    `json:"answer_link,omitempty"`
	Memo         *string    `json:"memo,omitempty"`
	Status       string     `json:"status"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// GamePublicResponse is the participant view. The secret answer is omitted.
type GamePublicResponse struct {
	ID           string     `json:"id"`
	Number       int        `json:"number"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Question     string     `json:"question"`
	QuestionLink *string    `json:"question_link,omitempty"`
	Status       string     `json:"status"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
