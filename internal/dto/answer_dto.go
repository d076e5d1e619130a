package dto

import "time"

// SubmitAnswerRequest is the body of POST /answers. The submitting user comes
// from the authenticated identity, not the body.
type SubmitAnswerRequest struct {
	GameID string `json:"game_id" binding:"required"`
	Answer string `json:"answer" binding:"required"`
}

type AnswerResponse struct {
	ID         string     `json:"id"`
	GameID     string     `json:"game_id"`
	UserID     string     `json:"user_id"`
	AnswerText string     `json:"answer"`
	Status     string     `json:"status"`
	IsCorrect  bool       `json:"is_correct"`
	SolvedAt   *time.Time `json:"solved_at,omitempty"`
	Point      int        `json:"point"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RankingEntryResponse is one row of a closed game's public leaderboard. Only
// the solver's nickname is exposed.
type RankingEntryResponse struct {
	Rank     int        `json:"rank"`
	UserID   string     `json:"user_id"`
	Nickname string     `json:"nickname"`
	Point    int        `json:"point"`
	SolvedAt *time.Time `json:"solved_at"`
}
