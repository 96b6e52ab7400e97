package model

import (
	"time"
)

// ProgressRecord is unique per (user, question). Absence of a row means
// "not attempted", not "unsolved".
type ProgressRecord struct {
	UserID     string     `json:"user_id"`
	QuestionID string     `json:"question_id"`
	IsSolved   bool       `json:"is_solved"`
	SolvedAt   *time.Time `json:"solved_at,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}
