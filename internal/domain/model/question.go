package model

import (
	"strings"
	"time"
)

type QuestionType string
type QuestionDifficulty string
type Platform string

const (
	TypeHomework  QuestionType = "homework"
	TypeClasswork QuestionType = "classwork"

	DifficultyEasy   QuestionDifficulty = "easy"
	DifficultyMedium QuestionDifficulty = "medium"
	DifficultyHard   QuestionDifficulty = "hard"

	PlatformLeetCode      Platform = "leetcode"
	PlatformGeeksForGeeks Platform = "geeksforgeeks"
	PlatformInterviewBit  Platform = "interviewbit"
	PlatformUnknown       Platform = "unknown"
)

func (t QuestionType) Valid() bool {
	return t == TypeHomework || t == TypeClasswork
}

func (d QuestionDifficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

type Question struct {
	ID         string             `json:"id"`
	Name       string             `json:"question_name"`
	Link       string             `json:"question_link"`
	Type       QuestionType       `json:"type"`
	Difficulty QuestionDifficulty `json:"difficulty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// PlatformFromLink derives the external judge site from a question URL by
// substring match on the host part. Best-effort, unknown when nothing matches.
func PlatformFromLink(link string) Platform {
	lower := strings.ToLower(link)
	switch {
	case strings.Contains(lower, "leetcode"):
		return PlatformLeetCode
	case strings.Contains(lower, "geeksforgeeks"):
		return PlatformGeeksForGeeks
	case strings.Contains(lower, "interviewbit"):
		return PlatformInterviewBit
	default:
		return PlatformUnknown
	}
}

func (q *Question) Platform() Platform {
	return PlatformFromLink(q.Link)
}
