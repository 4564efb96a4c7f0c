package domain

import "time"

// Quiz is a single multiple-choice question.
type Quiz struct {
	ID            string
	Question      string
	CorrectAnswer string
	Answers       []string
	CategoryID    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
