package domain

import "time"

// Category groups articles, assets and quizzes under one subject.
type Category struct {
	ID        string
	Title     string
	Icon      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
