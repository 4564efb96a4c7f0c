package domain

import "time"

// Article is a rich-text lesson. Body holds the decoded JSON document
// produced by the editor (object, array or scalar).
type Article struct {
	ID         string
	Title      string
	Thumbnail  string
	Body       any
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
