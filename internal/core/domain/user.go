package domain

import "time"

// User models a learner or instructor account.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	UserClass    string    `json:"user_class"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
