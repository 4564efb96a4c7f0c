package ports

import (
	"context"

	"github.com/zuperior/content-api/internal/core/domain"
)

// RegisterInput carries the signup form.
type RegisterInput struct {
	FullName  string
	UserClass string
	Email     string
	Username  string
	Password  string
}

// LoginResult is returned by a successful login. Token is empty when token
// issuance is disabled.
type LoginResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
