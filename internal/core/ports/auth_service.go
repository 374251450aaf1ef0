package ports

import (
	"context"
	"time"

	"github.com/99minutos/asset-management/internal/core/domain"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	UserID    int64
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Authenticate decodes a bearer token into an identity.
	Authenticate(token string) (*domain.Identity, error)
}

// UserService manages role membership of existing accounts.
type UserService interface {
	GrantRole(ctx context.Context, userID int64, role string) (*domain.User, error)
	RevokeRole(ctx context.Context, userID int64, role string) (*domain.User, error)
}
