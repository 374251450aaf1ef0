package ports

import (
	"context"

	"github.com/99minutos/asset-management/internal/core/domain"
)

// AccountRepository persists users together with their role links.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Save inserts the user and links every role in user.Roles. It returns
	// domain.ErrDuplicateEmail if the email is taken.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	// AddRole and RemoveRole are idempotent.
	AddRole(ctx context.Context, userID int64, role string) error
	RemoveRole(ctx context.Context, userID int64, role string) error
}
