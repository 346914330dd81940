package port

import (
	"context"

	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/domain"
)

// UserDirectory is the read-only lookup the order service depends on.
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (domain.User, error)
}

type UserRepository interface {
	UserDirectory

	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	InsertUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// UpsertUserByEmail inserts the user or overwrites the existing row
	// with the same email. Used by the one-shot admin bootstrap.
	UpsertUserByEmail(ctx context.Context, user domain.User) (domain.User, error)
}
