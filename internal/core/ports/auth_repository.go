package ports

import (
	"context"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

// UserRepository persists the users document.
type UserRepository interface {
	// Initialized reports whether the users document exists.
	Initialized(ctx context.Context) (bool, error)
	// Init writes book only when no users document exists yet.
	Init(ctx context.Context, book *domain.UserBook) error
	List(ctx context.Context) ([]domain.Account, error)
	// Find returns domain.ErrUserNotFound for unknown usernames.
	Find(ctx context.Context, username string) (*domain.Account, error)
	// Create returns domain.ErrUserExists when the username is taken.
	Create(ctx context.Context, account domain.Account) error
	// Delete reports whether an account was removed.
	Delete(ctx context.Context, username string) (bool, error)
}

// SessionRepository persists the single active session.
type SessionRepository interface {
	// Current returns nil when nobody is logged in.
	Current(ctx context.Context) (*domain.User, error)
	Set(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}
