package document

import (
	"context"
	"fmt"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

// SessionRepository stores the logged-in user under dispatch_current_user.
type SessionRepository struct {
	kv ports.KVStore
}

func NewSessionRepository(kv ports.KVStore) *SessionRepository {
	return &SessionRepository{kv: kv}
}

func (r *SessionRepository) Current(ctx context.Context) (*domain.User, error) {
	var user domain.User
	ok, err := load(ctx, r.kv, ports.KeySession, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) Set(ctx context.Context, user domain.User) error {
	return save(ctx, r.kv, ports.KeySession, user)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.kv.Remove(ctx, ports.KeySession); err != nil {
		return fmt.Errorf("remove %s: %w", ports.KeySession, err)
	}
	return nil
}
