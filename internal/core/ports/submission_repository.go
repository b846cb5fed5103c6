package ports

import (
	"context"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

// SubmissionRepository persists the submissions document, most recent first.
type SubmissionRepository interface {
	List(ctx context.Context) ([]domain.Submission, error)
	// Prepend builds the new submission from the current list with build and
	// stores it in front of the others.
	Prepend(ctx context.Context, build func(existing []domain.Submission) (domain.Submission, error)) (*domain.Submission, error)
}

// SubmitGuard rejects replays of an idempotency key.
type SubmitGuard interface {
	// Claim returns false when key has already been claimed.
	Claim(ctx context.Context, key string) (bool, error)
}
