package document

import (
	"context"
	"sync"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

var _ ports.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository stores every submission, newest first, as one JSON
// array under dispatch_submissions. The array has no size cap.
type SubmissionRepository struct {
	kv ports.KVStore
	mu sync.Mutex
}

func NewSubmissionRepository(kv ports.KVStore) *SubmissionRepository {
	return &SubmissionRepository{kv: kv}
}

func (r *SubmissionRepository) List(ctx context.Context) ([]domain.Submission, error) {
	var subs []domain.Submission
	if _, err := load(ctx, r.kv, ports.KeySubmissions, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubmissionRepository) Prepend(
	ctx context.Context,
	build func(existing []domain.Submission) (domain.Submission, error),
) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := build(existing)
	if err != nil {
		return nil, err
	}

	next := make([]domain.Submission, 0, len(existing)+1)
	next = append(next, sub)
	next = append(next, existing...)
	if err := save(ctx, r.kv, ports.KeySubmissions, next); err != nil {
		return nil, err
	}
	return &sub, nil
}
