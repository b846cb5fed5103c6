package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

// SubmissionService stores completed dispatch sheets, most recent first.
type SubmissionService struct {
	repo ports.SubmissionRepository
	now  func() time.Time
	log  zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, now: time.Now, log: log}
}

func (s *SubmissionService) Submissions(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if subs == nil {
		subs = []domain.Submission{}
	}
	return subs, nil
}

func (s *SubmissionService) Submission(ctx context.Context, id string) (*domain.Submission, error) {
	subs, err := s.Submissions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		if subs[i].ID == id {
			return &subs[i], nil
		}
	}
	return nil, domain.ErrSubmissionNotFound
}

// Save snapshots form for user and stores it ahead of every earlier
// submission. Later changes to form do not reach the stored copy.
func (s *SubmissionService) Save(ctx context.Context, form domain.FormData, user domain.User) (*domain.Submission, error) {
	snapshot := form.Clone()
	submittedAt := s.now().UTC().Truncate(time.Millisecond)

	sub, err := s.repo.Prepend(ctx, func(existing []domain.Submission) (domain.Submission, error) {
		return domain.Submission{
			ID:          uniqueSubmissionID(existing, submittedAt, user.Username),
			Username:    user.Username,
			SubmittedAt: submittedAt,
			FormData:    snapshot,
		}, nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("username", user.Username).Msg("failed to save submission")
		return nil, fmt.Errorf("save submission: %w", err)
	}

	s.log.Info().Str("id", sub.ID).Str("username", user.Username).Msg("submission saved")
	return sub, nil
}

// uniqueSubmissionID derives the id from the timestamp and username, adding
// a random suffix when that id is already taken.
func uniqueSubmissionID(existing []domain.Submission, ts time.Time, username string) string {
	id := domain.SubmissionID(ts, username)
	for _, sub := range existing {
		if sub.ID == id {
			return id + "-" + uuid.NewString()[:8]
		}
	}
	return id
}
