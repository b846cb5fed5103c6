package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

const (
	msgSubmitted    = "Form submitted successfully!"
	msgNotLoggedIn  = "Error: You are not logged in."
	msgSubmitFailed = "An error occurred during submission."
)

type sessionReader interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type rosterReader interface {
	Drivers(ctx context.Context) ([]string, error)
}

type submissionSaver interface {
	Save(ctx context.Context, form domain.FormData, user domain.User) (*domain.Submission, error)
}

// FormOption configures a FormSession.
type FormOption func(*FormSession)

// WithNoticeTTL overrides how long submit notices stay visible.
func WithNoticeTTL(ttl time.Duration) FormOption {
	return func(f *FormSession) { f.noticeTTL = ttl }
}

// FormSession owns the draft dispatch sheet between page load and submit.
// Nothing is persisted until Submit succeeds.
type FormSession struct {
	auth        sessionReader
	roster      rosterReader
	submissions submissionSaver
	log         zerolog.Logger

	noticeTTL time.Duration
	notices   *noticeBoard

	mu      sync.Mutex
	state   domain.FormState
	draft   domain.FormData
	options []string
}

// NewFormSession builds an empty draft seeded from the static fleet lists,
// with driver options taken from the current roster.
func NewFormSession(
	ctx context.Context,
	auth sessionReader,
	roster rosterReader,
	submissions submissionSaver,
	log zerolog.Logger,
	opts ...FormOption,
) (*FormSession, error) {
	f := &FormSession{
		auth:        auth,
		roster:      roster,
		submissions: submissions,
		log:         log,
		noticeTTL:   DefaultNoticeTTL,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.notices = newNoticeBoard(f.noticeTTL, time.Now)

	if err := f.Reset(ctx); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FormSession) Snapshot() ports.FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	options := make([]string, len(f.options))
	copy(options, f.options)
	return ports.FormSnapshot{
		State:         f.state,
		Draft:         f.draft.Clone(),
		DriverOptions: options,
		Notice:        f.notices.Current(),
	}
}

func (f *FormSession) UpdateDriver(rowID, field, value string) error {
	return f.edit(func(d *domain.FormData) error { return d.UpdateDriver(rowID, field, value) })
}

func (f *FormSession) UpdateEscort(key, field, value string) error {
	return f.edit(func(d *domain.FormData) error { return d.UpdateEscort(key, field, value) })
}

func (f *FormSession) SetNote(field, value string) error {
	return f.edit(func(d *domain.FormData) error { return d.SetNote(field, value) })
}

// edit applies fn to a copy of the draft and keeps it only when fn succeeds.
func (f *FormSession) edit(fn func(*domain.FormData) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.CanTransitionTo(domain.FormEditing) {
		return domain.ErrSubmitInProgress
	}
	next := f.draft.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	f.draft = next
	f.state = domain.FormEditing
	return nil
}

// Submit persists the draft for the logged-in user. On success the draft is
// replaced by a freshly seeded one; on failure it is kept for another try.
func (f *FormSession) Submit(ctx context.Context) (*domain.Submission, error) {
	user, err := f.auth.CurrentUser(ctx)
	if err != nil {
		f.notices.Post(ports.NoticeError, msgSubmitFailed)
		return nil, fmt.Errorf("submit form: %w", err)
	}
	if user == nil {
		f.notices.Post(ports.NoticeError, msgNotLoggedIn)
		return nil, domain.ErrNotAuthenticated
	}

	f.mu.Lock()
	if !f.state.CanTransitionTo(domain.FormSubmitting) {
		f.mu.Unlock()
		return nil, domain.ErrSubmitInProgress
	}
	f.state = domain.FormSubmitting
	draft := f.draft.Clone()
	f.mu.Unlock()

	sub, saveErr := f.submissions.Save(ctx, draft, *user)
	if saveErr != nil {
		f.mu.Lock()
		f.state = domain.FormSubmitFailed
		f.mu.Unlock()

		f.notices.Post(ports.NoticeError, msgSubmitFailed)
		f.log.Error().Err(saveErr).Str("username", user.Username).Msg("form submission failed")
		return nil, fmt.Errorf("submit form: %w", saveErr)
	}

	options, err := f.roster.Drivers(ctx)
	if err != nil {
		f.log.Warn().Err(err).Msg("failed to refresh driver options")
	}

	f.mu.Lock()
	f.draft = domain.NewFormData()
	f.state = domain.FormSubmitted
	if err == nil {
		f.options = options
	}
	f.mu.Unlock()

	f.notices.Post(ports.NoticeSuccess, msgSubmitted)
	return sub, nil
}

// Reset discards the draft and reloads the driver options.
func (f *FormSession) Reset(ctx context.Context) error {
	options, err := f.roster.Drivers(ctx)
	if err != nil {
		return fmt.Errorf("load driver options: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == domain.FormSubmitting {
		return domain.ErrSubmitInProgress
	}
	f.draft = domain.NewFormData()
	f.state = domain.FormEmpty
	f.options = options
	return nil
}

// Close releases the notice timer. The session must not be used afterwards.
func (f *FormSession) Close() {
	f.notices.Close()
}
