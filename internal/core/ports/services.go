package ports

import (
	"context"
	"time"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

type AuthService interface {
	Seed(ctx context.Context) error
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	Users(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, username string) error
}

type DriverService interface {
	Initialize(ctx context.Context) error
	Drivers(ctx context.Context) ([]string, error)
	AddDriver(ctx context.Context, name string) ([]string, error)
	DeleteDriver(ctx context.Context, name string) ([]string, error)
}

type SubmissionService interface {
	Submissions(ctx context.Context) ([]domain.Submission, error)
	Submission(ctx context.Context, id string) (*domain.Submission, error)
	Save(ctx context.Context, form domain.FormData, user domain.User) (*domain.Submission, error)
}

// NoticeKind distinguishes success and failure notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown after a submit attempt.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// FormSnapshot is a copy of the form session at one point in time.
type FormSnapshot struct {
	State         domain.FormState `json:"state"`
	Draft         domain.FormData  `json:"draft"`
	DriverOptions []string         `json:"driver_options"`
	Notice        *Notice          `json:"notice,omitempty"`
}

// FormService is the in-memory draft of the dispatch sheet being edited.
type FormService interface {
	Snapshot() FormSnapshot
	UpdateDriver(rowID, field, value string) error
	UpdateEscort(key, field, value string) error
	SetNote(field, value string) error
	Submit(ctx context.Context) (*domain.Submission, error)
	Reset(ctx context.Context) error
	Close()
}
