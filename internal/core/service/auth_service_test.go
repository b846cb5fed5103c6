package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/domain"
)

type stubUserRepo struct {
	book    *domain.UserBook
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func (r *stubUserRepo) Initialized(_ context.Context) (bool, error) {
	return r.book != nil, nil
}

func (r *stubUserRepo) Init(_ context.Context, book *domain.UserBook) error {
	if r.book == nil {
		r.book = book
	}
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.Account, error) {
	if r.book == nil {
		return nil, nil
	}
	return r.book.Accounts(), nil
}

func (r *stubUserRepo) Find(_ context.Context, username string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.book.Lookup(username)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &a, nil
}

func (r *stubUserRepo) Create(_ context.Context, account domain.Account) error {
	return r.book.Add(account)
}

func (r *stubUserRepo) Delete(_ context.Context, username string) (bool, error) {
	return r.book.Remove(username), nil
}

type stubSessionRepo struct {
	user *domain.User
	sets int
}

func (r *stubSessionRepo) Current(_ context.Context) (*domain.User, error) {
	if r.user == nil {
		return nil, nil
	}
	u := *r.user
	return &u, nil
}

func (r *stubSessionRepo) Set(_ context.Context, user domain.User) error {
	r.user = &user
	r.sets++
	return nil
}

func (r *stubSessionRepo) Clear(_ context.Context) error {
	r.user = nil
	return nil
}

func newAuthSvc() (*AuthService, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := &stubSessionRepo{}
	return NewAuthService(users, sessions, zerolog.Nop()), users, sessions
}

func TestAuthService_Seed_Idempotent(t *testing.T) {
	svc, repo, _ := newAuthSvc()
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.CreateUser(ctx, "alice", "pw"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if repo.book.Len() != 2 {
		t.Fatalf("expected seed to leave existing document alone, got %d accounts", repo.book.Len())
	}
}

func TestAuthService_Login_SeededAdmin(t *testing.T) {
	svc, _, sessions := newAuthSvc()

	user, err := svc.Login(context.Background(), "Admin", "adaS$128")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "Admin" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sessions.user == nil || sessions.user.Username != "Admin" {
		t.Fatalf("expected session to be set, got %+v", sessions.user)
	}
}

func TestAuthService_CreateUser_ThenLogin(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, "carol", "s3cret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", created.Role)
	}

	user, err := svc.Login(ctx, "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "carol" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_CreateUser_Validation(t *testing.T) {
	svc, _, _ := newAuthSvc()

	if _, err := svc.CreateUser(context.Background(), "", "pw"); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "bob", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestAuthService_CreateUser_Duplicate(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.CreateUser(ctx, "bob", "pass")
	if _, err := svc.CreateUser(ctx, "bob", "pass2"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.CreateUser(ctx, domain.AdminUsername, "other"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected a second admin to be rejected, got %v", err)
	}
}

func TestAuthService_Login_Failures_KeepSession(t *testing.T) {
	svc, _, sessions := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.CreateUser(ctx, "dave", "goodpass")
	if _, err := svc.Login(ctx, "dave", "goodpass"); err != nil {
		t.Fatalf("login: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{"wrong password", "dave", "badpass", domain.ErrInvalidCredentials},
		{"unknown user", "ghost", "pass", domain.ErrInvalidCredentials},
		{"case mismatch", "Dave", "goodpass", domain.ErrInvalidCredentials},
		{"empty password", "dave", "", domain.ErrMissingCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Login(ctx, tc.username, tc.password)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if user != nil {
				t.Fatalf("expected no user, got %+v", user)
			}
			if sessions.user == nil || sessions.user.Username != "dave" {
				t.Fatalf("session changed to %+v", sessions.user)
			}
		})
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc, repo, sessions := newAuthSvc()
	_ = svc.Seed(context.Background())
	repo.findErr = errors.New("disk gone")

	if _, err := svc.Login(context.Background(), "Admin", "adaS$128"); err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped storage error, got %v", err)
	}
	if sessions.sets != 0 {
		t.Fatalf("session must not be written on failure")
	}
}

func TestAuthService_LogoutAndCurrentUser(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	if u, _ := svc.CurrentUser(ctx); u != nil {
		t.Fatalf("expected no session, got %+v", u)
	}
	_, _ = svc.Login(ctx, "Admin", "adaS$128")
	if u, _ := svc.CurrentUser(ctx); u == nil || u.Username != "Admin" {
		t.Fatalf("expected Admin session, got %+v", u)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if u, _ := svc.CurrentUser(ctx); u != nil {
		t.Fatalf("expected session cleared, got %+v", u)
	}
}

func TestAuthService_Users_InsertionOrder(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.CreateUser(ctx, "zed", "pw")
	_, _ = svc.CreateUser(ctx, "amy", "pw")

	users, err := svc.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	want := []domain.User{
		{Username: "Admin", Role: domain.RoleAdmin},
		{Username: "zed", Role: domain.RoleUser},
		{Username: "amy", Role: domain.RoleUser},
	}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i := range want {
		if users[i] != want[i] {
			t.Fatalf("users[%d] = %+v, want %+v", i, users[i], want[i])
		}
	}
}

func TestAuthService_DeleteUser(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.CreateUser(ctx, "erin", "pw")
	if err := svc.DeleteUser(ctx, "erin"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteUser(ctx, "nobody"); err != nil {
		t.Fatalf("deleting an unknown user should be a no-op, got %v", err)
	}
	if err := svc.DeleteUser(ctx, domain.AdminUsername); err != nil {
		t.Fatalf("deleting admin should be silently ignored, got %v", err)
	}

	users, _ := svc.Users(ctx)
	if len(users) != 1 || users[0].Username != domain.AdminUsername {
		t.Fatalf("expected only admin to remain, got %+v", users)
	}
}

func TestAuthService_DeleteUser_KeepsStaleSession(t *testing.T) {
	svc, _, _ := newAuthSvc()
	ctx := context.Background()

	_, _ = svc.CreateUser(ctx, "frank", "pw")
	_, _ = svc.Login(ctx, "frank", "pw")
	_ = svc.DeleteUser(ctx, "frank")

	u, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u == nil || u.Username != "frank" {
		t.Fatalf("expected stale session to survive deletion, got %+v", u)
	}
}
