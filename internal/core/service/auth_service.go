package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

// AuthService implements user management, login and the stored session.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Seed writes the users document holding only the admin account when none
// exists. An existing document is left untouched.
func (s *AuthService) Seed(ctx context.Context) error {
	ok, err := s.users.Initialized(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if ok {
		return nil
	}
	if err := s.users.Init(ctx, domain.NewUserBook()); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	s.log.Info().Str("username", domain.AdminUsername).Msg("seeded admin account")
	return nil
}

func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if err := s.Seed(ctx); err != nil {
		return nil, err
	}

	account := domain.Account{
		Username:   username,
		Credential: domain.Credential{Password: password, Role: domain.RoleUser},
	}
	if err := s.users.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("username", username).Msg("user created")
	user := account.User()
	return &user, nil
}

// Login checks the credentials and, on success, makes the user the active
// session. A failed attempt leaves the session as it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	if err := s.Seed(ctx); err != nil {
		return nil, err
	}

	account, err := s.users.Find(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}

	user := account.User()
	if err := s.sessions.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("login: store session: %w", err)
	}
	s.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("logged in")
	return &user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns the session user, or nil. It does not check that the
// account still exists.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Users lists every account in store insertion order.
func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	if err := s.Seed(ctx); err != nil {
		return nil, err
	}
	accounts, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]domain.User, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.User())
	}
	return out, nil
}

// DeleteUser removes an account. The admin account is never removed; the
// attempt is logged and otherwise ignored. Active sessions are not touched.
func (s *AuthService) DeleteUser(ctx context.Context, username string) error {
	if username == domain.AdminUsername {
		s.log.Warn().Str("username", username).Msg("cannot delete the admin user")
		return nil
	}
	if err := s.Seed(ctx); err != nil {
		return err
	}
	removed, err := s.users.Delete(ctx, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if removed {
		s.log.Info().Str("username", username).Msg("user deleted")
	}
	return nil
}
