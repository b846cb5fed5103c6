package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

// DriverService manages the roster of driver names.
type DriverService struct {
	repo ports.DriverRepository
	log  zerolog.Logger
}

func NewDriverService(repo ports.DriverRepository, log zerolog.Logger) *DriverService {
	return &DriverService{repo: repo, log: log}
}

// Initialize stores the built-in roster when no roster document exists.
func (s *DriverService) Initialize(ctx context.Context) error {
	_, ok, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("initialize drivers: %w", err)
	}
	if ok {
		return nil
	}
	roster := domain.InitialRoster()
	if err := s.repo.Save(ctx, roster); err != nil {
		return fmt.Errorf("initialize drivers: %w", err)
	}
	s.log.Info().Int("count", len(roster)).Msg("seeded driver roster")
	return nil
}

// Drivers returns the stored roster as-is.
func (s *DriverService) Drivers(ctx context.Context) ([]string, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}
	drivers, _, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	if drivers == nil {
		drivers = []string{}
	}
	return drivers, nil
}

func (s *DriverService) AddDriver(ctx context.Context, name string) ([]string, error) {
	trimmed, err := domain.NormalizeDriverName(name)
	if err != nil {
		return nil, err
	}
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	drivers, err := s.repo.Update(ctx, func(current []string) ([]string, error) {
		if domain.RosterContains(current, trimmed) {
			return nil, domain.ErrDuplicateDriver
		}
		return domain.SortRoster(append(current, trimmed)), nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("driver", trimmed).Msg("driver added")
	return drivers, nil
}

// DeleteDriver removes every entry exactly equal to name. Unknown names leave
// the roster unchanged.
func (s *DriverService) DeleteDriver(ctx context.Context, name string) ([]string, error) {
	if err := s.Initialize(ctx); err != nil {
		return nil, err
	}

	drivers, err := s.repo.Update(ctx, func(current []string) ([]string, error) {
		kept := make([]string, 0, len(current))
		for _, d := range current {
			if d != name {
				kept = append(kept, d)
			}
		}
		return domain.SortRoster(kept), nil
	})
	if err != nil {
		return nil, fmt.Errorf("delete driver: %w", err)
	}

	s.log.Info().Str("driver", name).Msg("driver deleted")
	return drivers, nil
}
