package main

import (
	"context"

	"github.com/minesite/dispatch-form/internal/core/service"
	"github.com/minesite/dispatch-form/internal/infrastructure/db"
	"github.com/minesite/dispatch-form/internal/infrastructure/db/document"
	"github.com/minesite/dispatch-form/pkg/logger"
)

// app holds the services wired over one opened store.
type app struct {
	backend     *db.Backend
	auth        *service.AuthService
	drivers     *service.DriverService
	submissions *service.SubmissionService
}

func openApp(ctx context.Context) (*app, error) {
	log := logger.Get()
	backend, err := db.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	kv := backend.Store

	return &app{
		backend:     backend,
		auth:        service.NewAuthService(document.NewUserRepository(kv), document.NewSessionRepository(kv), log),
		drivers:     service.NewDriverService(document.NewDriverRepository(kv), log),
		submissions: service.NewSubmissionService(document.NewSubmissionRepository(kv), log),
	}, nil
}

func (a *app) Close() {
	if err := a.backend.Close(); err != nil {
		logger.Get().Warn().Err(err).Msg("close store")
	}
}
