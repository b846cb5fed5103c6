package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/minesite/dispatch-form/internal/api"
	"github.com/minesite/dispatch-form/internal/core/service"
	"github.com/minesite/dispatch-form/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	log := logger.Get()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.auth.Seed(ctx); err != nil {
		return err
	}
	if err := a.drivers.Initialize(ctx); err != nil {
		return err
	}

	form, err := service.NewFormSession(ctx, a.auth, a.drivers, a.submissions, log, service.WithNoticeTTL(cfg.NoticeTTL))
	if err != nil {
		return err
	}
	defer form.Close()

	e := api.NewRouter(api.Deps{
		Auth:        a.auth,
		Drivers:     a.drivers,
		Submissions: a.submissions,
		Form:        form,
		Guard:       a.backend.Guard,
		Store:       a.backend.Ping,
		StoreName:   a.backend.Name,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		Swagger:     cfg.Development(),
		Log:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
