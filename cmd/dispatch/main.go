package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/minesite/dispatch-form/internal/infrastructure/config"
	"github.com/minesite/dispatch-form/pkg/logger"
)

var (
	envFile string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Bus dispatch sheet service",
	Long: `dispatch runs the bus dispatch form API and offers admin commands
against the same store: driver roster, user accounts and submissions.

Configuration comes from the environment (and an optional .env file).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}

		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return err
		}

		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.Development(),
			Service: "dispatch",
			Output:  os.Stderr,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(serveCmd, driversCmd, usersCmd, submissionsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
