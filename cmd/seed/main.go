package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/nutrilog/internal/seed"
	"github.com/mmynk/nutrilog/pkg/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		baseURL  string
		timeout  time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:          "nutrilog-seed",
		Short:        "Load sample users and meals into a running nutrilog server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(logLevel, logging.FormatText); err != nil {
				return err
			}

			seeder := seed.New(baseURL, &http.Client{Timeout: timeout})
			report, err := seeder.Run(cmd.Context())
			if err != nil {
				slog.Error("Seeding aborted", "error", err)
				return err
			}

			slog.Info("Seeding finished",
				"registered", report.Registered,
				"existing", report.Existing,
				"users_failed", report.UsersFailed,
				"meals_logged", report.MealsLogged,
				"meals_failed", report.MealsFailed,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "http://127.0.0.1:5000", "nutrilog server URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}
