// Command seed replaces the database contents with generated sample data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"productivity-tracker/config"
	"productivity-tracker/internal/admin"
	"productivity-tracker/internal/bootstrap"
	"productivity-tracker/pkg/log"
)

const seedTimeout = 10 * time.Minute

func main() {
	var (
		days      int
		reference string
	)

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all tasks and summaries with generated sample data",
		Long:  "Deletes every stored task and weekly summary, then generates realistic tasks for the last N days and a summary for each week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), days, reference)
		},
	}
	rootCmd.Flags().IntVar(&days, "days", admin.DefaultSeedDays, "number of days of history to generate")
	rootCmd.Flags().StringVar(&reference, "reference", "", "last day to generate (YYYY-MM-DD), defaults to today")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, days int, reference string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer app.Close()

	ref := time.Now().In(app.Calendar.Location())
	if reference != "" {
		if ref, err = app.Calendar.ParseDate(reference); err != nil {
			return fmt.Errorf("invalid --reference: %w", err)
		}
	}

	out, err := app.Admin.Seed(ctx, admin.SeedInput{Reference: ref, Days: days})
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Seeded %d tasks and %d weekly summaries", out.TasksCreated, out.SummariesCreated)
	return nil
}
