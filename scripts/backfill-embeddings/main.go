package main

import (
	"context"
	"fmt"
	"os"

	"productivity-tracker/config"
	"productivity-tracker/internal/bootstrap"
	"productivity-tracker/internal/summary"
	"productivity-tracker/pkg/log"
)

const pageSize = 100

// Re-embeds every stored weekly summary into Qdrant, e.g. after switching
// embedding model or recreating the collection.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	app, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize application: %v", err)
	}
	defer app.Close()

	if !app.VectorSearch {
		logger.Fatal(ctx, "Vector search is not configured: set embedding.api_key and qdrant.url")
	}

	logger.Info(ctx, "Starting backfill process...")

	var total, successCount int
	for offset := 0; ; offset += pageSize {
		page, err := app.Summary.List(ctx, summary.ListInput{Limit: pageSize, Offset: offset})
		if err != nil {
			logger.Fatalf(ctx, "Failed to list summaries: %v", err)
		}

		for _, s := range page.Summaries {
			total++
			if err := app.Summary.Index(ctx, s); err != nil {
				logger.Errorf(ctx, "Failed to embed summary %d (week %s): %v", s.ID, s.WeekStart, err)
				continue
			}
			logger.Infof(ctx, "Embedded summary %d/%d: week %s", total, page.Total, s.WeekStart)
			successCount++
		}

		if !page.HasMore {
			break
		}
	}

	logger.Infof(ctx, "Backfill complete! %d/%d summaries successfully embedded.", successCount, total)
}
