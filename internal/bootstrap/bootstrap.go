// Package bootstrap assembles storage, AI clients and use cases from config.
// Both the API server and the seed command start from here.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"productivity-tracker/config"
	"productivity-tracker/internal/admin"
	adminUC "productivity-tracker/internal/admin/usecase"
	"productivity-tracker/internal/analytics"
	analyticsUC "productivity-tracker/internal/analytics/usecase"
	"productivity-tracker/internal/coach"
	"productivity-tracker/internal/model"
	"productivity-tracker/internal/search"
	"productivity-tracker/internal/summary"
	summaryRepo "productivity-tracker/internal/summary/repository"
	summaryQdrant "productivity-tracker/internal/summary/repository/qdrant"
	summaryRDB "productivity-tracker/internal/summary/repository/rdb"
	summaryUC "productivity-tracker/internal/summary/usecase"
	"productivity-tracker/internal/task"
	taskRDB "productivity-tracker/internal/task/repository/rdb"
	taskUC "productivity-tracker/internal/task/usecase"
	"productivity-tracker/pkg/database"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/llmprovider"
	"productivity-tracker/pkg/log"
	"productivity-tracker/pkg/openai"
	"productivity-tracker/pkg/qdrant"
)

// App holds the wired use cases and the resources they share.
type App struct {
	DB       *gorm.DB
	Calendar *datemath.Calendar

	// VectorSearch reports whether summaries are embedded into Qdrant.
	VectorSearch bool

	Task      task.UseCase
	Summary   summary.UseCase
	Analytics analytics.UseCase
	Admin     admin.UseCase
}

// Build opens the database, connects the optional AI services and creates
// every use case. AI features that are not configured are switched off
// rather than failing startup.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	cal, err := datemath.New(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, l, database.Config{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.DSN,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		LogLevel: cfg.Database.LogLevel,
	}, &model.Task{}, &model.WeeklySummary{})
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	l.Infof(ctx, "Database ready (driver=%s)", cfg.Database.Driver)

	var (
		writer coach.Writer
		llm    search.Generator
	)
	if cfg.LLM.Enabled {
		manager, err := newLLMManager(cfg, l)
		if err != nil {
			l.Warnf(ctx, "LLM disabled: %v", err)
		} else {
			writer = coach.New(manager, l)
			if cfg.Search.ImproveQuery {
				llm = manager
			}
			l.Info(ctx, "LLM provider manager initialized")
		}
	} else {
		l.Warn(ctx, "LLM disabled by config, summary generation is unavailable")
	}

	vectors := newVectorRepository(ctx, cfg, l)

	tRepo := taskRDB.New(db, l)
	sRepo := summaryRDB.New(db, l)
	improver := search.NewQueryImprover(l, llm, cfg.Search.CacheSize, cfg.Search.CacheTTL)

	sUC := summaryUC.New(l, sRepo, vectors, tRepo, writer, improver, cal, cfg.Qdrant.SimilarityThreshold)

	return &App{
		DB:           db,
		Calendar:     cal,
		VectorSearch: vectors != nil,
		Task:         taskUC.New(tRepo, l),
		Summary:      sUC,
		Analytics:    analyticsUC.New(l, analytics.NewBucketer(cal), tRepo, sRepo),
		Admin:        adminUC.New(l, tRepo, sRepo, sUC, writer, cal, nil),
	}, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	return database.Close(a.DB)
}

func newLLMManager(cfg *config.Config, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	return llmprovider.NewManager(providers, managerCfg, l), nil
}

// newVectorRepository returns nil when semantic search cannot run, which
// leaves the summary use case on keyword scoring.
func newVectorRepository(ctx context.Context, cfg *config.Config, l log.Logger) summaryRepo.VectorRepository {
	if !cfg.Embedding.Enabled() || cfg.Qdrant.URL == "" {
		l.Warn(ctx, "Vector search disabled: embedding API key or qdrant url missing")
		return nil
	}

	embedder, err := openai.New(openai.Config{
		APIKey:         cfg.Embedding.APIKey,
		BaseURL:        cfg.Embedding.BaseURL,
		EmbeddingModel: cfg.Embedding.Model,
	})
	if err != nil {
		l.Warnf(ctx, "Vector search disabled: %v", err)
		return nil
	}

	repo := summaryQdrant.New(qdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, cfg.Embedding.VectorSize, l)
	if err := repo.EnsureCollection(ctx); err != nil {
		l.Warnf(ctx, "Vector search disabled: %v", err)
		return nil
	}

	l.Infof(ctx, "Vector search enabled (collection=%s)", cfg.Qdrant.CollectionName)
	return repo
}
