package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"productivity-tracker/internal/admin"
	"productivity-tracker/internal/analytics"
	"productivity-tracker/internal/middleware"
	"productivity-tracker/internal/summary"
	"productivity-tracker/internal/task"
	"productivity-tracker/pkg/datemath"
	"productivity-tracker/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	srv             *http.Server
	l               log.Logger
	port            int
	mode            string
	environment     string
	apiPrefix       string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Storage
	db *gorm.DB

	// Domains
	cal         *datemath.Calendar
	taskUC      task.UseCase
	summaryUC   summary.UseCase
	analyticsUC analytics.UseCase
	adminUC     admin.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	APIPrefix       string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Storage
	DB *gorm.DB

	// Domains
	Calendar    *datemath.Calendar
	TaskUC      task.UseCase
	SummaryUC   summary.UseCase
	AnalyticsUC analytics.UseCase
	AdminUC     admin.UseCase
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		apiPrefix:       cfg.APIPrefix,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		db:              cfg.DB,
		cal:             cfg.Calendar,
		taskUC:          cfg.TaskUC,
		summaryUC:       cfg.SummaryUC,
		analyticsUC:     cfg.AnalyticsUC,
		adminUC:         cfg.AdminUC,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if srv.cal == nil {
		srv.cal = datemath.NewWithLocation(nil)
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.taskUC == nil || srv.summaryUC == nil || srv.analyticsUC == nil || srv.adminUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
