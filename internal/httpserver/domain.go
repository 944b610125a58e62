package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	adminHTTP "productivity-tracker/internal/admin/delivery/http"
	analyticsHTTP "productivity-tracker/internal/analytics/delivery/http"
	summaryHTTP "productivity-tracker/internal/summary/delivery/http"
	taskHTTP "productivity-tracker/internal/task/delivery/http"
)

// Adding a domain:
//  1. Build its use case in the caller and pass it through Config.
//  2. Create the HTTP handler here.
//  3. Register its routes on the api group.

// setupTaskDomain registers /tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupSummaryDomain registers /summaries and the legacy /generate-summary.
func (srv *HTTPServer) setupSummaryDomain(ctx context.Context, api *gin.RouterGroup) {
	h := summaryHTTP.New(srv.l, srv.summaryUC)
	summaryHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Summary domain registered")
}

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup) {
	h := analyticsHTTP.New(srv.l, srv.analyticsUC, srv.cal)
	analyticsHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Analytics domain registered")
}

func (srv *HTTPServer) setupAdminDomain(ctx context.Context, api *gin.RouterGroup) {
	h := adminHTTP.New(srv.l, srv.adminUC)
	adminHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Admin domain registered")
}
