package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productivity-tracker/pkg/log"
	"productivity-tracker/pkg/metrics"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID attaches an id to every request, reusing the caller's
// X-Request-ID when present, and stores it on the request context for
// the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > 64 {
			reqID = uuid.NewString()
		}

		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), reqID))

		c.Next()
	}
}

// Logger writes one line per handled request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %dms ip=%s", c.Request.Method, c.Request.URL.Path, status, latency.Milliseconds(), c.ClientIP())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %dms ip=%s", c.Request.Method, c.Request.URL.Path, status, latency.Milliseconds(), c.ClientIP())
		default:
			m.l.Infof(ctx, "%s %s %d %dms ip=%s", c.Request.Method, c.Request.URL.Path, status, latency.Milliseconds(), c.ClientIP())
		}
	}
}

// Metrics records request counts and latency by route template.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start).Seconds())
	}
}
