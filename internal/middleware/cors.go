package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the configured frontend origins. A "*" entry or an empty list
// opens the API to any origin, in which case credentials are not allowed.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "X-Search-Mode"},
		MaxAge:        12 * time.Hour,
	}

	cfg.AllowAllOrigins = len(m.cors.AllowedOrigins) == 0
	for _, origin := range m.cors.AllowedOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			break
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = m.cors.AllowedOrigins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}
