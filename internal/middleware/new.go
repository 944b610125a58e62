package middleware

import (
	"productivity-tracker/config"
	"productivity-tracker/pkg/log"
)

type Middleware struct {
	l         log.Logger
	cors      config.CORSConfig
	rateLimit config.RateLimitConfig
	limiter   *rateLimiter
}

func New(l log.Logger, corsCfg config.CORSConfig, rateLimitCfg config.RateLimitConfig) Middleware {
	m := Middleware{
		l:         l,
		cors:      corsCfg,
		rateLimit: rateLimitCfg,
	}
	if rateLimitCfg.Enabled && rateLimitCfg.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(rateLimitCfg.RequestsPerMin)
	}
	return m
}
