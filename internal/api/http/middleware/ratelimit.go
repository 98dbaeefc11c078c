package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/coinvest-server/internal/logger"
	"github.com/dtroode/coinvest-server/internal/model"
)

// RateLimit admits at most Max requests per client IP per Window for one route group.
type RateLimit struct {
	limiter model.RateLimiter
	scope   string
	window  time.Duration
	max     int
	logger  *logger.Logger
}

// NewRateLimit creates a limiter; scope namespaces keys so groups do not share counters.
func NewRateLimit(limiter model.RateLimiter, scope string, window time.Duration, max int, logger *logger.Logger) *RateLimit {
	return &RateLimit{
		limiter: limiter,
		scope:   scope,
		window:  window,
		max:     max,
		logger:  logger,
	}
}

func (m *RateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := m.scope + ":" + c.ClientIP()

		decision, err := m.limiter.Allow(c.Request.Context(), key, m.window, m.max)
		if err != nil {
			m.logger.Error("RateLimit middleware: limiter unavailable",
				"scope", m.scope,
				"error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(m.max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retry := int(time.Until(decision.ResetAt).Round(time.Second) / time.Second)
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			m.logger.Info("RateLimit middleware: request throttled",
				"scope", m.scope,
				"client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			return
		}

		c.Next()
	}
}
