package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"gym-planner/internal/config"
	"gym-planner/internal/handler/response"
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit ограничивает частоту запросов для каждого клиентского IP.
// Лимитеры неактивных клиентов вычищаются из карты по мере обращений.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	clients := make(map[string]*ipLimiter)
	var mu sync.Mutex

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		client, exists := clients[ip]
		if !exists {
			client = &ipLimiter{
				limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
			}
			clients[ip] = client
		}
		client.lastSeen = now
		allowed := client.limiter.Allow()

		for addr, cl := range clients {
			if now.Sub(cl.lastSeen) > 10*time.Minute {
				delete(clients, addr)
			}
		}
		mu.Unlock()

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "rate_limit_exceeded", "Превышен лимит запросов, повторите позже", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
