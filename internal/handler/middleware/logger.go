package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"gym-planner/pkg/logger"
)

// RequestLogger логирует каждый HTTP-запрос через переданный логгер.
// Запросы со статусом 5xx логируются уровнем Error, остальные — Info.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		fields := map[string]any{
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			fields["errors"] = errs
		}

		if c.Writer.Status() >= 500 {
			log.Error("http request", fields)
		} else {
			log.Info("http request", fields)
		}
	}
}
