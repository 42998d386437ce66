package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"splitledger/internal/logger"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "requestID"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestLogging returns a Gin middleware that logs each request with a
// request ID, method, route, status code, latency, and client IP using Zap.
// A well-formed incoming X-Request-ID is reused, otherwise a new one is
// generated.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		log := logger.Get()
		if status >= 500 {
			log.Errorw("request", fields...)
			return
		}
		log.Infow("request", fields...)
	}
}
