package middleware

import (
	"time" // Latency measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RequestLogger logs every request with its status and latency
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start time of the request
		c.Next()            // Process request

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,                 // HTTP method
			"path":       c.Request.URL.Path,               // Request path
			"status":     c.Writer.Status(),                // Response status
			"latency_ms": time.Since(start).Milliseconds(), // Time spent
			"client_ip":  c.ClientIP(),                     // Caller address
		})
		// Server errors are logged by the handler with detail, keep this one short
		switch {
		case c.Writer.Status() >= 500:
			entry.Warn("Request failed")
		default:
			entry.Info("Request handled")
		}
	}
}
