package api

import (
	"context"
	"net/http"
	"time"

	"reciplette/internal/domain"
	"reciplette/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the database answers a ping
func HealthHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.Ping(ctx); err != nil {
			fail(c, http.StatusServiceUnavailable, domain.MessageDatabaseUnavailable, err, nil)
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
