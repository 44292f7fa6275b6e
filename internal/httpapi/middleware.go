package httpapi

import (
	"time"

	"github.com/alexanderramin/fuelplan/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID reuses the caller's X-Request-ID or mints one, and tags the
// request context so service events carry it.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(service.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.InfoContext(c.Request.Context(), "http_request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", service.RequestIDFrom(c.Request.Context()),
		)
	}
}
