package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Logging runs before Auth in the chain, so the teacher account is only
// known after c.Next() returns.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := log.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString("request_id"),
		}
		if teacherID, ok := c.Get("teacher_id"); ok {
			if id, ok := teacherID.(uuid.UUID); ok {
				fields["teacher_id"] = id.String()
			}
		}
		log.WithFields(fields).Info("request completed")
	}
}
