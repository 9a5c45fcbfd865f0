package middleware

import (
	"log/slog"
	"time"

	"steelcatalog/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger puts a request-scoped logger into the request context and
// writes one completion line per request.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		l := base.With(
			"method", c.Request.Method,
			"path", c.FullPath(),
			"url", c.Request.URL.Path,
			"remote_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"request_id", rid,
		)
		c.Request = c.Request.WithContext(logging.IntoContext(c.Request.Context(), l))

		start := time.Now()
		c.Next()
		dur := time.Since(start)
		status := c.Writer.Status()

		switch {
		case status >= 500:
			l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", c.Errors.String())
		case status >= 400:
			l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
		default:
			l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Writer.Size())
		}
	}
}
