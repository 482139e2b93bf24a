package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"jokesapi/src/infra/logger"
)

// maxLoggedBody caps how much of each body lands in the log line.
const maxLoggedBody = 2048

// Logging emits one line per request carrying the request id, the API path
// and both bodies. The level follows the response status.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		api := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			api += "?" + q
		}

		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		start := time.Now()
		c.Next()

		status := rec.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.WithRequestID(log, GetRequestID(c)).Log(c.Request.Context(), level, "request",
			"method", c.Request.Method,
			"api", api,
			"status", status,
			"latency", time.Since(start),
			"request", truncate(reqBody),
			"response", truncate(rec.body.Bytes()),
		)
	}
}

// responseCapture copies the response body while delegating to the
// original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

func truncate(b []byte) string {
	if len(b) <= maxLoggedBody {
		return string(b)
	}
	return string(b[:maxLoggedBody]) + "...(truncated)"
}
