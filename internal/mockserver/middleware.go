package mockserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const subjectKey = "subject"

// requestLogger logs every request with its outcome.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if code, ok := c.Get(envelopeCodeKey); ok {
			fields = append(fields, zap.Any("code", code))
		}
		if subject, ok := c.Get(subjectKey); ok {
			fields = append(fields, zap.Any("subject", subject))
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			logger.Error("HTTP request", fields...)
		case status >= 400:
			logger.Warn("HTTP request", fields...)
		default:
			logger.Info("HTTP request", fields...)
		}
	}
}

// simulateLatency delays the request, giving up early if the client
// goes away.
func simulateLatency(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-c.Request.Context().Done():
				timer.Stop()
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

// requireBearer rejects requests without a valid token signed with
// secret.
func requireBearer(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		subject, err := verifyToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Set(envelopeCodeKey, http.StatusUnauthorized)
	c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
		Code:    http.StatusUnauthorized,
		Data:    nil,
		Message: message,
	})
}
