package middlewares

import (
	"time"

	"github.com/dnsfilter/dnsfilter-report/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog registra cada requisição no logger estruturado
func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String(logging.FieldRequestID, c.GetString(RequestIDKey)),
			zap.String(logging.FieldMethod, c.Request.Method),
			zap.String(logging.FieldPath, c.Request.URL.Path),
			zap.Int(logging.FieldStatus, status),
			zap.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String(logging.FieldError, c.Errors.String()))
		}

		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
