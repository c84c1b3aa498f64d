package middleware

import (
	"time"

	"gamehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs all incoming HTTP requests
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		statusCode := c.Writer.Status()

		logLevel := logrus.InfoLevel
		if statusCode >= 500 {
			logLevel = logrus.ErrorLevel
		} else if statusCode >= 400 {
			logLevel = logrus.WarnLevel
		}

		fields := logrus.Fields{
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        statusCode,
			"duration_ms":   duration.Milliseconds(),
			"ip":            c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
			"query":         c.Request.URL.RawQuery,
			"response_size": c.Writer.Size(),
		}
		if kind, ok := c.Get(errorKindKey); ok {
			fields["error_kind"] = kind
		}

		utils.Log.WithFields(fields).Log(logLevel, "HTTP Request")
	}
}
