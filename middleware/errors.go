package middleware

import (
	"net/http"

	"gamehub/apperror"
	"gamehub/monitoring"
	"gamehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const errorKindKey = "error_kind"

// ErrorResponder turns the last error attached with c.Error into
// {"msg": ...} with the status of its normalized kind. Handlers only attach
// errors; nothing else writes failure bodies.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.Normalize(c.Errors.Last().Err)
		c.Set(errorKindKey, string(appErr.Kind))
		monitoring.ErrorsTotal.WithLabelValues(string(appErr.Kind), monitoring.Endpoint(c)).Inc()

		if appErr.Kind == apperror.Internal {
			utils.Log.WithFields(logrus.Fields{
				"error":  appErr.Error(),
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).Error("Request error occurred")
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(appErr.Status(), gin.H{"msg": appErr.Message})
	}
}

// NotFoundRoute answers requests that match no registered route.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "path not found"})
}
