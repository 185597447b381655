package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into a rendered 500 page instead of a dropped
// connection.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic while handling request",
					"path", c.Request.URL.Path,
					"error", err,
				)
				c.HTML(http.StatusInternalServerError, "error", gin.H{
					"Title":   "Internal Server Error",
					"Status":  http.StatusInternalServerError,
					"Message": "An unexpected error occurred.",
				})
				c.Abort()
			}
		}()

		c.Next()
	}
}
