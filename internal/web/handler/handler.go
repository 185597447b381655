// Package handler maps form submissions onto record operations and
// picks the next view: a redirect on success, a re-rendered form with
// an in-page message on failure.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. A non-numeric id is treated
// the same as a missing record.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error", gin.H{
		"Title":   "Not Found",
		"Status":  http.StatusNotFound,
		"Message": message,
	})
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error", gin.H{
		"Title":   "Internal Server Error",
		"Status":  http.StatusInternalServerError,
		"Message": "An unexpected error occurred.",
	})
}
