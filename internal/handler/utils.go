package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. It writes a 400 and returns false
// when the parameter is not an integer.
func parseID(c *gin.Context, code, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, code, message)
		return 0, false
	}
	return id, true
}
