package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"mealplanner/internal/apperr"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondErr maps application errors to their HTTP status and a
// {"error":{"message","status"}} body. Anything unclassified falls
// through as a 500.
func respondErr(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr})
		return
	}
	logrus.WithFields(logrus.Fields{
		"path":  c.FullPath(),
		"error": err.Error(),
	}).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"message": "Internal server error",
		"status":  http.StatusInternalServerError,
	}})
}

// routeUserID parses the :id route parameter. The owner guard has
// already matched it against the token, so a parse failure here means
// a malformed path.
func routeUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondErr(c, apperr.BadRequest("invalid user id: %s", c.Param("id")))
		return 0, false
	}
	return uint(id), true
}
