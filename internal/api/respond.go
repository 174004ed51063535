package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// fail logs the error with its context and answers with a plain-text message
func fail(c *gin.Context, status int, message string, err error, fields logrus.Fields) {
	entry := logrus.WithFields(fields).WithFields(logrus.Fields{
		"route":  c.FullPath(), // Matched route pattern
		"status": status,       // Response status
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(message) // Database or storage failure
	} else {
		entry.Debug(message) // Missing row
	}
	c.String(status, message)
}

// redirect sends the browser to target after a form submission
func redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusFound, target)
}

// pathID parses the :id parameter. An ID that is not an unsigned integer
// cannot match any row.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
