package util

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Error writes the API's uniform error body: {"message": "..."}.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"message": msg})
}

// ServerError logs the underlying error and returns a generic 500 body so
// internals never leak to the caller.
func ServerError(c *gin.Context, msg string, err error) {
	slog.Error(msg, "error", err, "path", c.FullPath())
	Error(c, 500, "Server error")
}
