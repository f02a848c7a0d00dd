// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError sends a JSON error body. The message is surfaced
// verbatim to the caller's error banner.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
