package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAdminEmail allows only callers whose token email appears in the
// ADMIN_EMAILS allow-list (comma separated). Runs after ValidateToken.
func RequireAdminEmail(c *gin.Context) {
	emailVal, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access requires an email claim"})
		c.Abort()
		return
	}
	email := strings.ToLower(emailVal.(string))

	for _, allowed := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if email != "" && email == strings.ToLower(strings.TrimSpace(allowed)) {
			c.Next()
			return
		}
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "Not an admin account"})
	c.Abort()
}
