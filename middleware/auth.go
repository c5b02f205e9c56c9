package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/auth"
)

// RequireSession validates the session cookie before any mutating handler
// runs. Missing, malformed, and expired tokens all get the same response.
func RequireSession(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return
	}

	username, err := auth.ParseToken(os.Getenv("JWT_SECRET"), tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return
	}

	c.Set("username", username)
	c.Next()
}
