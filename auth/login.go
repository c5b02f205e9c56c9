package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler checks the submitted credentials and, on success, sets the
// session cookie. The failure message never says whether the username or the
// password was wrong.
func LoginHandler(verifier CredentialVerifier, issuer *TokenIssuer, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
			return
		}

		if !verifier.Verify(req.Username, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Failed, please check login info and try again"})
			return
		}

		token, err := issuer.Issue(req.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session token"})
			return
		}

		http.SetCookie(c.Writer, SessionCookie(token, production))
		c.JSON(http.StatusOK, gin.H{"message": "Success!"})
	}
}
