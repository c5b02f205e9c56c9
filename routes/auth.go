package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(deps.Credentials, deps.Tokens, deps.Production))
	}
}
