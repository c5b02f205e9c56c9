package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/auth"
	"github.com/imransheikh-git/catalog-admin-api/catalog"
)

// Deps carries everything the route groups need.
type Deps struct {
	Catalog     *catalog.Service
	Directory   catalog.Directory
	Credentials auth.CredentialVerifier
	Tokens      *auth.TokenIssuer
	Production  bool
}

// SetupRoutes is the single entry-point that wires up the auth, product, and
// directory route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Product routes (mutations behind the session cookie)
	SetupProductRoutes(r, deps)

	// Read-only category directory routes
	SetupDirectoryRoutes(r, deps)
}
