package routes

import (
	"github.com/gin-gonic/gin"

	categorycontroller "github.com/imransheikh-git/catalog-admin-api/controllers/category"
)

// SetupDirectoryRoutes registers the read-only hierarchy listings the admin
// form uses to populate its dropdowns.
func SetupDirectoryRoutes(r *gin.Engine, deps Deps) {
	r.GET("/categories", categorycontroller.GetCategories(deps.Directory))
	r.GET("/subcategories", categorycontroller.GetSubcategories(deps.Directory))
}
