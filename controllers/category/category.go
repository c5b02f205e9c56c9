package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/catalog"
)

// GetCategories returns every category. The hierarchy is managed elsewhere;
// this surface is read-only.
func GetCategories(dir catalog.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := dir.ListCategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetSubcategories returns every subcategory with its owning category name.
func GetSubcategories(dir catalog.Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategories, err := dir.ListSubcategories()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategories"})
			return
		}
		c.JSON(http.StatusOK, subcategories)
	}
}
