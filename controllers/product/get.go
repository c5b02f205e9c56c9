package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/catalog"
)

// GetProducts returns every product, newest first. Search and category
// filtering happen client-side on the full result set.
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
