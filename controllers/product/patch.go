package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imransheikh-git/catalog-admin-api/catalog"
)

// UpdateProduct merges the supplied fields onto an existing product. Fields
// absent from the payload keep their stored values.
func UpdateProduct(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var payload catalog.ProductPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		product, err := svc.Update(uint(id), payload)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
