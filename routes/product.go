package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/imransheikh-git/catalog-admin-api/controllers/product"
	"github.com/imransheikh-git/catalog-admin-api/middleware"
)

// SetupProductRoutes registers the "/products" endpoints. Reads are public;
// every mutating verb sits behind the session middleware.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Catalog))

		protected := products.Group("")
		protected.Use(middleware.RequireSession)
		{
			protected.POST("", productcontroller.CreateProduct(deps.Catalog))
			protected.PATCH("/:id", productcontroller.UpdateProduct(deps.Catalog))
			protected.DELETE("/:id", productcontroller.DeleteProduct(deps.Catalog))
			protected.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
		}
	}
}
