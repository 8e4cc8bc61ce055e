package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/JAX838/divine-sounds/controllers/product"
	"github.com/JAX838/divine-sounds/middleware"
)

func SetupProductRoutes(api *gin.RouterGroup, deps Deps) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(deps.Catalog))

		authed := products.Group("")
		authed.Use(middleware.ValidateToken(deps.JWTSecret))
		{
			authed.POST("", productcontroller.CreateProduct(deps.Catalog))
			authed.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
			authed.PUT("/:id", productcontroller.UpdateProduct(deps.Catalog))
			authed.DELETE("/:id", productcontroller.DeleteProduct(deps.Catalog))
		}

		// Registered after /export-excel so the static route wins.
		products.GET("/:id", productcontroller.GetProductByID(deps.Catalog))
	}
}
