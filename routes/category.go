package routes

import (
	"github.com/gin-gonic/gin"

	categoryController "github.com/JAX838/divine-sounds/controllers/category"
	"github.com/JAX838/divine-sounds/middleware"
)

func SetupCategoryRoutes(api *gin.RouterGroup, deps Deps) {
	categories := api.Group("/categories")
	{
		categories.GET("", categoryController.GetCategories(deps.Catalog))

		authed := categories.Group("")
		authed.Use(middleware.ValidateToken(deps.JWTSecret))
		{
			authed.POST("", categoryController.CreateCategory(deps.Catalog))
			authed.DELETE("/:id", categoryController.DeleteCategory(deps.Catalog))
		}
	}
}
