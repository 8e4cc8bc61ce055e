package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/JAX838/divine-sounds/controllers/order"
	"github.com/JAX838/divine-sounds/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	ordersGroup := api.Group("/orders")
	{
		// Checkout is public; everything else is back office.
		ordersGroup.POST("", orderControllers.PlaceOrderHandler(deps.Engine, deps.Feed))

		authed := ordersGroup.Group("")
		authed.Use(middleware.ValidateToken(deps.JWTSecret))
		{
			authed.GET("", orderControllers.GetAllOrdersHandler(deps.Engine))
			authed.GET("/ws", deps.Feed.Handler())
			authed.GET("/:id", orderControllers.GetOrderByIDHandler(deps.Engine))
			authed.PATCH("/:id/status", orderControllers.UpdateOrderStatusHandler(deps.Engine, deps.Feed))
			authed.DELETE("/:id", orderControllers.DeleteOrderHandler(deps.Engine))
		}
	}
}
