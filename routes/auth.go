package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JAX838/divine-sounds/auth"
)

func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	authGroup := api.Group("/auth")
	{
		// One-time admin setup
		authGroup.POST("/register", auth.RegisterAdmin(deps.DB))
		authGroup.POST("/login", auth.Login(deps.DB, deps.JWTSecret))
	}
}
