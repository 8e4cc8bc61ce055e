package routes

import (
	"github.com/gin-gonic/gin"

	mailController "github.com/JAX838/divine-sounds/controllers/mailctl"
)

func SetupMailRoutes(api *gin.RouterGroup, deps Deps) {
	api.POST("/mail/contact", mailController.SendContactMessage(deps.Mailer))
}
