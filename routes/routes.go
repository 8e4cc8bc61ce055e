package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/JAX838/divine-sounds/controllers/order"
	"github.com/JAX838/divine-sounds/mail"
	"github.com/JAX838/divine-sounds/orders"
	"github.com/JAX838/divine-sounds/store"
)

// Deps carries every constructed collaborator the handlers need. Built once
// in main and passed down; no package-level state.
type Deps struct {
	DB        *gorm.DB
	JWTSecret string
	Catalog   store.CatalogStore
	Engine    *orders.Engine
	Feed      *orderControllers.Feed
	Mailer    *mail.Mailer
}

// SetupRoutes is the single entry-point that wires up every route group
// under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api")

	SetupAuthRoutes(api, deps)
	SetupProductRoutes(api, deps)
	SetupCategoryRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupMailRoutes(api, deps)
}
