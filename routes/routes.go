package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rortrainees/depot-app-chirag/mailer"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront, cart,
// order, payment and auth route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, notifier mailer.Notifier) {
	SetupAuthRoutes(r)

	SetupProductRoutes(r, db)

	SetupCartRoutes(r, db)

	SetupOrderRoutes(r, db, notifier)

	SetupPayPalRoutes(r, db)
}
