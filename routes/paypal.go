package routes

import (
	"github.com/gin-gonic/gin"
	paypalControllers "github.com/rortrainees/depot-app-chirag/controllers/paypal"
	"gorm.io/gorm"
)

func SetupPayPalRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/orders/:orderID/paypal", paypalControllers.PaymentRedirectHandler(db))
}
