package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/rortrainees/depot-app-chirag/controllers/order"
	"github.com/rortrainees/depot-app-chirag/mailer"
	"github.com/rortrainees/depot-app-chirag/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, notifier mailer.Notifier) {
	orders := r.Group("/orders")
	{
		// Checkout: turn the session cart into an order
		orders.POST("/", orderControllers.CheckoutHandler(db, notifier))

		// Order lookup (buyer lands here from the payment return URL)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// websocket feed of newly placed orders
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Admin management
		orders.GET("/", middleware.ValidateAdminToken, orderControllers.GetAllOrdersHandler(db))
		orders.PUT("/:orderID/ship", middleware.ValidateAdminToken, orderControllers.ShipOrderHandler(db, notifier))
		orders.DELETE("/:orderID", middleware.ValidateAdminToken, orderControllers.DeleteOrderHandler(db))
	}
}
