package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/rortrainees/depot-app-chirag/controllers/cart"
	"gorm.io/gorm"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.GET("/", cartControllers.GetCart(db))
		cart.POST("/items", cartControllers.AddCartItem(db))
		cart.DELETE("/items/:productID", cartControllers.DeleteCartItem(db))
		cart.DELETE("/", cartControllers.ClearCart(db))
	}
}
