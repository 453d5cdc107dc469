package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/rortrainees/depot-app-chirag/controllers/product"
	"github.com/rortrainees/depot-app-chirag/middleware"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		// Public catalog
		products.GET("/", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		// Spreadsheet export (API-key protected)
		products.GET("/export",
			middleware.ValidateAPIKey,
			productcontroller.ExportProductsToExcel(db),
		)

		// Catalog management (admin)
		products.POST("/", middleware.ValidateAdminToken, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateAdminToken, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateAdminToken, productcontroller.DeleteProduct(db))
	}
}
