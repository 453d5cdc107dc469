package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rortrainees/depot-app-chirag/models"
	"gorm.io/gorm"
)

// DeleteProductByID refuses to delete a product that any line item still
// references, whether the item sits in a cart or in an order. The check runs
// inside the delete transaction so a concurrent add-to-cart cannot slip in
// between check and delete.
func DeleteProductByID(db *gorm.DB, productID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			return err
		}

		var refs int64
		if err := tx.Model(&models.LineItem{}).
			Where("product_id = ?", product.ID).
			Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductInUse
		}

		return tx.Delete(&product).Error
	})
}

// DELETE /products/:id (admin)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		if err := DeleteProductByID(db, uint(id)); err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, ErrProductInUse):
				c.JSON(http.StatusConflict, gin.H{"error": "Line items present"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
