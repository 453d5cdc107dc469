package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rortrainees/depot-app-chirag/models"
	"gorm.io/gorm"
)

// CartCookie is the cookie holding the visitor's opaque cart token.
const CartCookie = "cart_token"

const cartCookieMaxAge = 30 * 24 * 60 * 60 // 30 days

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetOrCreateCart looks up the cart for token. A blank or unknown token is the
// steady-state case for a new visitor, not an error: a fresh cart with a new
// token is created and returned.
func GetOrCreateCart(db *gorm.DB, token string) (*models.Cart, error) {
	if token != "" {
		var cart models.Cart
		err := db.Preload("Items").Where("token = ?", token).First(&cart).Error
		if err == nil {
			return &cart, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	cart := models.Cart{Token: uuid.NewString()}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// DestroyCart deletes the cart with the given token and its line items.
// Destroying an unknown or already-destroyed cart is a no-op.
func DestroyCart(db *gorm.DB, token string) error {
	if token == "" {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("token = ?", token).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}

// AddProductToCart adds a product to the cart. If the cart already holds a
// line item for that product its quantity is incremented; otherwise a new item
// is created with title and price snapshotted from the product.
func AddProductToCart(db *gorm.DB, cart *models.Cart, product *models.Product, quantity int) (*models.LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var item models.LineItem
	err := db.Where("cart_id = ? AND product_id = ?", cart.ID, product.ID).First(&item).Error
	if err == nil {
		item.Quantity += quantity
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = models.LineItem{
		ProductID: product.ID,
		CartID:    &cart.ID,
		Title:     product.Title,
		Price:     product.Price,
		Quantity:  quantity,
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// currentCart resolves the request's cart from the cookie, creating one (and
// setting the cookie) when the visitor has none yet.
func currentCart(c *gin.Context, db *gorm.DB) (*models.Cart, error) {
	token, _ := c.Cookie(CartCookie)
	cart, err := GetOrCreateCart(db, token)
	if err != nil {
		return nil, err
	}
	if cart.Token != token {
		c.SetCookie(CartCookie, cart.Token, cartCookieMaxAge, "/", "", false, true)
	}
	return cart, nil
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := currentCart(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          cart.ID,
			"items":       cart.Items,
			"total_price": cart.TotalPrice(),
		})
	}
}

// POST /cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := currentCart(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		item, err := AddProductToCart(db, cart, &product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /cart/items/:productID
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("productID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		token, _ := c.Cookie(CartCookie)
		var cart models.Cart
		if err := db.Where("token = ?", token).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&models.LineItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(CartCookie)
		if err := DestroyCart(db, token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.SetCookie(CartCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
