package orderControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	cartControllers "github.com/rortrainees/depot-app-chirag/controllers/cart"
	"github.com/rortrainees/depot-app-chirag/mailer"
	"github.com/rortrainees/depot-app-chirag/models"
	"gorm.io/gorm"
)

// ErrCartEmpty is returned when checkout is attempted against a cart that has
// no line items, does not exist, or was already consumed by a previous
// checkout.
var ErrCartEmpty = errors.New("cart is empty")

type CheckoutInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	PayType string `json:"pay_type"`
}

// PlaceOrder turns the cart identified by cartToken plus the submitted order
// fields into a persisted order.
//
// Contract, in sequence:
//  1. empty or missing cart fails with ErrCartEmpty before anything else;
//  2. field validation collects every failure into a ValidationError, nothing
//     is persisted;
//  3. the order row is created, all line items are re-parented from the cart
//     to it in one UPDATE, and the cart row is deleted, all inside one
//     transaction; the re-parenting doubles as the serialization point, so a
//     concurrent double-submit resolves to ErrCartEmpty instead of a second
//     order;
//  4. the confirmation mail is dispatched after commit and a failure there
//     only logs a warning, the committed order stands.
func PlaceOrder(db *gorm.DB, notifier mailer.Notifier, cartToken string, input CheckoutInput) (*models.Order, error) {
	cart, err := findCart(db, cartToken)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		Name:    input.Name,
		Address: input.Address,
		Email:   input.Email,
		PayType: input.PayType,
		Status:  models.OrderStatusPending,
	}
	if errs := order.Validate(); len(errs) > 0 {
		return nil, &models.ValidationError{Fields: errs}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Re-parenting the items is the claim on the cart. A concurrent
		// checkout that lost the race moves zero rows and backs out with
		// ErrCartEmpty, taking its order row with it.
		moved := tx.Model(&models.LineItem{}).
			Where("cart_id = ?", cart.ID).
			Updates(map[string]interface{}{"cart_id": nil, "order_id": order.ID})
		if moved.Error != nil {
			return moved.Error
		}
		if moved.RowsAffected == 0 {
			return ErrCartEmpty
		}

		return tx.Delete(&models.Cart{}, cart.ID).Error
	})
	if err != nil {
		if errors.Is(err, ErrCartEmpty) {
			return nil, ErrCartEmpty
		}
		return nil, fmt.Errorf("checkout commit failed: %w", err)
	}

	if err := db.Preload("Items").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	// Post-commit side effects. Mail is fire-and-forget: the order is already
	// committed and must stand even if delivery fails.
	go func(placed models.Order) {
		if err := notifier.OrderReceived(&placed); err != nil {
			log.Printf("⚠️ Order confirmation mail failed for order %d: %v", placed.ID, err)
		}
	}(order)
	broadcastNewOrder(order)

	return &order, nil
}

// findCart resolves the checkout precondition: a usable, non-empty cart.
func findCart(db *gorm.DB, cartToken string) (*models.Cart, error) {
	if cartToken == "" {
		return nil, ErrCartEmpty
	}

	var cart models.Cart
	if err := db.Where("token = ?", cartToken).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}

	var count int64
	if err := db.Model(&models.LineItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrCartEmpty
	}
	return &cart, nil
}

// POST /orders
func CheckoutHandler(db *gorm.DB, notifier mailer.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		token, _ := c.Cookie(cartControllers.CartCookie)
		order, err := PlaceOrder(db, notifier, token, input)
		if err != nil {
			var verr *models.ValidationError
			switch {
			case errors.Is(err, ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			case errors.As(err, &verr):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.SetCookie(cartControllers.CartCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusCreated, order)
	}
}
