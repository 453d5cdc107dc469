package paypalControllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rortrainees/depot-app-chirag/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// defaultBaseURL is PayPal's hosted "buy now" sandbox endpoint.
const defaultBaseURL = "https://www.sandbox.paypal.com/cgi-bin/webscr"

// Config is the static merchant side of the redirect URL.
type Config struct {
	Business      string // merchant account identifier
	BaseURL       string // hosted payment page endpoint
	ReturnHost    string // scheme+host the buyer returns to
	InvoicePrefix string
	ItemName      string // fixed description shown on the payment page
	ItemNumber    int
}

// getPayPalConfig reads the merchant configuration from the environment.
func getPayPalConfig() (Config, error) {
	cfg := Config{
		Business:      os.Getenv("PAYPAL_BUSINESS"),
		BaseURL:       os.Getenv("PAYPAL_BASE_URL"),
		ReturnHost:    os.Getenv("APP_HOST"),
		InvoicePrefix: os.Getenv("PAYPAL_INVOICE_PREFIX"),
		ItemName:      os.Getenv("PAYPAL_ITEM_NAME"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if n, err := strconv.Atoi(os.Getenv("PAYPAL_ITEM_NUMBER")); err == nil {
		cfg.ItemNumber = n
	}
	if cfg.Business == "" || cfg.ReturnHost == "" {
		return Config{}, fmt.Errorf("paypal configuration missing")
	}
	return cfg, nil
}

// BuildPayPalURL constructs the hosted-payment redirect for an order. It is a
// pure string builder: no network call, no verification. url.Values encodes
// with sorted keys, so the same inputs always produce the same bytes.
func BuildPayPalURL(order *models.Order, amount decimal.Decimal, cfg Config) string {
	values := url.Values{}
	values.Set("business", cfg.Business)
	values.Set("cmd", "_xclick")
	values.Set("upload", "1")
	values.Set("return", fmt.Sprintf("%s/orders/%d", cfg.ReturnHost, order.ID))
	values.Set("invoice", fmt.Sprintf("%s-%d", cfg.InvoicePrefix, order.ID))
	values.Set("amount", amount.StringFixed(2))
	values.Set("item_name", cfg.ItemName)
	values.Set("item_number", strconv.Itoa(cfg.ItemNumber))
	values.Set("quantity", "1")
	return cfg.BaseURL + "?" + values.Encode()
}

// GET /orders/:orderID/paypal — redirect the buyer to the hosted payment page
// for the order's total.
func PaymentRedirectHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg, err := getPayPalConfig()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		orderID := c.Param("orderID")
		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Redirect(http.StatusFound, BuildPayPalURL(&order, order.TotalPrice(), cfg))
	}
}
