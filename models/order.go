package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending" // placed, awaiting fulfilment
	OrderStatusShipped OrderStatus = "shipped" // dispatched, customer notified
)

// PaymentTypes is the closed set of accepted pay_type values.
var PaymentTypes = []string{"Check", "Credit card", "Purchase order"}

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"not null" json:"name"`
	Address   string      `gorm:"not null" json:"address"`
	Email     string      `gorm:"not null" json:"email"`
	PayType   string      `gorm:"not null" json:"pay_type"`
	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items     []LineItem  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Validate checks the order fields and collects every failure rather than
// stopping at the first one. An empty map means the order is valid.
func (o *Order) Validate() map[string]string {
	errs := make(map[string]string)

	if o.Name == "" {
		errs["name"] = "can't be blank"
	}
	if o.Address == "" {
		errs["address"] = "can't be blank"
	}
	if o.Email == "" {
		errs["email"] = "can't be blank"
	}
	if o.PayType == "" {
		errs["pay_type"] = "can't be blank"
	} else if !validPayType(o.PayType) {
		errs["pay_type"] = "is not included in the list"
	}

	return errs
}

func validPayType(payType string) bool {
	for _, t := range PaymentTypes {
		if t == payType {
			return true
		}
	}
	return false
}

// TotalPrice sums price x quantity over the order's line items.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ValidationError carries the full field -> message set from a failed
// Validate call so handlers can re-render forms with per-field messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
