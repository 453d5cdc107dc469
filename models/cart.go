package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the anonymous, session-scoped shopping cart. Token is the opaque
// value stored in the visitor's cookie; the cart row itself is destroyed once
// an order is placed from it.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Token     string     `gorm:"uniqueIndex;not null" json:"-"`
	Items     []LineItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalPrice sums price x quantity over the cart's line items.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type OwnerKind string

const (
	OwnerCart  OwnerKind = "cart"
	OwnerOrder OwnerKind = "order"
)

// Owner identifies which record a line item currently belongs to.
type Owner struct {
	Kind OwnerKind
	ID   uint
}

// ErrNoOwner reports a line item whose cart/order references violate the
// exactly-one-owner rule.
var ErrNoOwner = errors.New("line item must belong to exactly one cart or order")

// LineItem is a single product entry inside a cart or an order. Title and
// Price are snapshotted from the product at the time it is added, so later
// catalog edits do not rewrite history. Exactly one of CartID/OrderID is set.
type LineItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"index;not null" json:"product_id"`
	CartID    *uint           `gorm:"index" json:"cart_id,omitempty"`
	OrderID   *uint           `gorm:"index" json:"order_id,omitempty"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `gorm:"type:numeric(8,2)" json:"price"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Owner returns the line item's current owner as a tagged value, or ErrNoOwner
// when the cart/order references are not mutually exclusive.
func (li *LineItem) Owner() (Owner, error) {
	switch {
	case li.CartID != nil && li.OrderID == nil:
		return Owner{Kind: OwnerCart, ID: *li.CartID}, nil
	case li.OrderID != nil && li.CartID == nil:
		return Owner{Kind: OwnerOrder, ID: *li.OrderID}, nil
	default:
		return Owner{}, ErrNoOwner
	}
}

// Subtotal is price x quantity for this line item.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
