package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemOwner(t *testing.T) {
	cartID := uint(3)
	orderID := uint(7)

	cartItem := LineItem{CartID: &cartID}
	owner, err := cartItem.Owner()
	assert.NoError(t, err)
	assert.Equal(t, Owner{Kind: OwnerCart, ID: 3}, owner)

	orderItem := LineItem{OrderID: &orderID}
	owner, err = orderItem.Owner()
	assert.NoError(t, err)
	assert.Equal(t, Owner{Kind: OwnerOrder, ID: 7}, owner)
}

func TestLineItemOwner_ExactlyOne(t *testing.T) {
	cartID := uint(3)
	orderID := uint(7)

	orphan := LineItem{}
	_, err := orphan.Owner()
	assert.ErrorIs(t, err, ErrNoOwner)

	both := LineItem{CartID: &cartID, OrderID: &orderID}
	_, err = both.Owner()
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestCartTotalPrice(t *testing.T) {
	cart := Cart{Items: []LineItem{
		{Price: decimal.NewFromFloat(2.50), Quantity: 2},
		{Price: decimal.NewFromFloat(0.01), Quantity: 1},
	}}

	assert.True(t, cart.TotalPrice().Equal(decimal.NewFromFloat(5.01)),
		"got %s", cart.TotalPrice())
}

func TestLineItemSubtotal(t *testing.T) {
	item := LineItem{Price: decimal.NewFromFloat(19.99), Quantity: 3}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromFloat(59.97)),
		"got %s", item.Subtotal())
}
