package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validOrder() Order {
	return Order{
		Name:    "Dave Thomas",
		Address: "123 Main St",
		Email:   "dave@example.com",
		PayType: "Check",
	}
}

func TestOrderValidate_Valid(t *testing.T) {
	order := validOrder()
	assert.Empty(t, order.Validate())
}

func TestOrderValidate_AcceptsEveryPaymentType(t *testing.T) {
	for _, payType := range PaymentTypes {
		order := validOrder()
		order.PayType = payType
		assert.Empty(t, order.Validate(), "pay type %q should validate", payType)
	}
}

func TestOrderValidate_RejectsUnknownPayType(t *testing.T) {
	order := validOrder()
	order.PayType = "Bitcoin"

	errs := order.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "is not included in the list", errs["pay_type"])
}

func TestOrderValidate_CollectsAllFailures(t *testing.T) {
	order := Order{}

	errs := order.Validate()
	assert.Len(t, errs, 4)
	for _, field := range []string{"name", "address", "email", "pay_type"} {
		assert.Contains(t, errs, field)
	}
}

func TestOrderTotalPrice(t *testing.T) {
	order := validOrder()
	order.Items = []LineItem{
		{Title: "Ruby book", Price: decimal.NewFromFloat(19.99), Quantity: 2},
		{Title: "Rails book", Price: decimal.NewFromFloat(10.01), Quantity: 1},
	}

	assert.True(t, order.TotalPrice().Equal(decimal.NewFromFloat(49.99)),
		"got %s", order.TotalPrice())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"pay_type": "is not included in the list",
		"name":     "can't be blank",
	}}
	assert.Equal(t, "validation failed: name, pay_type", err.Error())
}
