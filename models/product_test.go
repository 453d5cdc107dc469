package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() Product {
	return Product{
		Title:       "Programming Ruby",
		Description: "The pickaxe book",
		ImageURL:    "https://cdn.example.com/ruby.jpg",
		Price:       decimal.NewFromFloat(49.95),
	}
}

func TestProductValidate_Valid(t *testing.T) {
	product := validProduct()
	assert.Empty(t, product.Validate())
}

func TestProductValidate_PriceBoundary(t *testing.T) {
	cases := []struct {
		price float64
		ok    bool
	}{
		{0.01, true},
		{0.00, false},
		{-1.00, false},
		{1.00, true},
	}
	for _, tc := range cases {
		product := validProduct()
		product.Price = decimal.NewFromFloat(tc.price)

		errs := product.Validate()
		if tc.ok {
			assert.NotContains(t, errs, "price", "price %.2f should validate", tc.price)
		} else {
			assert.Equal(t, "must be greater than or equal to 0.01", errs["price"],
				"price %.2f should be rejected", tc.price)
		}
	}
}

func TestProductValidate_ImageURLFormat(t *testing.T) {
	cases := []struct {
		url string
		ok  bool
	}{
		{"https://cdn.example.com/ruby.jpg", true},
		{"https://cdn.example.com/ruby.JPG", true},
		{"https://cdn.example.com/ruby.jpeg", true},
		{"https://cdn.example.com/ruby.gif", true},
		{"https://cdn.example.com/ruby.png", true},
		{"https://cdn.example.com/ruby.pdf", false},
		{"https://cdn.example.com/ruby", false},
	}
	for _, tc := range cases {
		product := validProduct()
		product.ImageURL = tc.url

		errs := product.Validate()
		if tc.ok {
			assert.NotContains(t, errs, "image_url", "%q should validate", tc.url)
		} else {
			assert.Equal(t, "must be a URL for GIF, JPG or PNG image", errs["image_url"],
				"%q should be rejected", tc.url)
		}
	}
}

func TestProductValidate_CollectsAllFailures(t *testing.T) {
	product := Product{}

	errs := product.Validate()
	for _, field := range []string{"title", "description", "image_url", "price"} {
		assert.Contains(t, errs, field)
	}
}
