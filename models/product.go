package models

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// MinPrice is the lowest price a product may carry.
var MinPrice = decimal.NewFromFloat(0.01)

// imageURLPattern accepts URLs ending in a GIF, JPG or PNG file extension.
var imageURLPattern = regexp.MustCompile(`(?i)\.(gif|jpg|jpeg|png)$`)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks the product fields and collects every failure into a
// field -> message map. An empty map means the product is valid.
func (p *Product) Validate() map[string]string {
	errs := make(map[string]string)

	if p.Title == "" {
		errs["title"] = "can't be blank"
	}
	if p.Description == "" {
		errs["description"] = "can't be blank"
	}
	if p.ImageURL == "" {
		errs["image_url"] = "can't be blank"
	} else if !imageURLPattern.MatchString(p.ImageURL) {
		errs["image_url"] = "must be a URL for GIF, JPG or PNG image"
	}
	if p.Price.LessThan(MinPrice) {
		errs["price"] = "must be greater than or equal to 0.01"
	}

	return errs
}
