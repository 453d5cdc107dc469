package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rortrainees/depot-app-chirag/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.LineItem{},
		&models.Order{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, title string, price float64) *models.Product {
	t.Helper()
	product := models.Product{
		Title:       title,
		Description: "test product",
		ImageURL:    "https://cdn.example.com/" + title + ".jpg",
		Price:       decimal.NewFromFloat(price),
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func TestGetOrCreateCart_CreatesLazily(t *testing.T) {
	db := newTestDB(t)

	cart, err := GetOrCreateCart(db, "")
	require.NoError(t, err)
	assert.NotEmpty(t, cart.Token)
	assert.Empty(t, cart.Items)
}

func TestGetOrCreateCart_ReturnsExisting(t *testing.T) {
	db := newTestDB(t)

	first, err := GetOrCreateCart(db, "")
	require.NoError(t, err)

	again, err := GetOrCreateCart(db, first.Token)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestGetOrCreateCart_UnknownTokenCreatesFresh(t *testing.T) {
	db := newTestDB(t)

	cart, err := GetOrCreateCart(db, "no-such-token")
	require.NoError(t, err)
	assert.NotEqual(t, "no-such-token", cart.Token)
}

func TestAddProductToCart_SnapshotsPriceAndTitle(t *testing.T) {
	db := newTestDB(t)
	product := createProduct(t, db, "ruby", 49.95)
	cart, err := GetOrCreateCart(db, "")
	require.NoError(t, err)

	item, err := AddProductToCart(db, cart, product, 1)
	require.NoError(t, err)
	assert.Equal(t, product.Title, item.Title)
	assert.True(t, item.Price.Equal(product.Price))
	assert.Equal(t, 1, item.Quantity)

	owner, err := item.Owner()
	require.NoError(t, err)
	assert.Equal(t, models.Owner{Kind: models.OwnerCart, ID: cart.ID}, owner)
}

func TestAddProductToCart_IncrementsExistingItem(t *testing.T) {
	db := newTestDB(t)
	product := createProduct(t, db, "ruby", 49.95)
	cart, err := GetOrCreateCart(db, "")
	require.NoError(t, err)

	_, err = AddProductToCart(db, cart, product, 1)
	require.NoError(t, err)
	item, err := AddProductToCart(db, cart, product, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.LineItem{}).
		Where("cart_id = ?", cart.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate add must not create a second line item")
}

func TestDestroyCart_RemovesCartAndItems(t *testing.T) {
	db := newTestDB(t)
	product := createProduct(t, db, "ruby", 49.95)
	cart, err := GetOrCreateCart(db, "")
	require.NoError(t, err)
	_, err = AddProductToCart(db, cart, product, 1)
	require.NoError(t, err)

	require.NoError(t, DestroyCart(db, cart.Token))

	var carts, items int64
	db.Model(&models.Cart{}).Count(&carts)
	db.Model(&models.LineItem{}).Count(&items)
	assert.Zero(t, carts)
	assert.Zero(t, items)
}

func TestDestroyCart_Idempotent(t *testing.T) {
	db := newTestDB(t)
	cart, err := GetOrCreateCart(db, "")
	require.NoError(t, err)

	require.NoError(t, DestroyCart(db, cart.Token))
	assert.NoError(t, DestroyCart(db, cart.Token), "destroying a destroyed cart must be a no-op")
	assert.NoError(t, DestroyCart(db, "never-existed"))
	assert.NoError(t, DestroyCart(db, ""))
}
