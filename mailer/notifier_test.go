package mailer

import (
	"testing"

	"github.com/rortrainees/depot-app-chirag/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptLines(t *testing.T) {
	order := &models.Order{
		Items: []models.LineItem{
			{Title: "Programming Ruby", Price: decimal.NewFromFloat(19.99), Quantity: 2},
			{Title: "Agile Web Development", Price: decimal.NewFromFloat(10.01), Quantity: 1},
		},
	}

	got := receiptLines(order)
	assert.Contains(t, got, "2 x Programming Ruby  $39.98")
	assert.Contains(t, got, "1 x Agile Web Development  $10.01")
	assert.Contains(t, got, "Total: $49.99")
}

func TestNewSMTPNotifierFromEnv_MissingConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("MAIL_FROM", "")

	_, err := NewSMTPNotifierFromEnv()
	assert.Error(t, err)
}

func TestNewSMTPNotifierFromEnv_Defaults(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM", "store@example.com")
	t.Setenv("SMTP_PORT", "")

	notifier, err := NewSMTPNotifierFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "store@example.com", notifier.from)
}

func TestNewSMTPNotifierFromEnv_BadPort(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("MAIL_FROM", "store@example.com")
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := NewSMTPNotifierFromEnv()
	assert.Error(t, err)
}
