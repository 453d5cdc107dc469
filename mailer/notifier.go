package mailer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rortrainees/depot-app-chirag/models"
	gomail "gopkg.in/gomail.v2"
)

// Notifier dispatches the two order lifecycle mails. Delivery is best-effort
// from the checkout workflow's point of view: a failed send never unwinds a
// committed order.
type Notifier interface {
	OrderReceived(order *models.Order) error
	OrderShipped(order *models.Order) error
}

// SMTPNotifier sends order mail through a plain SMTP relay.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifierFromEnv builds a notifier from SMTP_HOST, SMTP_PORT,
// SMTP_USER, SMTP_PASSWORD and MAIL_FROM.
func NewSMTPNotifierFromEnv() (*SMTPNotifier, error) {
	host := os.Getenv("SMTP_HOST")
	from := os.Getenv("MAIL_FROM")
	if host == "" || from == "" {
		return nil, fmt.Errorf("mailer configuration missing")
	}

	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %v", err)
		}
		port = parsed
	}

	dialer := gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD"))
	return &SMTPNotifier{dialer: dialer, from: from}, nil
}

func (n *SMTPNotifier) OrderReceived(order *models.Order) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nThank you for your recent order.\n\n%s\nYou will be charged via: %s\n",
		order.Name, receiptLines(order), order.PayType,
	)
	return n.send(order.Email, "Pragmatic Store Order Confirmation", body)
}

func (n *SMTPNotifier) OrderShipped(order *models.Order) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour order has been shipped to:\n%s\n\n%s",
		order.Name, order.Address, receiptLines(order),
	)
	return n.send(order.Email, "Pragmatic Store Order Shipped", body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send %q to %s: %v", subject, to, err)
	}
	return nil
}

func receiptLines(order *models.Order) string {
	var b strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s  $%s\n", item.Quantity, item.Title, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", order.TotalPrice().StringFixed(2))
	return b.String()
}
