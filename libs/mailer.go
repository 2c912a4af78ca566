package libs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"furniture-shop/config"
	"furniture-shop/models"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("SMTP configuration missing")

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return nil, ErrMailerNotConfigured
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}, nil
}

// OrderPlaced sends the cash-on-delivery confirmation for a new order.
func (m *Mailer) OrderPlaced(_ context.Context, order models.Order, toEmail string) error {
	body, err := RenderOrderConfirmation(order)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%s - Cash on Delivery", ShortOrderID(order.ID)))
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// ShortOrderID is the reference shown to customers.
func ShortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

type confirmationLine struct {
	Name     string
	Quantity int
	Subtotal string
}

var confirmationTemplate = template.Must(template.New("order").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f8fafc; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 12px;">
    <h2 style="color: #b45309;">Thank you for your order!</h2>
    <p>Order reference: <strong>{{.Reference}}</strong></p>
    <table style="width: 100%; border-collapse: collapse;">
      {{range .Lines}}
      <tr><td>{{.Quantity}} x {{.Name}}</td><td style="text-align: right;">{{.Subtotal}}</td></tr>
      {{end}}
    </table>
    <p style="font-size: 18px;"><strong>Total: {{.Total}}</strong></p>
    <p>Shipping to: {{.Details.FullName}}, {{.Details.Address}}, {{.Details.City}} {{.Details.PostalCode}}</p>
    <p>This is a <strong>Cash on Delivery</strong> order. Please pay the courier when your furniture arrives.</p>
  </div>
</body>
</html>`))

func RenderOrderConfirmation(order models.Order) (string, error) {
	lines := make([]confirmationLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, confirmationLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: models.FormatPrice(item.Subtotal()),
		})
	}

	var buf bytes.Buffer
	err := confirmationTemplate.Execute(&buf, map[string]interface{}{
		"Reference": ShortOrderID(order.ID),
		"Lines":     lines,
		"Total":     models.FormatPrice(order.TotalAmount),
		"Details":   order.CustomerDetails,
	})
	if err != nil {
		return "", fmt.Errorf("render order confirmation: %w", err)
	}
	return buf.String(), nil
}
