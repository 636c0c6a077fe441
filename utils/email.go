// utils/email.go
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"docushop/config"
	"docushop/models"
)

// EmailService sends transactional email through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService builds the EmailService from config.
func NewEmailService(cfg config.SendgridConfig) *EmailService {
	return &EmailService{
		client: sendgrid.NewSendClient(cfg.APIKey),
		sender: cfg.Sender,
	}
}

// SendEmail sends a basic HTML email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("DocuShop", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the buyer.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation - DocuShop"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed successfully.<br><br>Total Amount: <strong>$%.2f</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.BillingInfo.Name,
		order.ID.Hex(),
		order.Total,
		order.PaymentMethod,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
