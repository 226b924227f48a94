// utils/email.go
package utils

import (
	"errors"
	"fmt"
	"log"

	"github.com/VortexWanderer9/food-delivery-app/models"
	"github.com/VortexWanderer9/food-delivery-app/store"
	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers a single email
type Mailer interface {
	Send(toEmail, subject, htmlContent, textContent string) error
}

type postmarkMailer struct {
	client *postmark.Client
	from   string
}

// NewPostmarkMailer sends through Postmark with the given server token
func NewPostmarkMailer(apiToken, from string) Mailer {
	return &postmarkMailer{client: postmark.NewClient(apiToken, ""), from: from}
}

func (m *postmarkMailer) Send(toEmail, subject, htmlContent, textContent string) error {
	_, err := m.client.SendEmail(postmark.Email{
		From:     m.from,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})
	return err
}

type sendgridMailer struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridMailer sends through SendGrid with the given API key
func NewSendGridMailer(apiKey, from string) Mailer {
	return &sendgridMailer{client: sendgrid.NewSendClient(apiKey), from: from}
}

func (m *sendgridMailer) Send(toEmail, subject, htmlContent, textContent string) error {
	msg := mail.NewSingleEmail(mail.NewEmail("", m.from), subject, mail.NewEmail("", toEmail), textContent, htmlContent)
	resp, err := m.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// EmailService sends order notifications
type EmailService struct {
	mailer Mailer
	run    func(func()) // runs a send; asynchronous by default
}

// NewEmailService picks the mailer named by cfg.EmailProvider.
// It returns nil when no provider is configured.
func NewEmailService(cfg Config) (*EmailService, error) {
	switch cfg.EmailProvider {
	case "":
		return nil, nil
	case "postmark":
		if cfg.PostmarkToken == "" {
			return nil, errors.New("POSTMARK_API_TOKEN is not set in environment variables")
		}
		return NewEmailServiceWithMailer(NewPostmarkMailer(cfg.PostmarkToken, cfg.EmailSender)), nil
	case "sendgrid":
		if cfg.SendGridKey == "" {
			return nil, errors.New("SENDGRID_API_KEY is not set in environment variables")
		}
		return NewEmailServiceWithMailer(NewSendGridMailer(cfg.SendGridKey, cfg.EmailSender)), nil
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}
}

func NewEmailServiceWithMailer(m Mailer) *EmailService {
	return &EmailService{
		mailer: m,
		run:    func(f func()) { go f() },
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if err := es.mailer.Send(toEmail, subject, htmlContent, htmlContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail, name string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order #%s has been confirmed and should arrive by <strong>%s</strong>.<br><br>Total Amount: <strong>$%s</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for ordering with us!",
		name,
		order.TrackingNumber,
		order.EstimatedDeliveryTime.Format("15:04"),
		order.Total.StringFixed(2),
		order.PaymentMethod,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderStatusEmail tells the user their order moved to a new status
func (es *EmailService) SendOrderStatusEmail(toEmail, name string, order models.Order) error {
	subject := "Order Status Updated"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order #%s is now <strong>%s</strong>.<br><br>Thank you for ordering with us!",
		name,
		order.TrackingNumber,
		order.Status,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// OrderNotifier returns a store listener that emails the signed-in user
// when one of their orders is placed or changes status.
func (es *EmailService) OrderNotifier() store.Listener {
	return func(ev store.Event) {
		if ev.Err != nil || ev.State.Auth.User == nil {
			return
		}
		user := *ev.State.Auth.User

		var send func() error
		switch a := ev.Action.(type) {
		case store.CreateOrderSuccess, store.PlaceOrder:
			order, ok := ev.CreatedOrder()
			if !ok || order.UserID != user.ID {
				return
			}
			send = func() error { return es.SendOrderConfirmationEmail(user.Email, user.Name, order) }
		case store.UpdateOrderStatus:
			order, ok := ev.State.Order.Order(a.OrderID)
			if !ok || order.UserID != user.ID {
				return
			}
			send = func() error { return es.SendOrderStatusEmail(user.Email, user.Name, order) }
		default:
			return
		}

		es.run(func() {
			if err := send(); err != nil {
				log.Printf("Failed to send email to %s: %v", user.Email, err)
			}
		})
	}
}
