package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/coprra/price-compare/internal/core/domain/alert"
	"github.com/coprra/price-compare/internal/core/ports"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	CompanyName    string
}

// EmailService sends price-drop notifications through SendGrid.
type EmailService struct {
	config *EmailConfig
	logger *logrus.Logger
	client *sendgrid.Client
	tmpl   *template.Template
}

const priceDropTemplate = `
<html>
  <body>
    <h2>Price drop on {{.ProductName}}</h2>
    <p>The best price for <strong>{{.ProductName}}</strong> has dropped to
    <strong>{{.CurrentPrice}}</strong>, at or below your target of
    <strong>{{.TargetPrice}}</strong>.</p>
    <p>&mdash; {{.CompanyName}}</p>
  </body>
</html>`

// NewEmailService creates a new email service instance
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.AlertMailer, error) {
	tmpl, err := template.New("price_drop").Parse(priceDropTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price drop template: %w", err)
	}

	return &EmailService{
		config: config,
		logger: logger,
		client: sendgrid.NewSendClient(config.SendGridAPIKey),
		tmpl:   tmpl,
	}, nil
}

type priceDropData struct {
	ProductName  string
	CurrentPrice string
	TargetPrice  string
	CompanyName  string
}

// SendPriceDropAlert renders and sends one notification.
func (e *EmailService) SendPriceDropAlert(_ context.Context, a *alert.PriceAlert, productName, currentPrice string) error {
	var buf bytes.Buffer
	data := priceDropData{
		ProductName:  productName,
		CurrentPrice: currentPrice,
		TargetPrice:  a.TargetPrice.String() + " " + a.Currency,
		CompanyName:  e.config.CompanyName,
	}
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render price drop template: %w", err)
	}

	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	recipient := mail.NewEmail("", a.Email)
	subject := fmt.Sprintf("Price drop alert: %s", productName)
	message := mail.NewSingleEmail(from, subject, recipient, "", buf.String())

	response, err := e.client.Send(message)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      a.Email,
			"subject": subject,
		}).WithError(err).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          a.Email,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")

	return nil
}
