package notify

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"food-heaven-server/internal/models"
)

// Mailer sends the order confirmation email through Mailgun.
type Mailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

func NewMailer(domain, apiKey, sender string) *Mailer {
	return &Mailer{mg: mailgun.NewMailgun(domain, apiKey), sender: sender}
}

func (m *Mailer) PaymentConfirmed(ctx context.Context, p models.Payment) error {
	body := fmt.Sprintf(
		"Thank you for your order!\n\nWe received your payment of $%.2f.\nTransaction id: %s\n",
		p.Price, p.TransactionID,
	)
	msg := m.mg.NewMessage(m.sender, "Your order is confirmed", body, p.Email)
	_, _, err := m.mg.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}
