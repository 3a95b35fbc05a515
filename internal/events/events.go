package events

import (
	"time"

	"github.com/google/uuid"

	"food-heaven-server/internal/models"
)

const TypePaymentConfirmed = "payments.confirmed"

type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`

	Payload T `json:"payload"`
}

type PaymentConfirmedPayload struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transaction_id"`
	MenuItemIDs   []string `json:"menu_item_ids"`
}

func NewPaymentConfirmed(p models.Payment) Event[PaymentConfirmedPayload] {
	return Event[PaymentConfirmedPayload]{
		ID:      uuid.NewString(),
		Type:    TypePaymentConfirmed,
		Version: 1,
		Time:    time.Now(),
		Payload: PaymentConfirmedPayload{
			Email:         p.Email,
			Price:         p.Price,
			TransactionID: p.TransactionID,
			MenuItemIDs:   p.MenuItemIDs,
		},
	}
}
