package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"food-heaven-server/internal/models"
)

// IntentCreator is the payment-processor seam; the Stripe adapter implements
// it in production, tests substitute a stub.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64) (clientSecret string, err error)
}

type PaymentsInserter interface {
	Create(ctx context.Context, p models.Payment) (string, error)
}

type CartsPurger interface {
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// Notifier delivers a best-effort confirmation for a completed payment.
type Notifier interface {
	PaymentConfirmed(ctx context.Context, p models.Payment) error
}

type ConfirmResult struct {
	InsertedID   string `json:"insertedId"`
	DeletedCarts int64  `json:"deletedCount"`
}

type Payments struct {
	Intents   IntentCreator
	Repo      PaymentsInserter
	Carts     CartsPurger
	Notifiers []Notifier
	Log       zerolog.Logger
}

// MinorUnits converts a decimal price into minor currency units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

func (s *Payments) CreateIntent(ctx context.Context, price float64) (string, error) {
	secret, err := s.Intents.CreateIntent(ctx, MinorUnits(price))
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

// Confirm persists the payment and purges the consumed cart items, then
// dispatches confirmation notifications without blocking the response. The
// persisted payment is not rolled back if the purge or a notifier fails.
func (s *Payments) Confirm(ctx context.Context, p models.Payment) (ConfirmResult, error) {
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}

	insertedID, err := s.Repo.Create(ctx, p)
	if err != nil {
		return ConfirmResult{}, err
	}

	deleted, err := s.Carts.DeleteByIDs(ctx, p.CartIDs)
	if err != nil {
		s.Log.Error().Err(err).Str("transaction_id", p.TransactionID).Msg("cart purge failed after payment insert")
		return ConfirmResult{}, err
	}

	go s.dispatch(p)

	return ConfirmResult{InsertedID: insertedID, DeletedCarts: deleted}, nil
}

// dispatch runs detached from the request; failures land in the log only.
func (s *Payments) dispatch(p models.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, n := range s.Notifiers {
		if err := n.PaymentConfirmed(ctx, p); err != nil {
			s.Log.Error().Err(err).
				Str("email", p.Email).
				Str("transaction_id", p.TransactionID).
				Msg("payment notification failed")
		}
	}
}
