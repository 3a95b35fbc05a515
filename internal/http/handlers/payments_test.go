package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"food-heaven-server/internal/models"
	"food-heaven-server/internal/service"
)

type stubIntents struct {
	amount int64
	err    error
}

func (s *stubIntents) CreateIntent(_ context.Context, amountMinor int64) (string, error) {
	s.amount = amountMinor
	return "pi_secret_123", s.err
}

type fakePaymentStore struct {
	byEmail map[string][]models.Payment
}

func (f *fakePaymentStore) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	return f.byEmail[email], nil
}

func (f *fakePaymentStore) Create(_ context.Context, _ models.Payment) (string, error) {
	return "payment-1", nil
}

type noopPurger struct{}

func (noopPurger) DeleteByIDs(_ context.Context, ids []string) (int64, error) {
	return int64(len(ids)), nil
}

func newPaymentsRouter(intents *stubIntents, store *fakePaymentStore, roles roleMap) http.Handler {
	guard := newGuard(roles)
	svc := &service.Payments{Intents: intents, Repo: store, Carts: noopPurger{}, Log: zerolog.Nop()}
	h := &PaymentsHandler{Service: svc, Repo: store, Guard: guard, Log: zerolog.Nop()}

	r := chi.NewRouter()
	r.Post("/create-payment-intent", h.CreateIntent)
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)
		r.Get("/payments/{email}", h.History)
		r.Post("/payments", h.Create)
	})
	return r
}

func TestCreateIntent(t *testing.T) {
	intents := &stubIntents{}
	router := newPaymentsRouter(intents, &fakePaymentStore{}, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/create-payment-intent", "", map[string]float64{"price": 19.99})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret_123"}`, w.Body.String())
	assert.Equal(t, int64(1999), intents.amount)
}

func TestCreateIntentInvalidPrice(t *testing.T) {
	router := newPaymentsRouter(&stubIntents{}, &fakePaymentStore{}, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/create-payment-intent", "", map[string]float64{"price": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIntentProcessorDown(t *testing.T) {
	intents := &stubIntents{err: errors.New("stripe unavailable")}
	router := newPaymentsRouter(intents, &fakePaymentStore{}, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/create-payment-intent", "", map[string]float64{"price": 5})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreatePayment(t *testing.T) {
	router := newPaymentsRouter(&stubIntents{}, &fakePaymentStore{}, roleMap{})
	guard := newGuard(roleMap{})

	payment := models.Payment{
		Email:         "user@example.com",
		Price:         29.98,
		TransactionID: "tx-1",
		CartIDs:       []string{"c1", "c2"},
	}
	w := doJSON(t, router, http.MethodPost, "/payments", bearer(t, guard, "user@example.com"), payment)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"paymentResult":{"insertedId":"payment-1"},"deleteResult":{"deletedCount":2}}`, w.Body.String())
}

func TestCreatePaymentForOtherUser(t *testing.T) {
	router := newPaymentsRouter(&stubIntents{}, &fakePaymentStore{}, roleMap{})
	guard := newGuard(roleMap{})

	payment := models.Payment{Email: "victim@example.com", TransactionID: "tx-1"}
	w := doJSON(t, router, http.MethodPost, "/payments", bearer(t, guard, "attacker@example.com"), payment)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPaymentHistory(t *testing.T) {
	store := &fakePaymentStore{byEmail: map[string][]models.Payment{
		"user@example.com": {{Email: "user@example.com", Price: 10, TransactionID: "tx-1"}},
	}}
	roles := roleMap{"boss@example.com": true}
	router := newPaymentsRouter(&stubIntents{}, store, roles)
	guard := newGuard(roles)

	tests := []struct {
		name     string
		caller   string
		target   string
		wantCode int
	}{
		{"self", "user@example.com", "user@example.com", http.StatusOK},
		{"admin", "boss@example.com", "user@example.com", http.StatusOK},
		{"other non-admin", "snoop@example.com", "user@example.com", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/payments/"+tt.target, bearer(t, guard, tt.caller), nil)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestPaymentHistoryNoToken(t *testing.T) {
	router := newPaymentsRouter(&stubIntents{}, &fakePaymentStore{}, roleMap{})

	w := doJSON(t, router, http.MethodGet, "/payments/user@example.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
