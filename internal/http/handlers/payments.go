package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"food-heaven-server/internal/auth"
	"food-heaven-server/internal/models"
	"food-heaven-server/internal/service"
)

type PaymentsRepo interface {
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type PaymentsHandler struct {
	Service *service.Payments
	Repo    PaymentsRepo
	Guard   *auth.Guard
	Log     zerolog.Logger
}

type intentReq struct {
	Price float64 `json:"price"`
}

type intentResp struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *PaymentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req intentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Price <= 0 {
		writeMessage(w, http.StatusBadRequest, "price must be positive")
		return
	}
	secret, err := h.Service.CreateIntent(r.Context(), req.Price)
	if err != nil {
		h.Log.Error().Err(err).Float64("price", req.Price).Msg("payment intent failed")
		writeMessage(w, http.StatusBadGateway, "payment processor unavailable")
		return
	}
	writeJSON(w, http.StatusOK, intentResp{ClientSecret: secret})
}

// Create records a completed payment and purges its cart items. The caller
// may only record a payment for their own email unless they are an admin.
func (h *PaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil || payment.Email == "" {
		writeMessage(w, http.StatusBadRequest, "invalid payment payload")
		return
	}
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	allowed, err := h.Guard.AllowSelfOrAdmin(r.Context(), claims, payment.Email)
	if err != nil {
		h.Log.Error().Err(err).Msg("role lookup failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !allowed {
		writeMessage(w, http.StatusForbidden, "access is forbidden")
		return
	}

	result, err := h.Service.Confirm(r.Context(), payment)
	if err != nil {
		h.Log.Error().Err(err).Str("transaction_id", payment.TransactionID).Msg("payment confirmation failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"paymentResult": map[string]string{"insertedId": result.InsertedID},
		"deleteResult":  map[string]int64{"deletedCount": result.DeletedCarts},
	})
}

func (h *PaymentsHandler) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	allowed, err := h.Guard.AllowSelfOrAdmin(r.Context(), claims, email)
	if err != nil {
		h.Log.Error().Err(err).Msg("role lookup failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !allowed {
		writeMessage(w, http.StatusForbidden, "access is forbidden")
		return
	}

	payments, err := h.Repo.ByEmail(r.Context(), email)
	if err != nil {
		h.Log.Error().Err(err).Msg("list payments failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, payments)
}
