package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"food-heaven-server/internal/auth"
	"food-heaven-server/internal/models"
)

type CartsRepo interface {
	ByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	ByID(ctx context.Context, id string) (*models.CartItem, error)
	Create(ctx context.Context, item models.CartItem) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type CartsHandler struct {
	Repo  CartsRepo
	Guard *auth.Guard
	Log   zerolog.Logger
}

func (h *CartsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.ByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.Log.Error().Err(err).Msg("list carts failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid cart payload")
		return
	}
	id, err := h.Repo.Create(r.Context(), item)
	if err != nil {
		h.Log.Error().Err(err).Msg("create cart item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"insertedId": id})
}

// Delete removes a single cart item; only its owner or an admin may do so.
func (h *CartsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	item, err := h.Repo.ByID(r.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Msg("find cart item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if item == nil {
		writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": 0})
		return
	}

	allowed, err := h.Guard.AllowSelfOrAdmin(r.Context(), claims, item.Email)
	if err != nil {
		h.Log.Error().Err(err).Msg("role lookup failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !allowed {
		writeMessage(w, http.StatusForbidden, "access is forbidden")
		return
	}

	deleted, err := h.Repo.Delete(r.Context(), id)
	if err != nil {
		h.Log.Error().Err(err).Msg("delete cart item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
