package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"food-heaven-server/internal/models"
)

type MenuRepo interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	ByID(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (string, error)
	Update(ctx context.Context, id string, item models.MenuItem) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type MenuHandler struct {
	Repo MenuRepo
	Log  zerolog.Logger
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.All(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list menu failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Repo.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("get menu item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu payload")
		return
	}
	id, err := h.Repo.Create(r.Context(), item)
	if err != nil {
		h.Log.Error().Err(err).Msg("create menu item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"insertedId": id})
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid menu payload")
		return
	}
	modified, err := h.Repo.Update(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		h.Log.Error().Err(err).Msg("update menu item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("delete menu item failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
