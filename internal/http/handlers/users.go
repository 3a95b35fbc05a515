package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"food-heaven-server/internal/auth"
	"food-heaven-server/internal/models"
	"food-heaven-server/internal/repo"
)

type UsersRepo interface {
	All(ctx context.Context) ([]models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u models.User) (string, error)
	PromoteAdmin(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type UsersHandler struct {
	Repo  UsersRepo
	Guard *auth.Guard
	Log   zerolog.Logger
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.All(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list users failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// AdminStatus reports whether the user behind the path email is an admin.
// Only that user, or an admin, may ask.
func (h *UsersHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
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

	user, err := h.Repo.ByEmail(r.Context(), email)
	if err != nil {
		h.Log.Error().Err(err).Msg("find user failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	admin := user != nil && user.IsAdmin()
	writeJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

// Create inserts the user unless the email is already taken; the unique
// index decides, so concurrent identical requests cannot both insert.
// Only profile fields are taken from the body: this route is public, and
// promotion is the sole path to the admin role.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		writeMessage(w, http.StatusBadRequest, "invalid user payload")
		return
	}
	user := models.User{
		Email: payload.Email,
		Name:  payload.Name,
		Photo: payload.Photo,
	}

	id, err := h.Repo.Create(r.Context(), user)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "user already existed", "insertedId": nil})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("create user failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"insertedId": id})
}

func (h *UsersHandler) Promote(w http.ResponseWriter, r *http.Request) {
	modified, err := h.Repo.PromoteAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("promote user failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Repo.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.Log.Error().Err(err).Msg("delete user failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
