package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"food-heaven-server/internal/models"
)

type ReviewsRepo interface {
	All(ctx context.Context) ([]models.Review, error)
}

type ReviewsHandler struct {
	Repo ReviewsRepo
	Log  zerolog.Logger
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Repo.All(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list reviews failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
