package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"food-heaven-server/internal/service"
)

type StatsHandler struct {
	Reporting *service.Reporting
	Log       zerolog.Logger
}

func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reporting.AdminStats(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("admin stats failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Reporting.OrderStats(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("order stats failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
