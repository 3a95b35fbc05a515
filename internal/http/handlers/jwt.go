package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"food-heaven-server/internal/auth"
)

type TokenHandler struct {
	Tokens *auth.TokenService
	Log    zerolog.Logger
}

type tokenReq struct {
	Email string `json:"email"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// Issue signs an identity token for the given email. Identity is asserted by
// the frontend's auth provider; this endpoint only wraps it in a JWT.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req tokenReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "email is required")
		return
	}
	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.Log.Error().Err(err).Msg("token signing failed")
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResp{Token: token})
}
