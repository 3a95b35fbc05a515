package handlers

import (
	"encoding/json"
	"net/http"

	"food-heaven-server/internal/auth"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	auth.WriteMessage(w, code, msg)
}
