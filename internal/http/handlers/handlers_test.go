package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"food-heaven-server/internal/auth"
)

// roleMap is a stand-in for the user repo's role lookup.
type roleMap map[string]bool

func (m roleMap) IsAdmin(_ context.Context, email string) (bool, error) {
	return m[email], nil
}

func newGuard(roles auth.RoleLookup) *auth.Guard {
	return &auth.Guard{
		Tokens: auth.NewTokenService("test-secret"),
		Roles:  roles,
		Log:    zerolog.Nop(),
	}
}

func bearer(t *testing.T, g *auth.Guard, email string) string {
	t.Helper()
	token, err := g.Tokens.Issue(email)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router http.Handler, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
