package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

type claimsKey struct{}

// ClaimsFromContext returns the verified claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}

// RoleLookup resolves whether the user behind an email holds the admin role.
type RoleLookup interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type Guard struct {
	Tokens *TokenService
	Roles  RoleLookup
	Log    zerolog.Logger
}

// RequireAuth admits requests carrying a valid bearer token and stores the
// decoded claims in the request context.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			WriteMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		claims, err := g.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			WriteMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

// RequireAdmin must run after RequireAuth. Unknown users and non-admins get
// 403; a failed role lookup is a server error, not a denial.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			WriteMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}
		admin, err := g.Roles.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			g.Log.Error().Err(err).Str("email", claims.Email).Msg("role lookup failed")
			WriteMessage(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !admin {
			WriteMessage(w, http.StatusForbidden, "access is forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AllowSelfOrAdmin reports whether the caller may act on the given email:
// either it matches the caller's own, or the caller is an admin.
func (g *Guard) AllowSelfOrAdmin(ctx context.Context, claims *Claims, email string) (bool, error) {
	if claims.Email == email {
		return true, nil
	}
	return g.Roles.IsAdmin(ctx, claims.Email)
}

// WriteMessage sends the structured {message} denial body guarded routes use.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
