package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"food-heaven-server/internal/models"
	"food-heaven-server/internal/repo"
)

type fakeUsers struct {
	byEmail   map[string]*models.User
	createErr error
	created   []models.User
	promoted  []string
	deleted   []string
}

func (f *fakeUsers) All(context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.byEmail {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, u)
	return "user-1", nil
}

func (f *fakeUsers) PromoteAdmin(_ context.Context, id string) (int64, error) {
	f.promoted = append(f.promoted, id)
	return 1, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) (int64, error) {
	f.deleted = append(f.deleted, id)
	return 1, nil
}

func newUsersRouter(users *fakeUsers, roles roleMap) http.Handler {
	guard := newGuard(roles)
	h := &UsersHandler{Repo: users, Guard: guard, Log: zerolog.Nop()}

	r := chi.NewRouter()
	r.Post("/users", h.Create)
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)
		r.Get("/users/admin/{email}", h.AdminStatus)
	})
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth, guard.RequireAdmin)
		r.Get("/users", h.List)
		r.Patch("/users/{id}/admin", h.Promote)
		r.Delete("/users/{id}", h.Delete)
	})
	return r
}

func TestCreateUser(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*models.User{}}
	router := newUsersRouter(users, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/users", "", models.User{Email: "new@example.com", Name: "New"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insertedId":"user-1"}`, w.Body.String())
	assert.Len(t, users.created, 1)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	users := &fakeUsers{createErr: repo.ErrDuplicateEmail}
	router := newUsersRouter(users, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/users", "", models.User{Email: "dup@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"user already existed","insertedId":null}`, w.Body.String())
	assert.Empty(t, users.created)
}

func TestCreateUserIgnoresRole(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*models.User{}}
	router := newUsersRouter(users, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/users", "", models.User{
		Email: "sneaky@example.com",
		Name:  "Sneaky",
		Role:  models.RoleAdmin,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, users.created, 1)
	assert.Empty(t, users.created[0].Role, "signup must never persist a caller-chosen role")
	assert.Equal(t, "sneaky@example.com", users.created[0].Email)
	assert.Equal(t, "Sneaky", users.created[0].Name)
}

func TestCreateUserMissingEmail(t *testing.T) {
	router := newUsersRouter(&fakeUsers{}, roleMap{})

	w := doJSON(t, router, http.MethodPost, "/users", "", models.User{Name: "No Email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminStatus(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*models.User{
		"boss@example.com": {Email: "boss@example.com", Role: models.RoleAdmin},
		"user@example.com": {Email: "user@example.com"},
	}}
	roles := roleMap{"boss@example.com": true}
	router := newUsersRouter(users, roles)
	guard := newGuard(roles)

	tests := []struct {
		name     string
		caller   string
		target   string
		wantCode int
		wantBody string
	}{
		{"self non-admin", "user@example.com", "user@example.com", http.StatusOK, `{"admin":false}`},
		{"self admin", "boss@example.com", "boss@example.com", http.StatusOK, `{"admin":true}`},
		{"admin asks about other", "boss@example.com", "user@example.com", http.StatusOK, `{"admin":false}`},
		{"non-admin asks about other", "user@example.com", "boss@example.com", http.StatusForbidden, `{"message":"access is forbidden"}`},
		{"unknown target", "boss@example.com", "ghost@example.com", http.StatusOK, `{"admin":false}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/users/admin/"+tt.target, bearer(t, guard, tt.caller), nil)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestPromoteAndDeleteRequireAdmin(t *testing.T) {
	users := &fakeUsers{byEmail: map[string]*models.User{}}
	roles := roleMap{"boss@example.com": true}
	router := newUsersRouter(users, roles)
	guard := newGuard(roles)

	w := doJSON(t, router, http.MethodPatch, "/users/abc123/admin", bearer(t, guard, "user@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, users.promoted)

	w = doJSON(t, router, http.MethodPatch, "/users/abc123/admin", bearer(t, guard, "boss@example.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc123"}, users.promoted)

	w = doJSON(t, router, http.MethodDelete, "/users/abc123", bearer(t, guard, "boss@example.com"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc123"}, users.deleted)
}
