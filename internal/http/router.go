package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"food-heaven-server/internal/auth"
	"food-heaven-server/internal/http/handlers"
	"food-heaven-server/pkg/metrics"
)

type Handlers struct {
	Token    *handlers.TokenHandler
	Users    *handlers.UsersHandler
	Menu     *handlers.MenuHandler
	Reviews  *handlers.ReviewsHandler
	Carts    *handlers.CartsHandler
	Payments *handlers.PaymentsHandler
	Stats    *handlers.StatsHandler
}

func NewRouter(h *Handlers, guard *auth.Guard) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/", handlers.Health)
	r.Post("/jwt", h.Token.Issue)

	// Public reads and unauthenticated writes.
	r.Get("/menu", h.Menu.List)
	r.Get("/menu/{id}", h.Menu.Get)
	r.Get("/reviews", h.Reviews.List)
	r.Get("/carts", h.Carts.List)
	r.Post("/carts", h.Carts.Create)
	r.Post("/users", h.Users.Create)
	r.Post("/create-payment-intent", h.Payments.CreateIntent)

	// Authenticated; ownership checked in the handlers.
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)
		r.Get("/users/admin/{email}", h.Users.AdminStatus)
		r.Get("/payments/{email}", h.Payments.History)
		r.Post("/payments", h.Payments.Create)
		r.Delete("/carts/{id}", h.Carts.Delete)
	})

	// Admin only.
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth, guard.RequireAdmin)
		r.Get("/users", h.Users.List)
		r.Patch("/users/{id}/admin", h.Users.Promote)
		r.Delete("/users/{id}", h.Users.Delete)
		r.Post("/menu", h.Menu.Create)
		r.Patch("/menu/{id}", h.Menu.Update)
		r.Delete("/menu/{id}", h.Menu.Delete)
		r.Get("/admin-stats", h.Stats.AdminStats)
		r.Get("/order-stats", h.Stats.OrderStats)
	})

	return r
}
