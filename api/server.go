/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend
  5. RequireUser: Acting-user extraction (everything except /users/register
     and /health)

ROUTE GROUPS:
  /api/v1/users/*         Registration + onboarding
  /api/v1/wallets/*       Wallet management and balances
  /api/v1/currencies      User currency catalog
  /api/v1/categories/*    Category management
  /api/v1/transactions/*  The ledger write/read path
  /api/v1/settings        Base currency settings
  /api/v1/rates           Live exchange rates

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/register", h.RegisterUser)

		// Everything below acts on behalf of a user.
		r.Group(func(r chi.Router) {
			r.Use(RequireUser)

			r.Get("/users/me", h.CurrentUser)

			r.Route("/wallets", func(r chi.Router) {
				r.Get("/", h.ListWallets)
				r.Post("/", h.CreateWallet)
				r.Put("/{id}", h.UpdateWallet)
				r.Delete("/{id}", h.DeleteWallet)
				r.Get("/{id}/balance", h.GetBalance)
			})

			r.Get("/currencies", h.ListCurrencies)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.ListCategories)
				r.Post("/", h.CreateCategory)
				r.Put("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.ListTransactions)
				r.Post("/", h.CreateTransaction)
				r.Get("/{id}", h.GetTransaction)
				r.Put("/{id}", h.UpdateTransaction)
				r.Delete("/{id}", h.DeleteTransaction)
			})

			r.Get("/settings", h.GetSettings)
			r.Put("/settings", h.UpdateSettings)

			r.Get("/rates", h.GetRates)
		})
	})

	return r
}
