// internal/app/features/payments/routes.go
package payments

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreateIntent)
	return r
}
