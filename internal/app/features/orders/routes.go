// internal/app/features/orders/routes.go
package orders

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{email}", h.ServeListByEmail)

	return r
}
