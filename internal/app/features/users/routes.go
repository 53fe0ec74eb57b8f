// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Put("/", h.HandleUpdate)
	r.Get("/", h.ServeList)
	r.Put("/admin", h.HandlePromote)
	r.Get("/{email}", h.ServeRoleFlags)

	return r
}
