// internal/app/features/discover/routes.go
package discover

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeDiscover)
	return r
}
