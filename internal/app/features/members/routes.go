// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// The roster is public.
	r.Get("/", h.ServeList)

	// Management is admin-only. /new is registered before /{id} so chi
	// does not treat "new" as an id.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}", h.HandleUpdate)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	r.Get("/{id}", h.ServeView)

	return r
}
