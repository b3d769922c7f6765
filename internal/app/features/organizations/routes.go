// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/dalemusser/connecthub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Browsing is public.
	r.Get("/", h.ServeList)

	// Management is admin-only. /new precedes /{slug} so chi does not
	// treat "new" as a slug.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{slug}/edit", h.ServeEdit)
		pr.Post("/{slug}", h.HandleUpdate)
		pr.Post("/{slug}/delete", h.HandleDelete)
	})

	r.Get("/{slug}", h.ServeView)

	return r
}
