// internal/app/features/feedback/routes.go
package feedback

import "github.com/go-chi/chi/v5"

// Routes mounts the feedback API under the caller's path.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	return r
}
