// internal/app/features/employees/routes.go
package employees

import "github.com/go-chi/chi/v5"

// Routes mounts the employees API under the caller's path.
// Typically: r.Mount("/api/employees", employees.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
