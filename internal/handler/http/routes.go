package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jobseekr/go-job-board/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/users/register", h.register)
			r.Post("/login", h.login)
			r.Post("/password/forgot", h.forgotPassword)
			r.Put("/password/reset/{resetToken}", h.resetPassword)

			r.Get("/jobs", h.listJobs)
			r.Get("/jobs/{zipcode}/{distance}", h.jobsInRadius)
			r.Get("/job/{id}/{slug}", h.getJob)
			r.Get("/stats/{topic}", h.jobStats)
		})

		// self-service profile routes, any authenticated account
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/logout", h.logout)
			r.Get("/me", h.me)
			r.Put("/me/update", h.updateMe)
			r.Put("/password/update", h.updatePassword)
			r.Delete("/me/delete", h.deleteMe)
		})

		// posting mutations
		api.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.requireRole(models.RoleEmployer, models.RoleAdmin))

			r.Post("/job/new", h.createJob)
			r.Put("/job/{id}", h.updateJob)
			r.Delete("/job/{id}", h.deleteJob)
		})

		// applications are filed by the applicant role class only
		api.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.requireRole(models.RoleUser))

			r.Put("/job/{id}/apply", h.applyToJob)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrNotRouted)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, ErrNotRouted)
	})

	return router
}
