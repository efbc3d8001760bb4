package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.healthCheck)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Post("/jwt", h.createToken)

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/admin/{email}", h.checkAdmin)
		r.Get("/users/moderator/{email}", h.checkModerator)

		r.Group(func(r chi.Router) {
			r.Use(h.withRole(models.RoleAdmin))

			r.Get("/users", h.listUsers)
			r.With(withObjectID).Delete("/users/{id}", h.deleteUser)
		})
	})

	// routes without authorization
	router.Post("/users", h.createUser)
	router.With(withObjectID).Patch("/users/admin/{id}", h.updateUserRole)

	router.Get("/scholarships", h.listScholarships)
	router.Post("/scholarships", h.createScholarship)
	router.With(withObjectID).Get("/scholarships/{id}", h.getScholarship)
	router.With(withObjectID).Patch("/scholarships/{id}", h.updateScholarship)
	router.With(withObjectID).Delete("/scholarships/{id}", h.deleteScholarship)

	router.Get("/applyScholarship", h.listApplications)
	router.Post("/applyScholarships", h.createApplication)
	router.With(withObjectID).Patch("/applyScholarships/feedback/{id}", h.approveApplication)
	router.With(withObjectID).Delete("/applyScholarships/{id}", h.deleteApplication)

	router.Get("/reviews", h.listReviews)
	router.Get("/reviews/myReviews", h.listMyReviews)
	router.Post("/reviews", h.createReview)
	router.With(withObjectID).Delete("/reviews/{id}", h.deleteReview)

	router.Post("/create-payment-intent", h.createPaymentIntent)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
