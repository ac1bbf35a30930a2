package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site routes and the token-guarded admin
// routes under /api.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reads
		r.Get("/headers", handlers.headerHandler.getAllHeaders())
		r.Get("/headers/{headerID}", handlers.headerHandler.getHeader())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/categories/{categoryID}", handlers.categoryHandler.getCategory())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())
		r.Get("/certificates", handlers.certificateHandler.getAllCertificates())
		r.Get("/certificates/{certificateID}", handlers.certificateHandler.getCertificate())
		r.Get("/posts", handlers.postHandler.getAllPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPost())
		r.Get("/feedback", handlers.feedbackHandler.getAllFeedback())

		// Public submissions
		r.Post("/feedback", handlers.feedbackHandler.createFeedback())
		r.Post("/contact", handlers.contactHandler.createContact())

		// Subscription flow
		r.Post("/subscribe", handlers.subscriptionHandler.subscribe())
		r.Get("/verify", handlers.subscriptionHandler.verify())
		r.Get("/unsubscribe", handlers.subscriptionHandler.unsubscribe())

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(auth.authenticate)

			r.Post("/headers", handlers.headerHandler.createHeader())
			r.Put("/headers/{headerID}", handlers.headerHandler.updateHeader())
			r.Delete("/headers/{headerID}", handlers.headerHandler.deleteHeader())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/categories", handlers.categoryHandler.createCategory())
			r.Put("/categories/{categoryID}", handlers.categoryHandler.updateCategory())
			r.Delete("/categories/{categoryID}", handlers.categoryHandler.deleteCategory())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Post("/certificates", handlers.certificateHandler.createCertificate())
			r.Put("/certificates/{certificateID}", handlers.certificateHandler.updateCertificate())
			r.Delete("/certificates/{certificateID}", handlers.certificateHandler.deleteCertificate())

			r.Post("/posts", handlers.postHandler.createPost())
			r.Delete("/posts/{slug}", handlers.postHandler.deletePost())

			r.Delete("/feedback/{feedbackID}", handlers.feedbackHandler.deleteFeedback())

			r.Get("/contact", handlers.contactHandler.getAllContacts())
			r.Patch("/contact/{contactID}", handlers.contactHandler.respondToContact())
			r.Delete("/contact/{contactID}", handlers.contactHandler.deleteContact())

			r.Get("/subscribe", handlers.subscriptionHandler.getAllSubscriptions())
			r.Delete("/subscribe/{subscriptionID}", handlers.subscriptionHandler.deleteSubscription())

			r.Get("/stats", handlers.statsHandler.getStats())
		})
	})
}
