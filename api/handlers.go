package api

import (
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/services"
)

// handlerDeps carries the shared collaborators the content handlers need
// beyond their repositories.
type handlerDeps struct {
	uploader services.Uploader
	mailer   services.Mailer
	notifier *services.Notifier
	baseURL  string
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, deps handlerDeps) *routeHandlers {
	return &routeHandlers{
		headerHandler:       newHeaderHandler(db.HeaderRepo(), deps.uploader),
		projectHandler:      newProjectHandler(db.ProjectRepo(), db.CategoryRepo(), deps.uploader),
		categoryHandler:     newCategoryHandler(db.CategoryRepo()),
		skillHandler:        newSkillHandler(db.SkillRepo(), deps.uploader, deps.notifier),
		certificateHandler:  newCertificateHandler(db.CertificateRepo(), deps.uploader),
		postHandler:         newPostHandler(db.PostRepo(), deps.uploader),
		feedbackHandler:     newFeedbackHandler(db.FeedbackRepo()),
		contactHandler:      newContactHandler(db.ContactRepo(), deps.mailer),
		subscriptionHandler: newSubscriptionHandler(db.SubscriptionRepo(), deps.mailer, deps.baseURL),
		statsHandler:        newStatsHandler(db.StatsRepo()),
	}
}
