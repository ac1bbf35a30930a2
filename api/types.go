package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	headerHandler       headerHandler
	projectHandler      projectHandler
	categoryHandler     categoryHandler
	skillHandler        skillHandler
	certificateHandler  certificateHandler
	postHandler         postHandler
	feedbackHandler     feedbackHandler
	contactHandler      contactHandler
	subscriptionHandler subscriptionHandler
	statsHandler        statsHandler
}
